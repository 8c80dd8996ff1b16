package authweb

import (
	"log/slog"
	"net/http"

	"github.com/authfront/authfront/pkg/authflow"
	"github.com/authfront/authfront/pkg/binder"
	"github.com/authfront/authfront/pkg/hostedauth"
	"github.com/authfront/authfront/pkg/logger"
	"github.com/authfront/authfront/pkg/navigation"
	"github.com/authfront/authfront/pkg/oauthcallback"
	"github.com/authfront/authfront/pkg/sessionstate"
)

// Service serves the authentication pages. Each POST drives a fresh flow
// controller against a navigation recorder and translates the recorded
// navigation into the transport-appropriate redirect.
type Service struct {
	client hostedauth.Client
	store  *sessionstate.Store
	views  *Views
	cfg    Config
	log    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the web surface over the given provider client and
// session store.
func NewService(cfg Config, client hostedauth.Client, store *sessionstate.Store, views *Views, opts ...ServiceOption) *Service {
	s := &Service{
		client: client,
		store:  store,
		views:  views,
		cfg:    cfg,
		log:    logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// HasSession reports whether the store currently holds a session. It is the
// SessionCheck the request gate runs against.
func (s *Service) HasSession(*http.Request) bool {
	return s.store.State().Authenticated()
}

func (s *Service) newController(nav navigation.Navigator) *authflow.Controller {
	return authflow.NewController(s.client, s.store, nav,
		authflow.WithControllerLogger(s.log),
		authflow.WithCallbackURL(s.cfg.callbackURL()),
		authflow.WithLandingPath(s.cfg.LandingPath),
	)
}

// SignInRequest carries one sign-in submission. Method selects password or
// magic-link authentication; a non-empty Provider switches the submission to
// the OAuth flow instead.
type SignInRequest struct {
	Email    string `form:"email" query:"email"`
	Password string `form:"password" query:"-"`
	Method   string `form:"method" query:"-"`
	Provider string `form:"provider" query:"-"`
}

func (s *Service) signInPage(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := binder.Query()(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	params := SignInPageParams{
		Form:       authflow.FormState{Email: req.Email},
		SignUpPath: s.cfg.SignUpPath,
	}
	if err := render(w, r, s.views.SignInPage(params), nil, ""); err != nil {
		s.log.ErrorContext(r.Context(), "render sign-in page failed",
			logger.Error(err),
			logger.Component("authweb"),
		)
	}
}

func (s *Service) signInSubmit(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := binder.Form()(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	rec := navigation.NewRecorder()
	ctrl := s.newController(rec)

	var msg authflow.Message
	if req.Provider != "" {
		msg = ctrl.SubmitOAuth(r.Context(), req.Provider)
	} else {
		method := authflow.MethodPassword
		if req.Method == string(authflow.MethodMagicLink) {
			method = authflow.MethodMagicLink
		}
		msg = ctrl.SubmitSignIn(r.Context(), method, authflow.FormState{
			Email:    req.Email,
			Password: req.Password,
		})
	}

	if kind, path := rec.Last(); kind != navigation.KindNone {
		if err := redirect(w, r, path); err != nil {
			s.log.ErrorContext(r.Context(), "redirect after sign-in failed",
				logger.Error(err),
				logger.Component("authweb"),
			)
		}
		return
	}

	params := SignInPageParams{
		Form:       authflow.FormState{Email: ctrl.Form().Email},
		Message:    msg,
		SignUpPath: s.cfg.SignUpPath,
	}
	if err := render(w, r, s.views.SignInPage(params), s.views.SignInForm(params), signInFormSelector); err != nil {
		s.log.ErrorContext(r.Context(), "render sign-in result failed",
			logger.Error(err),
			logger.Component("authweb"),
		)
	}
}

// SignUpRequest carries one registration submission.
type SignUpRequest struct {
	Email           string `form:"email" query:"email"`
	Password        string `form:"password" query:"-"`
	ConfirmPassword string `form:"confirm_password" query:"-"`
}

func (s *Service) signUpPage(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := binder.Query()(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	params := SignUpPageParams{
		Form:       authflow.FormState{Email: req.Email},
		SignInPath: s.cfg.SignInPath,
	}
	if err := render(w, r, s.views.SignUpPage(params), nil, ""); err != nil {
		s.log.ErrorContext(r.Context(), "render sign-up page failed",
			logger.Error(err),
			logger.Component("authweb"),
		)
	}
}

func (s *Service) signUpSubmit(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := binder.Form()(r, &req); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	rec := navigation.NewRecorder()
	ctrl := s.newController(rec)

	msg := ctrl.SubmitSignUp(r.Context(), authflow.FormState{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})

	params := SignUpPageParams{
		Form:       authflow.FormState{Email: ctrl.Form().Email},
		Message:    msg,
		SignInPath: s.cfg.SignInPath,
	}
	if err := render(w, r, s.views.SignUpPage(params), s.views.SignUpForm(params), signUpFormSelector); err != nil {
		s.log.ErrorContext(r.Context(), "render sign-up result failed",
			logger.Error(err),
			logger.Component("authweb"),
		)
	}
}

func (s *Service) callback(w http.ResponseWriter, r *http.Request) {
	rec := navigation.NewRecorder()
	resolver := oauthcallback.New(s.store, rec,
		oauthcallback.WithLogger(s.log),
		oauthcallback.WithSuccessPath(s.cfg.LandingPath),
		oauthcallback.WithFailurePath(s.cfg.SignInPath),
	)
	resolver.Resolve(r.Context())

	// The resolver always records a destination; the placeholder page only
	// exists for clients that render before following the redirect.
	kind, path := rec.Last()
	if kind == navigation.KindNone {
		if err := render(w, r, s.views.CallbackPage(CallbackPageParams{}), nil, ""); err != nil {
			s.log.ErrorContext(r.Context(), "render callback page failed",
				logger.Error(err),
				logger.Component("authweb"),
			)
		}
		return
	}

	if err := redirect(w, r, path); err != nil {
		s.log.ErrorContext(r.Context(), "callback redirect failed",
			logger.Error(err),
			logger.Component("authweb"),
		)
	}
}

func (s *Service) signOut(w http.ResponseWriter, r *http.Request) {
	if err := s.client.SignOut(r.Context()); err != nil {
		// The local session is gone either way; the user lands signed out.
		s.log.WarnContext(r.Context(), "provider sign-out failed",
			logger.Error(err),
			logger.Component("authweb"),
		)
	}

	if err := redirect(w, r, s.cfg.SignInPath); err != nil {
		s.log.ErrorContext(r.Context(), "redirect after sign-out failed",
			logger.Error(err),
			logger.Component("authweb"),
		)
	}
}
