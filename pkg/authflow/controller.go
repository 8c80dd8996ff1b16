package authflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/authfront/authfront/pkg/hostedauth"
	"github.com/authfront/authfront/pkg/logger"
	"github.com/authfront/authfront/pkg/navigation"
	"github.com/authfront/authfront/pkg/sanitizer"
	"github.com/authfront/authfront/pkg/sessionstate"
	"github.com/authfront/authfront/pkg/validator"
)

// Controller drives one authentication form end to end: field validation,
// a single provider invocation, result classification, and the navigation or
// message that follows. Each form instance owns exactly one controller; the
// controller's state is never shared between forms.
type Controller struct {
	client hostedauth.Client
	store  *sessionstate.Store
	nav    navigation.Navigator
	logger *slog.Logger

	callbackURL string
	landingPath string

	mu         sync.Mutex
	form       FormState
	submitting map[Operation]bool
	message    Message
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithControllerLogger sets a custom logger.
func WithControllerLogger(log *slog.Logger) ControllerOption {
	return func(c *Controller) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithCallbackURL sets the URL the provider redirects back to after magic
// link and OAuth completion.
func WithCallbackURL(url string) ControllerOption {
	return func(c *Controller) {
		if url != "" {
			c.callbackURL = url
		}
	}
}

// WithLandingPath sets the destination after a successful password sign-in.
func WithLandingPath(path string) ControllerOption {
	return func(c *Controller) {
		if path != "" {
			c.landingPath = path
		}
	}
}

// NewController creates a flow controller for one form.
func NewController(client hostedauth.Client, store *sessionstate.Store, nav navigation.Navigator, opts ...ControllerOption) *Controller {
	c := &Controller{
		client:      client,
		store:       store,
		nav:         nav,
		logger:      logger.Discard(),
		callbackURL: "/auth/callback",
		landingPath: "/dashboard",
		submitting:  make(map[Operation]bool),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Message returns the last surfaced message.
func (c *Controller) Message() Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Form returns the current field values for re-rendering the form.
func (c *Controller) Form() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Controller) setForm(form FormState) {
	c.mu.Lock()
	c.form = form
	c.mu.Unlock()
}

// Submitting reports whether the given operation is in flight.
func (c *Controller) Submitting(op Operation) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting[op]
}

// Busy reports whether any operation is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.anySubmittingLocked()
}

func (c *Controller) anySubmittingLocked() bool {
	for _, v := range c.submitting {
		if v {
			return true
		}
	}
	return false
}

// begin claims the operation's in-flight flag. It rejects the claim while
// any operation on this controller is outstanding, which is the sole mutual
// exclusion discipline: rapid repeated clicks cannot dispatch a duplicate
// magic link or create an account twice.
func (c *Controller) begin(op Operation) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.anySubmittingLocked() {
		return false
	}
	c.submitting[op] = true
	c.message = Message{}
	return true
}

// finish releases the in-flight flag and records the outcome message. It
// runs deferred on every exit path, including panics, so no path leaves the
// form permanently disabled.
func (c *Controller) finish(op Operation, msg *Message) {
	if r := recover(); r != nil {
		c.logger.Error("submit panicked",
			slog.Any("panic", r),
			logger.Component("authflow"),
		)
		*msg = errorMessage(msgUnexpectedError)
	}

	c.mu.Lock()
	c.submitting[op] = false
	c.message = *msg
	c.mu.Unlock()
}

// SubmitSignIn runs one sign-in attempt using the chosen method. Validation
// failures surface as warnings before any network call; re-entrant calls
// while an operation is outstanding are no-ops returning an empty message.
func (c *Controller) SubmitSignIn(ctx context.Context, method Method, form FormState) Message {
	op := OperationPassword
	if method == MethodMagicLink {
		op = OperationMagicLink
	}
	if !c.begin(op) {
		return Message{}
	}

	var msg Message
	defer c.finish(op, &msg)

	form.Email = sanitizer.NormalizeEmail(form.Email)
	c.setForm(form)

	rules := []validator.Rule{
		validator.Required("email", form.Email),
		validator.ValidEmail("email", form.Email),
	}
	if method == MethodPassword {
		rules = append(rules, validator.Required("password", form.Password))
	}
	if err := validator.Apply(rules...); err != nil {
		msg = warning(validator.ExtractValidationErrors(err).First())
		return msg
	}

	switch method {
	case MethodMagicLink:
		if err := c.client.SignInWithMagicLink(ctx, form.Email, c.callbackURL); err != nil {
			c.logger.WarnContext(ctx, "magic link request failed",
				logger.Error(err),
				logger.Component("authflow"),
			)
			msg = classify(err)
			return msg
		}
		// No session exists yet; the emailed link completes the flow.
		msg = success(msgMagicLinkSent)
		return msg

	default:
		session, err := c.client.SignInWithPassword(ctx, form.Email, form.Password)
		if err != nil {
			c.logger.WarnContext(ctx, "password sign-in failed",
				logger.Error(err),
				logger.Component("authflow"),
			)
			msg = classify(err)
			return msg
		}

		// Settle the store before navigating so the landing page's guard
		// sees the fresh session instead of redirecting back here.
		if err := c.store.Refresh(ctx); err != nil {
			c.logger.WarnContext(ctx, "session refresh after sign-in failed",
				logger.Error(err),
				logger.UserID(session.UserID.String()),
				logger.Component("authflow"),
			)
		}
		c.nav.Push(c.landingPath)
		return msg
	}
}

// SubmitSignUp runs one account registration attempt. The full password
// policy and the confirmation match are enforced locally first; when the
// provider client offers an existence pre-check, a known-duplicate address
// short-circuits before the create-account call so the provider performs no
// side effects (such as a second verification email) for a doomed request.
// The provider's own already-registered answer remains handled as a
// fallback.
func (c *Controller) SubmitSignUp(ctx context.Context, form FormState) Message {
	if !c.begin(OperationSignUp) {
		return Message{}
	}

	var msg Message
	defer c.finish(OperationSignUp, &msg)

	form.Email = sanitizer.NormalizeEmail(form.Email)
	c.setForm(form)

	if err := validator.Apply(
		validator.Required("email", form.Email),
		validator.ValidEmail("email", form.Email),
		validator.Required("password", form.Password),
		validator.Required("confirm password", form.ConfirmPassword),
		validator.EqualStrings("confirm password", form.ConfirmPassword, form.Password),
		validator.StrongPassword("password", form.Password),
	); err != nil {
		msg = warning(validator.ExtractValidationErrors(err).First())
		return msg
	}

	if checker, ok := c.client.(hostedauth.ExistenceChecker); ok {
		exists, err := checker.EmailExists(ctx, form.Email)
		if err != nil {
			// Best-effort shortcut only; the sign-up call decides.
			c.logger.DebugContext(ctx, "existence pre-check failed",
				logger.Error(err),
				logger.Component("authflow"),
			)
		} else if exists {
			msg = errorMessage(msgAlreadyRegistered)
			return msg
		}
	}

	outcome, err := c.client.SignUp(ctx, form.Email, form.Password, c.callbackURL)
	if err != nil {
		c.logger.WarnContext(ctx, "sign-up failed",
			logger.Error(err),
			logger.Component("authflow"),
		)
		msg = classify(err)
		return msg
	}

	if outcome.AlreadyRegistered {
		msg = errorMessage(msgAlreadyRegistered)
		return msg
	}

	// Account pending verification: no session, no navigation. The form is
	// cleared so a stray resubmit cannot replay the registration.
	c.setForm(FormState{})
	msg = success(fmt.Sprintf("Success! Check %s for the verification link.", form.Email))
	return msg
}

// SubmitOAuth begins the redirect-based OAuth flow with the named provider.
// On success the navigator is pointed at the provider-hosted authorization
// URL and control leaves the page; only a synchronous failure (provider
// disabled or misconfigured) produces a message.
func (c *Controller) SubmitOAuth(ctx context.Context, provider string) Message {
	if !c.begin(OperationOAuth) {
		return Message{}
	}

	var msg Message
	defer c.finish(OperationOAuth, &msg)

	authURL, err := c.client.SignInWithOAuth(ctx, provider, c.callbackURL)
	if err != nil {
		c.logger.WarnContext(ctx, "oauth start failed",
			logger.Error(err),
			logger.Provider(provider),
			logger.Component("authflow"),
		)
		msg = errorMessage(fmt.Sprintf("Failed to sign in with %s. Please try again.", provider))
		return msg
	}

	c.nav.Push(authURL)
	return msg
}
