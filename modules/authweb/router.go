package authweb

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/authfront/authfront/pkg/authguard"
)

// RouterOptions configures the module router.
type RouterOptions struct {
	Service *Service

	// Gate optionally wraps the routes with the server-side access gate.
	// When nil the pages are reachable regardless of session state and only
	// the client-side guard applies.
	Gate func(http.Handler) http.Handler
}

// Router mounts the authentication pages.
//
// Example:
//
//	svc := authweb.NewService(cfg, client, store, views)
//	gate := authguard.RequestGate(authguard.DefaultGateConfig(), svc.HasSession)
//
//	r := chi.NewRouter()
//	r.Mount("/", authweb.Router(authweb.RouterOptions{Service: svc, Gate: gate}))
func Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	if opts.Gate != nil {
		r.Use(opts.Gate)
	}

	svc := opts.Service
	cfg := svc.cfg

	r.Get(cfg.SignInPath, svc.signInPage)
	r.Post(cfg.SignInPath, svc.signInSubmit)

	r.Get(cfg.SignUpPath, svc.signUpPage)
	r.Post(cfg.SignUpPath, svc.signUpSubmit)

	r.Get(cfg.CallbackPath, svc.callback)
	r.Post(cfg.SignOutPath, svc.signOut)

	return r
}

// DefaultGate builds the request gate matching the module's route table.
func DefaultGate(cfg Config, svc *Service) func(http.Handler) http.Handler {
	return authguard.RequestGate(authguard.GateConfig{
		ProtectedPrefixes: []string{cfg.LandingPath},
		GuestOnlyPaths:    []string{cfg.SignInPath, cfg.SignUpPath},
		SignInPath:        cfg.SignInPath,
		LandingPath:       cfg.LandingPath,
	}, svc.HasSession)
}
