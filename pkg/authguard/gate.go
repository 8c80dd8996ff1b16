package authguard

import (
	"net/http"
	"strings"
)

// GateConfig declares the server-side path matcher: which prefixes require a
// session and which pages are only for signed-out visitors.
type GateConfig struct {
	// ProtectedPrefixes lists path prefixes that require an active session.
	ProtectedPrefixes []string `env:"GATE_PROTECTED_PREFIXES" envSeparator:"," envDefault:"/dashboard"`

	// GuestOnlyPaths lists exact paths that redirect away when a session
	// already exists (sign-in and sign-up pages).
	GuestOnlyPaths []string `env:"GATE_GUEST_ONLY_PATHS" envSeparator:"," envDefault:"/signin,/signup"`

	// SignInPath receives unauthenticated requests to protected prefixes.
	SignInPath string `env:"GATE_SIGNIN_PATH" envDefault:"/signin"`

	// LandingPath receives authenticated requests to guest-only paths.
	LandingPath string `env:"GATE_LANDING_PATH" envDefault:"/dashboard"`
}

// DefaultGateConfig mirrors the route table of the application: the
// dashboard is protected, the sign-in and sign-up pages are guest-only.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		ProtectedPrefixes: []string{"/dashboard"},
		GuestOnlyPaths:    []string{"/signin", "/signup"},
		SignInPath:        "/signin",
		LandingPath:       "/dashboard",
	}
}

// SessionCheck reports whether the request carries an active session. It is
// supplied by the caller so the gate stays independent of how sessions reach
// the server (cookie, header, upstream middleware).
type SessionCheck func(r *http.Request) bool

// RequestGate is the server-side second line of defense in front of the
// client-side guard: it intercepts navigation to protected prefixes without
// a session and to guest-only paths with one, before any page renders.
func RequestGate(cfg GateConfig, hasSession SessionCheck) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			authenticated := hasSession(r)

			for _, prefix := range cfg.ProtectedPrefixes {
				if strings.HasPrefix(path, prefix) && !authenticated {
					http.Redirect(w, r, cfg.SignInPath, http.StatusSeeOther)
					return
				}
			}

			for _, guest := range cfg.GuestOnlyPaths {
				if path == guest && authenticated {
					http.Redirect(w, r, cfg.LandingPath, http.StatusSeeOther)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
