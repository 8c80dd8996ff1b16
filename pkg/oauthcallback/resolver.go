// Package oauthcallback resolves the landing page the provider redirects to
// after an OAuth or magic-link flow. The page itself renders nothing but a
// placeholder; the resolver asks the provider whether the redirect carried a
// valid session and replaces the callback URL with the real destination, so
// the callback never remains in browser history.
package oauthcallback

import (
	"context"
	"log/slog"
	"sync"

	"github.com/authfront/authfront/pkg/logger"
	"github.com/authfront/authfront/pkg/navigation"
	"github.com/authfront/authfront/pkg/sessionstate"
)

// Default destinations after resolution.
const (
	DefaultSuccessPath = "/dashboard"
	DefaultFailurePath = "/signin"
)

// Resolver performs the one-shot post-redirect session check. Each callback
// page load constructs its own resolver; a resolver never resolves twice, so
// re-renders or duplicate events cannot issue a second navigation.
type Resolver struct {
	store *sessionstate.Store
	nav   navigation.Navigator
	log   *slog.Logger

	successPath string
	failurePath string

	once sync.Once
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets a custom logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// WithSuccessPath sets the destination when the redirect produced a session.
func WithSuccessPath(path string) Option {
	return func(r *Resolver) {
		if path != "" {
			r.successPath = path
		}
	}
}

// WithFailurePath sets the destination when it did not.
func WithFailurePath(path string) Option {
	return func(r *Resolver) {
		if path != "" {
			r.failurePath = path
		}
	}
}

// New creates a resolver bound to the session store and navigator.
func New(store *sessionstate.Store, nav navigation.Navigator, opts ...Option) *Resolver {
	r := &Resolver{
		store:       store,
		nav:         nav,
		log:         logger.Discard(),
		successPath: DefaultSuccessPath,
		failurePath: DefaultFailurePath,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve refreshes the session state and replaces the callback page with the
// destination it implies. A query failure routes to the sign-in page rather
// than leaving the user parked on the callback. Calls after the first are
// no-ops.
func (r *Resolver) Resolve(ctx context.Context) {
	r.once.Do(func() {
		if err := r.store.Refresh(ctx); err != nil {
			r.log.WarnContext(ctx, "post-redirect session query failed",
				logger.Error(err),
				logger.Component("oauthcallback"),
			)
			r.nav.Replace(r.failurePath)
			return
		}

		if r.store.State().Authenticated() {
			r.nav.Replace(r.successPath)
			return
		}
		r.nav.Replace(r.failurePath)
	})
}
