package hostedauth

import "context"

// SessionListener receives provider-driven session transitions. A nil session
// means the session ended (sign-out, token expiry).
type SessionListener func(session *Session)

// Client is the consumed capability set of the hosted identity provider.
// Credential storage, password verification, token issuance, OAuth protocol
// negotiation, and email delivery all happen behind this boundary.
type Client interface {
	// GetSession returns the current session, or (nil, nil) when no session
	// exists. A non-nil error indicates the query itself failed.
	GetSession(ctx context.Context) (*Session, error)

	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)

	// SignInWithMagicLink requests a one-time sign-in link delivered by
	// email. No session exists until the user follows the link; the provider
	// redirects back to redirectURL afterwards.
	SignInWithMagicLink(ctx context.Context, email, redirectURL string) error

	// SignInWithOAuth begins a redirect-based OAuth flow and returns the
	// provider-hosted authorization URL to navigate to. No session exists
	// until the browser returns to redirectURL.
	SignInWithOAuth(ctx context.Context, provider, redirectURL string) (string, error)

	// SignUp registers a new account. The returned outcome distinguishes a
	// new account pending email verification from an address that already
	// had an account.
	SignUp(ctx context.Context, email, password, redirectURL string) (*SignUpOutcome, error)

	// SignOut ends the current session.
	SignOut(ctx context.Context) error

	// OnSessionChange registers a listener for provider-driven session
	// transitions (token refresh, sign-out triggered elsewhere, expiry).
	// The returned function releases the registration.
	OnSessionChange(listener SessionListener) (unsubscribe func())
}

// ExistenceChecker is an optional capability some provider clients expose:
// a best-effort pre-check for whether an account already exists. Sign-up
// flows use it to short-circuit before the create-account call, avoiding
// provider-side side effects (such as a duplicate verification email) for a
// doomed request. The provider's own already-registered error remains the
// authoritative fallback.
type ExistenceChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}
