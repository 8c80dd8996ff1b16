package hostedauth

import "github.com/google/uuid"

// Authentication method identifiers used to track how users sign in.
const (
	MethodPassword  = "password"
	MethodMagicLink = "magic_link"
	MethodOAuth     = "oauth"
)

// OAuth provider identifiers accepted by SignInWithOAuth.
const (
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

// Session is the client-visible evidence of an authenticated identity.
// Absence of a session is expressed as a nil *Session; a non-nil Session
// always carries a user ID and email.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// SignUpOutcome reports the result of a successful sign-up call.
// The hosted provider accepts sign-ups for addresses that already have an
// account without error; AlreadyRegistered distinguishes that case from a
// genuinely new account awaiting email verification.
type SignUpOutcome struct {
	Email             string
	AlreadyRegistered bool
}
