package hostedauth

import "errors"

// Credential errors reported by the provider. These are expected, recoverable
// failures: the user can retry with corrected input or switch flow.
var (
	ErrInvalidCredentials = errors.New("hostedauth: invalid credentials")
	ErrEmailNotConfirmed  = errors.New("hostedauth: email not confirmed")
	ErrUserNotFound       = errors.New("hostedauth: user not found")
	ErrEmailAlreadyExists = errors.New("hostedauth: email already registered")
	ErrInvalidEmail       = errors.New("hostedauth: invalid email address")
	ErrRateLimited        = errors.New("hostedauth: too many requests")
	ErrSignupDisabled     = errors.New("hostedauth: signup disabled")
)

// OAuth errors
var (
	ErrProviderDisabled = errors.New("hostedauth: oauth provider not enabled")
)

// ErrTransport marks network-level failures (timeout, unreachable host,
// malformed response). Callers distinguish it from credential errors so the
// user is never told their password is wrong when the network was.
var ErrTransport = errors.New("hostedauth: provider unreachable")

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
