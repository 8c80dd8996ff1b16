package authflow

import (
	"errors"

	"github.com/authfront/authfront/pkg/hostedauth"
	"github.com/authfront/authfront/pkg/validator"
)

// User-facing message texts. Credential failures get specific, actionable
// wording; transport failures get wording that does not imply a bad password.
const (
	msgInvalidCredentials = "Invalid email or password. Please check your credentials."
	msgEmailNotConfirmed  = "Please verify your email address before signing in. Check your inbox for a verification link."
	msgUserNotFound       = "No account found with this email address. Please sign up first."
	msgAlreadyRegistered  = "An account with this email already exists. Please sign in instead."
	msgInvalidEmail       = "Please enter a valid email address."
	msgRateLimited        = "Too many requests. Please wait a few minutes before trying again."
	msgSignupDisabled     = "Account registration is currently disabled. Please contact support."
	msgNetworkError       = "Network error. Please check your connection and try again."
	msgUnexpectedError    = "An unexpected error occurred. Please try again."

	msgMagicLinkSent = "Check your email for the sign-in link. Don't forget to check your spam folder!"
)

// classify converts a provider error into the message surfaced on the form.
// Credential errors are deliberately distinguished from transport errors so
// a network outage is never presented as wrong credentials.
func classify(err error) Message {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return warning(verrs.First())
	}

	switch {
	case errors.Is(err, hostedauth.ErrInvalidCredentials):
		return errorMessage(msgInvalidCredentials)
	case errors.Is(err, hostedauth.ErrEmailNotConfirmed):
		return errorMessage(msgEmailNotConfirmed)
	case errors.Is(err, hostedauth.ErrUserNotFound):
		return errorMessage(msgUserNotFound)
	case errors.Is(err, hostedauth.ErrEmailAlreadyExists):
		return errorMessage(msgAlreadyRegistered)
	case errors.Is(err, hostedauth.ErrInvalidEmail):
		return warning(msgInvalidEmail)
	case errors.Is(err, hostedauth.ErrRateLimited):
		return errorMessage(msgRateLimited)
	case errors.Is(err, hostedauth.ErrSignupDisabled):
		return errorMessage(msgSignupDisabled)
	case hostedauth.IsTransport(err):
		return errorMessage(msgNetworkError)
	default:
		return errorMessage(msgUnexpectedError)
	}
}
