// Package hostedauth defines the boundary to the hosted identity provider
// and a concrete client for GoTrue-style REST APIs.
//
// The provider owns everything cryptographic: credential storage, password
// verification, token issuance, OAuth protocol negotiation, and email
// delivery. This package only collects those capabilities behind the Client
// interface and translates provider failures into a sentinel error taxonomy
// that the flow layer can classify with errors.Is:
//
//	session, err := client.SignInWithPassword(ctx, email, password)
//	switch {
//	case errors.Is(err, hostedauth.ErrInvalidCredentials):
//		// wrong email or password
//	case errors.Is(err, hostedauth.ErrEmailNotConfirmed):
//		// account exists but is unverified
//	case hostedauth.IsTransport(err):
//		// network problem, not a credential problem
//	}
//
// The GoTrueClient implementation holds the access token in memory only.
// Durable persistence, expiry handling, and refresh-token rotation are the
// provider's responsibility; consumers observe the resulting transitions via
// OnSessionChange.
package hostedauth
