// Package authflow is the per-form state machine behind the sign-in and
// sign-up forms: it validates fields locally, invokes the hosted provider
// exactly once per attempt, classifies the result into a warning, error, or
// success message, and performs the follow-up navigation where one exists.
//
// One controller serves one form instance. While any of its operations is in
// flight, further submits are rejected as no-ops; the in-flight flag is
// cleared on every exit path, including panics.
//
//	ctrl := authflow.NewController(client, store, nav,
//		authflow.WithCallbackURL("https://app.example.com/auth/callback"),
//	)
//
//	msg := ctrl.SubmitSignIn(ctx, authflow.MethodPassword, authflow.FormState{
//		Email:    email,
//		Password: password,
//	})
//	if !msg.IsZero() {
//		// render msg.Kind / msg.Text on the form
//	}
package authflow
