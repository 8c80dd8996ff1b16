// Package validator provides composable form validation rules for the
// authentication flows: required fields, email shape, and the password
// strength policy surfaced in the sign-up form.
//
// Rules are evaluated locally before any provider call:
//
//	err := validator.Apply(
//		validator.Required("email", email),
//		validator.ValidEmail("email", email),
//		validator.StrongPassword("password", password),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//		// surface verrs.First() as a form warning
//	}
//
// Password checks are also available individually via CheckPassword for
// rendering per-requirement indicators while the user types.
package validator
