package authweb

import (
	"github.com/a-h/templ"

	"github.com/authfront/authfront/pkg/authflow"
)

// SignInPageParams contains data for rendering the sign-in page and its form
// fragment. Form never carries password values back to the browser.
type SignInPageParams struct {
	Form       authflow.FormState
	Message    authflow.Message
	SignUpPath string
}

// SignUpPageParams contains data for rendering the sign-up page and its form
// fragment.
type SignUpPageParams struct {
	Form       authflow.FormState
	Message    authflow.Message
	SignInPath string
}

// CallbackPageParams contains data for rendering the transient callback
// placeholder. The page is only visible for the duration of one session
// query.
type CallbackPageParams struct{}

// Views supplies the templ components the module renders. Page components
// render full documents; the matching form components render only the form
// fragment and are patched in for datastar requests.
type Views struct {
	SignInPage func(SignInPageParams) templ.Component
	SignInForm func(SignInPageParams) templ.Component

	SignUpPage func(SignUpPageParams) templ.Component
	SignUpForm func(SignUpPageParams) templ.Component

	CallbackPage func(CallbackPageParams) templ.Component
}
