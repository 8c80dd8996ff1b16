package authweb_test

import (
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/authfront/authfront/modules/authweb"
	"github.com/authfront/authfront/pkg/hostedauth"
)

// fakeClient is a function-field fake of hostedauth.Client. Unset fields
// panic so a test only stubs the calls it expects.
type fakeClient struct {
	getSession      func(ctx context.Context) (*hostedauth.Session, error)
	signInPassword  func(ctx context.Context, email, password string) (*hostedauth.Session, error)
	signInMagicLink func(ctx context.Context, email, redirectURL string) error
	signInOAuth     func(ctx context.Context, provider, redirectURL string) (string, error)
	signUp          func(ctx context.Context, email, password, redirectURL string) (*hostedauth.SignUpOutcome, error)
	signOut         func(ctx context.Context) error
}

func (c *fakeClient) GetSession(ctx context.Context) (*hostedauth.Session, error) {
	if c.getSession == nil {
		return nil, nil
	}
	return c.getSession(ctx)
}

func (c *fakeClient) SignInWithPassword(ctx context.Context, email, password string) (*hostedauth.Session, error) {
	if c.signInPassword == nil {
		panic("unexpected SignInWithPassword call")
	}
	return c.signInPassword(ctx, email, password)
}

func (c *fakeClient) SignInWithMagicLink(ctx context.Context, email, redirectURL string) error {
	if c.signInMagicLink == nil {
		panic("unexpected SignInWithMagicLink call")
	}
	return c.signInMagicLink(ctx, email, redirectURL)
}

func (c *fakeClient) SignInWithOAuth(ctx context.Context, provider, redirectURL string) (string, error) {
	if c.signInOAuth == nil {
		panic("unexpected SignInWithOAuth call")
	}
	return c.signInOAuth(ctx, provider, redirectURL)
}

func (c *fakeClient) SignUp(ctx context.Context, email, password, redirectURL string) (*hostedauth.SignUpOutcome, error) {
	if c.signUp == nil {
		panic("unexpected SignUp call")
	}
	return c.signUp(ctx, email, password, redirectURL)
}

func (c *fakeClient) SignOut(ctx context.Context) error {
	if c.signOut == nil {
		panic("unexpected SignOut call")
	}
	return c.signOut(ctx)
}

func (c *fakeClient) OnSessionChange(hostedauth.SessionListener) func() {
	return func() {}
}

// testViews renders minimal markup carrying the data the assertions need.
func testViews() *authweb.Views {
	return &authweb.Views{
		SignInPage: func(p authweb.SignInPageParams) templ.Component {
			return templ.Raw(fmt.Sprintf(
				`<main><form id="signin-form" data-kind="%s">%s|%s</form></main>`,
				p.Message.Kind, p.Form.Email, p.Message.Text,
			))
		},
		SignInForm: func(p authweb.SignInPageParams) templ.Component {
			return templ.Raw(fmt.Sprintf(
				`<form id="signin-form" data-kind="%s">%s|%s</form>`,
				p.Message.Kind, p.Form.Email, p.Message.Text,
			))
		},
		SignUpPage: func(p authweb.SignUpPageParams) templ.Component {
			return templ.Raw(fmt.Sprintf(
				`<main><form id="signup-form" data-kind="%s">%s|%s</form></main>`,
				p.Message.Kind, p.Form.Email, p.Message.Text,
			))
		},
		SignUpForm: func(p authweb.SignUpPageParams) templ.Component {
			return templ.Raw(fmt.Sprintf(
				`<form id="signup-form" data-kind="%s">%s|%s</form>`,
				p.Message.Kind, p.Form.Email, p.Message.Text,
			))
		},
		CallbackPage: func(authweb.CallbackPageParams) templ.Component {
			return templ.Raw(`<main>Completing sign in…</main>`)
		},
	}
}
