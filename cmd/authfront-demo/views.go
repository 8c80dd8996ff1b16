package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/authfront/authfront/modules/authweb"
	"github.com/authfront/authfront/pkg/authflow"
	"github.com/authfront/authfront/pkg/sessionstate"
)

func component(f func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return f(w)
	})
}

func page(title string, body func(w io.Writer) error) templ.Component {
	return component(func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html><html><head><title>%s</title></head><body>", html.EscapeString(title)); err != nil {
			return err
		}
		if err := body(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func messageHTML(w io.Writer, msg authflow.Message) error {
	if msg.IsZero() {
		return nil
	}
	_, err := fmt.Fprintf(w, `<p class=%q>%s</p>`, msg.Kind, html.EscapeString(msg.Text))
	return err
}

func signInFormHTML(w io.Writer, p authweb.SignInPageParams) error {
	if err := messageHTML(w, p.Message); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, `<form id="signin-form" method="post" action="/signin">`+
		`<input type="email" name="email" value=%q placeholder="Email">`+
		`<input type="password" name="password" placeholder="Password">`+
		`<button type="submit" name="method" value="password">Sign in</button>`+
		`<button type="submit" name="method" value="magic_link">Email me a link</button>`+
		`<button type="submit" name="provider" value="google">Continue with Google</button>`+
		`</form><p><a href=%q>Create an account</a></p>`,
		p.Form.Email, p.SignUpPath)
	return err
}

func signUpFormHTML(w io.Writer, p authweb.SignUpPageParams) error {
	if err := messageHTML(w, p.Message); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, `<form id="signup-form" method="post" action="/signup">`+
		`<input type="email" name="email" value=%q placeholder="Email">`+
		`<input type="password" name="password" placeholder="Password">`+
		`<input type="password" name="confirm_password" placeholder="Confirm password">`+
		`<button type="submit">Sign up</button>`+
		`</form><p><a href=%q>Already registered? Sign in</a></p>`,
		p.Form.Email, p.SignInPath)
	return err
}

func demoViews() *authweb.Views {
	return &authweb.Views{
		SignInPage: func(p authweb.SignInPageParams) templ.Component {
			return page("Sign in", func(w io.Writer) error { return signInFormHTML(w, p) })
		},
		SignInForm: func(p authweb.SignInPageParams) templ.Component {
			return component(func(w io.Writer) error { return signInFormHTML(w, p) })
		},
		SignUpPage: func(p authweb.SignUpPageParams) templ.Component {
			return page("Sign up", func(w io.Writer) error { return signUpFormHTML(w, p) })
		},
		SignUpForm: func(p authweb.SignUpPageParams) templ.Component {
			return component(func(w io.Writer) error { return signUpFormHTML(w, p) })
		},
		CallbackPage: func(authweb.CallbackPageParams) templ.Component {
			return page("Signing in", func(w io.Writer) error {
				_, err := io.WriteString(w, "<p>Completing sign in…</p>")
				return err
			})
		},
	}
}

func dashboardHandler(store *sessionstate.Store, web authweb.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := store.State()
		if !state.Authenticated() {
			http.Redirect(w, r, web.SignInPath, http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = page("Dashboard", func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				`<h1>Signed in as %s</h1><form method="post" action=%q><button type="submit">Sign out</button></form>`,
				html.EscapeString(state.Session.Email), web.SignOutPath)
			return err
		}).Render(r.Context(), w)
	}
}
