package authweb

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Form fragment selectors patched on datastar submissions.
const (
	signInFormSelector = "#signin-form"
	signUpFormSelector = "#signup-form"
)

// isDataStar reports whether the request came from a datastar-driven form,
// which expects Server-Sent Events instead of a full document.
func isDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	if r.URL.Query().Has("datastar") {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}

// redirect sends the browser to url: an SSE redirect event for datastar
// requests, a plain 303 otherwise.
func redirect(w http.ResponseWriter, r *http.Request, url string) error {
	if isDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.Redirect(url)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
	return nil
}

// render writes the page for plain requests, or patches the form fragment at
// selector for datastar requests.
func render(w http.ResponseWriter, r *http.Request, page, fragment templ.Component, selector string) error {
	if isDataStar(r) && fragment != nil {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(fragment, datastar.WithSelector(selector))
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return page.Render(r.Context(), w)
}
