// Package authweb mounts the authentication pages: sign-in, sign-up, the
// provider callback, and sign-out. Views are injected as templ components so
// applications keep full control over markup; the module owns routing, form
// binding, flow control, and redirects.
//
// Plain form posts receive full-page renders and 303 redirects. Datastar
// submissions receive SSE fragment patches and SSE redirects instead, so the
// pages progressively enhance without separate handler code.
package authweb
