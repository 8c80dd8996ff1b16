// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts, and probe handlers. Run blocks until the context is cancelled or
// an interrupt/TERM signal arrives, then drains in-flight requests within the
// shutdown deadline.
package httpserver
