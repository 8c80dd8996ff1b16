package hostedauth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/authfront/authfront/pkg/logger"
	"github.com/authfront/authfront/pkg/sanitizer"
)

// Config holds the connection settings for a GoTrue-style hosted provider.
type Config struct {
	// BaseURL is the root of the provider's auth API, e.g.
	// https://project.supabase.co/auth/v1
	BaseURL string `env:"AUTH_PROVIDER_URL,required"`

	// APIKey is the public (anon) API key sent with every request.
	APIKey string `env:"AUTH_PROVIDER_KEY,required"`

	// OAuthProviders lists the providers enabled on the hosted project.
	// SignInWithOAuth rejects anything else without a network call.
	OAuthProviders []string `env:"AUTH_OAUTH_PROVIDERS" envSeparator:"," envDefault:"google"`

	RequestTimeout time.Duration `env:"AUTH_PROVIDER_TIMEOUT" envDefault:"10s"`
}

// GoTrueClient implements Client against a GoTrue-style REST API (the API
// surface the hosted provider in question exposes). It holds the access
// token as an in-memory projection only; durable token persistence and
// refresh rotation are the provider SDK's concern, not this client's.
type GoTrueClient struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger

	mu          sync.Mutex
	accessToken string
	current     *Session

	listenerMu sync.Mutex
	listeners  map[int]SessionListener
	nextID     int
}

// GoTrueOption configures the client.
type GoTrueOption func(*GoTrueClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) GoTrueOption {
	return func(g *GoTrueClient) {
		if c != nil {
			g.httpClient = c
		}
	}
}

// WithGoTrueLogger sets a custom logger for the client.
func WithGoTrueLogger(log *slog.Logger) GoTrueOption {
	return func(g *GoTrueClient) {
		if log != nil {
			g.logger = log
		}
	}
}

// NewGoTrueClient creates a provider client for the given configuration.
func NewGoTrueClient(cfg Config, opts ...GoTrueOption) *GoTrueClient {
	g := &GoTrueClient{
		cfg:       cfg,
		logger:    logger.Discard(),
		listeners: make(map[int]SessionListener),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.httpClient == nil {
		timeout := cfg.RequestTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		g.httpClient = &http.Client{Timeout: timeout}
	}

	return g
}

// apiUser is the provider's user representation. Identities carries one entry
// per linked credential; the provider answers duplicate sign-ups with an
// obfuscated user that has an empty identities list.
type apiUser struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	Identities []json.RawMessage `json:"identities"`
}

type tokenResponse struct {
	AccessToken string  `json:"access_token"`
	User        apiUser `json:"user"`
}

// apiError covers both error payload shapes the provider uses: the token
// endpoint's {error, error_description} and the generic {code, msg,
// error_code}.
type apiError struct {
	Code             int    `json:"code"`
	Msg              string `json:"msg"`
	ErrorCode        string `json:"error_code"`
	ErrorField       string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e apiError) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	return e.ErrorField
}

// GetSession returns the current session projection, revalidating it against
// the provider's user endpoint. No token means no session.
func (g *GoTrueClient) GetSession(ctx context.Context) (*Session, error) {
	g.mu.Lock()
	token := g.accessToken
	g.mu.Unlock()

	if token == "" {
		return nil, nil
	}

	req, err := g.newRequest(ctx, http.MethodGet, "/user", nil, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// Token expired or revoked provider-side: fold into "absent".
		g.setSession("", nil)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, g.decodeError(resp)
	}

	var user apiUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	session, err := sessionFromUser(user)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.current = session
	g.mu.Unlock()

	return session, nil
}

// SignInWithPassword exchanges email and password for a session.
func (g *GoTrueClient) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	email = sanitizer.NormalizeEmail(email)

	body := map[string]string{"email": email, "password": password}
	req, err := g.newRequest(ctx, http.MethodPost, "/token", url.Values{"grant_type": {"password"}}, body)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.decodeError(resp)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	session, err := sessionFromUser(tr.User)
	if err != nil {
		return nil, err
	}

	g.setSession(tr.AccessToken, session)
	g.logger.InfoContext(ctx, "password sign-in succeeded",
		logger.UserID(session.UserID.String()),
		logger.Component("hostedauth"),
	)

	return session, nil
}

// SignInWithMagicLink asks the provider to email a one-time sign-in link.
func (g *GoTrueClient) SignInWithMagicLink(ctx context.Context, email, redirectURL string) error {
	email = sanitizer.NormalizeEmail(email)

	body := map[string]any{"email": email, "create_user": true}
	req, err := g.newRequest(ctx, http.MethodPost, "/otp", url.Values{"redirect_to": {redirectURL}}, body)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return g.decodeError(resp)
	}

	return nil
}

// SignInWithOAuth returns the provider-hosted authorization URL for the
// requested OAuth provider. The actual protocol flow runs entirely on the
// provider's side; control returns via the browser redirect to redirectURL.
func (g *GoTrueClient) SignInWithOAuth(ctx context.Context, provider, redirectURL string) (string, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" || !slices.Contains(g.cfg.OAuthProviders, provider) {
		return "", fmt.Errorf("%w: %q", ErrProviderDisabled, provider)
	}

	authorize, err := url.Parse(strings.TrimSuffix(g.cfg.BaseURL, "/") + "/authorize")
	if err != nil {
		return "", fmt.Errorf("invalid provider base URL: %w", err)
	}

	q := authorize.Query()
	q.Set("provider", provider)
	q.Set("redirect_to", redirectURL)
	authorize.RawQuery = q.Encode()

	return authorize.String(), nil
}

// SignUp registers a new account. The provider deliberately does not error on
// duplicate addresses (account enumeration hardening); it answers with a user
// whose identities list is empty, which this client surfaces as
// AlreadyRegistered.
func (g *GoTrueClient) SignUp(ctx context.Context, email, password, redirectURL string) (*SignUpOutcome, error) {
	email = sanitizer.NormalizeEmail(email)

	body := map[string]string{"email": email, "password": password}
	req, err := g.newRequest(ctx, http.MethodPost, "/signup", url.Values{"redirect_to": {redirectURL}}, body)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.decodeError(resp)
	}

	var user apiUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, errors.Join(ErrTransport, err)
	}

	return &SignUpOutcome{
		Email:             email,
		AlreadyRegistered: len(user.Identities) == 0,
	}, nil
}

// SignOut ends the session provider-side and clears the local projection.
// The local projection is cleared even when the provider call fails: a
// sign-out request is an unambiguous statement of intent.
func (g *GoTrueClient) SignOut(ctx context.Context) error {
	g.mu.Lock()
	token := g.accessToken
	g.mu.Unlock()

	defer g.setSession("", nil)

	if token == "" {
		return nil
	}

	req, err := g.newRequest(ctx, http.MethodPost, "/logout", nil, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return g.decodeError(resp)
	}

	return nil
}

// Health pings the provider's health endpoint. Suitable as a readiness
// check.
func (g *GoTrueClient) Health(ctx context.Context) error {
	req, err := g.newRequest(ctx, http.MethodGet, "/health", nil, nil)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider health returned %d", resp.StatusCode)
	}
	return nil
}

// OnSessionChange registers a listener for session transitions originating in
// this client (sign-in, sign-out, detected expiry).
func (g *GoTrueClient) OnSessionChange(listener SessionListener) func() {
	g.listenerMu.Lock()
	id := g.nextID
	g.nextID++
	g.listeners[id] = listener
	g.listenerMu.Unlock()

	return func() {
		g.listenerMu.Lock()
		delete(g.listeners, id)
		g.listenerMu.Unlock()
	}
}

// setSession swaps the in-memory projection and notifies listeners when the
// session actually changed.
func (g *GoTrueClient) setSession(token string, session *Session) {
	g.mu.Lock()
	changed := g.accessToken != token || !sameSession(g.current, session)
	g.accessToken = token
	g.current = session
	g.mu.Unlock()

	if !changed {
		return
	}

	g.listenerMu.Lock()
	listeners := make([]SessionListener, 0, len(g.listeners))
	for _, l := range g.listeners {
		listeners = append(listeners, l)
	}
	g.listenerMu.Unlock()

	for _, l := range listeners {
		l(session)
	}
}

func sameSession(a, b *Session) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.UserID == b.UserID && a.Email == b.Email
}

func sessionFromUser(user apiUser) (*Session, error) {
	id, err := uuid.Parse(user.ID)
	if err != nil {
		return nil, errors.Join(ErrTransport, fmt.Errorf("malformed user id %q: %w", user.ID, err))
	}
	return &Session{UserID: id, Email: user.Email}, nil
}

func (g *GoTrueClient) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := strings.TrimSuffix(g.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("apikey", g.cfg.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// decodeError converts a non-200 provider response into the sentinel error
// taxonomy. Classification prefers the machine-readable error_code, falls
// back to message substrings (older provider versions), then to the status
// code.
func (g *GoTrueClient) decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return errors.Join(ErrTransport, err)
	}

	var apiErr apiError
	_ = json.Unmarshal(raw, &apiErr)
	msg := apiErr.message()

	switch apiErr.ErrorCode {
	case "invalid_credentials":
		return ErrInvalidCredentials
	case "email_not_confirmed":
		return ErrEmailNotConfirmed
	case "user_not_found":
		return ErrUserNotFound
	case "user_already_exists", "email_exists":
		return ErrEmailAlreadyExists
	case "over_request_rate_limit", "over_email_send_rate_limit":
		return ErrRateLimited
	case "signup_disabled", "email_provider_disabled":
		return ErrSignupDisabled
	case "validation_failed":
		return ErrInvalidEmail
	}

	switch {
	case containsAny(msg, "Invalid login credentials", "Invalid email or password"):
		return ErrInvalidCredentials
	case strings.Contains(msg, "Email not confirmed"):
		return ErrEmailNotConfirmed
	case strings.Contains(msg, "User not found"):
		return ErrUserNotFound
	case strings.Contains(msg, "already registered"):
		return ErrEmailAlreadyExists
	case containsAny(msg, "Too many requests", "rate limit"):
		return ErrRateLimited
	case strings.Contains(msg, "Signup is disabled"):
		return ErrSignupDisabled
	case containsAny(msg, "Invalid email", "Unable to validate email"):
		return ErrInvalidEmail
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusUnprocessableEntity:
		return ErrEmailAlreadyExists
	}

	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return errors.Join(ErrTransport, fmt.Errorf("provider returned %d: %s", resp.StatusCode, msg))
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
