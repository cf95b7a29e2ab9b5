// Package api is the single choke point for all calls to the card platform
// backend. Every request flows through one pipeline that attaches the bearer
// token, and every failure is normalized into a display-ready *Error.
package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request; there is no retry or backoff layered
// on top, a slow call simply fails.
const DefaultTimeout = 15 * time.Second

// TokenSource yields the bearer token to attach to outgoing requests. It is
// consulted immediately before each request, so a token rotated between two
// calls is always honored. An empty string means "send no Authorization
// header".
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns the same token. Useful in
// tests and for one-off calls with a token that is not yet persisted.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// Client is the backend API client. Construct it with NewClient and reach the
// endpoint groups through the service fields.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *zap.Logger

	// Auth groups the authentication and profile endpoints.
	Auth *AuthService
	// Cards groups the business-card endpoints.
	Cards *CardsService
	// Team groups the team-card endpoints.
	Team *TeamService
	// Leads groups the lead endpoints.
	Leads *LeadsService
	// Customization groups the card-customization endpoints.
	Customization *CustomizationService
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a backend client rooted at baseURL. tokens supplies the
// bearer token per request; pass the credential store so a freshly persisted
// token is picked up without re-wiring.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		log:     zap.NewNop(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{client: c}
	c.Cards = &CardsService{client: c}
	c.Team = &TeamService{client: c}
	c.Leads = &LeadsService{client: c}
	c.Customization = &CustomizationService{client: c}

	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }
