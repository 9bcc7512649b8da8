package apiclient

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/jrsteele09/go-boarding-client/internal/config"
)

// TokenReader gives read-only access to the persisted bearer token
type TokenReader interface {
	Get() (string, bool)
}

type Option func(*Client)

// Client talks to the boarding house API. Every request carries the stored token, if any.
type Client struct {
	rest      *resty.Client
	transport *authTransport
	tokenURL  string
}

func New(cfg config.APIConfig, tokens TokenReader, opts ...Option) *Client {
	transport := &authTransport{base: http.DefaultTransport, tokens: tokens}
	c := &Client{
		rest:      resty.New().SetBaseURL(cfg.GetAPIBaseURL()).SetTransport(transport),
		transport: transport,
		tokenURL:  cfg.GetAPIBaseURL() + cfg.GetTokenPath(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithRequestLogging logs the outcome of every call, the credential exchange included
func WithRequestLogging() Option {
	return func(c *Client) {
		c.transport.logCalls = true
	}
}

// NewRequest starts a request against the API base URL
func (c *Client) NewRequest(ctx context.Context) *resty.Request {
	return c.rest.R().SetContext(ctx)
}

// HTTPClient exposes the underlying client, which applies the same headers as NewRequest
func (c *Client) HTTPClient() *http.Client {
	return c.rest.GetClient()
}
