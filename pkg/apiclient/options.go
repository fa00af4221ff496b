package apiclient

import (
	"log/slog"
	"net/http"
	"time"
)

type config struct {
	httpClient       *http.Client
	timeout          time.Duration
	tokenSource      TokenSource
	onAuthFailure    AuthFailureHandler
	reqInterceptors  []RequestInterceptor
	respInterceptors []ResponseInterceptor
	log              *slog.Logger
}

func (cfg *config) apply(c *Client) {
	if cfg.httpClient != nil {
		c.httpClient = cfg.httpClient
	}
	if cfg.timeout > 0 {
		c.httpClient.Timeout = cfg.timeout
	}
	if cfg.tokenSource != nil {
		c.tokenSource = cfg.tokenSource
	}
	if cfg.log != nil {
		c.log = cfg.log
	}
	c.reqInterceptors = cfg.reqInterceptors
	c.respInterceptors = cfg.respInterceptors
}

// Option configures client creation.
type Option func(*config)

// WithHTTPClient replaces the default pooled client, e.g. for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *config) {
		if hc != nil {
			cfg.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

// WithTokenSource sets the session token lookup consulted before every
// request.
func WithTokenSource(src TokenSource) Option {
	return func(cfg *config) {
		if src != nil {
			cfg.tokenSource = src
		}
	}
}

// WithOnAuthFailure registers the handler invoked on any 401 response.
func WithOnAuthFailure(h AuthFailureHandler) Option {
	return func(cfg *config) {
		if h != nil {
			cfg.onAuthFailure = h
		}
	}
}

// WithRequestInterceptor appends a custom request stage after the built-ins.
func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(cfg *config) {
		if i != nil {
			cfg.reqInterceptors = append(cfg.reqInterceptors, i)
		}
	}
}

// WithResponseInterceptor appends a custom response stage after the
// built-in auth-failure stage.
func WithResponseInterceptor(i ResponseInterceptor) Option {
	return func(cfg *config) {
		if i != nil {
			cfg.respInterceptors = append(cfg.respInterceptors, i)
		}
	}
}

// WithLogger sets the logger; a discard logger is used by default.
func WithLogger(log *slog.Logger) Option {
	return func(cfg *config) {
		if log != nil {
			cfg.log = log
		}
	}
}
