package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource yields the current bearer token, or "" when unauthenticated.
// The client only ever reads the token; it never mutates session state.
type TokenSource func() string

// AuthFailureHandler is invoked on any 401 response before the failure is
// returned to the caller.
type AuthFailureHandler func()

// RequestInterceptor transforms an outgoing request in place.
type RequestInterceptor func(*http.Request)

// ResponseInterceptor observes the outcome of a request. It receives the
// response (nil on transport failure) and the failure so far, and returns
// the failure to propagate, possibly transformed.
type ResponseInterceptor func(*http.Response, error) error

// Client is the shared outbound HTTP gateway.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	tokenSource      TokenSource
	reqInterceptors  []RequestInterceptor
	respInterceptors []ResponseInterceptor
	log              *slog.Logger
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.apply(c)

	// Built-in stages run before any custom interceptor so customs observe
	// the fully-prepared request and the classified failure.
	c.reqInterceptors = append(
		[]RequestInterceptor{jsonHeaders, requestID, c.bearerToken},
		c.reqInterceptors...,
	)
	c.respInterceptors = append(
		[]ResponseInterceptor{c.authFailure(cfg.onAuthFailure)},
		c.respInterceptors...,
	)

	return c, nil
}

// Get issues a GET request and decodes the response body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE request and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}

	for _, interceptor := range c.reqInterceptors {
		interceptor(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("apiclient: %s %s: %w", method, path, err)
		return c.observe(nil, err)
	}
	defer resp.Body.Close()

	data, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return c.observe(resp, fmt.Errorf("apiclient: read response: %w", readErr))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.observe(resp, decodeError(resp.StatusCode, data))
	}

	if err := c.observe(resp, nil); err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("apiclient: decode response body: %w", err)
		}
	}
	return nil
}

// observe runs the response pipeline in order, threading the failure through
// each stage.
func (c *Client) observe(resp *http.Response, err error) error {
	for _, interceptor := range c.respInterceptors {
		err = interceptor(resp, err)
	}
	return err
}

func (c *Client) bearerToken(req *http.Request) {
	if c.tokenSource == nil {
		return
	}
	if token := c.tokenSource(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// authFailure is the named 401 stage: it triggers the handler and passes the
// original failure through untouched. All other statuses, 422 included, are
// none of its business.
func (c *Client) authFailure(handler AuthFailureHandler) ResponseInterceptor {
	return func(resp *http.Response, err error) error {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized && handler != nil {
			c.log.Debug("authentication failure, forcing logout",
				slog.String("url", resp.Request.URL.Path))
			handler()
		}
		return err
	}
}
