// Package apiclient talks to the OctoFit REST API.
//
// Every resource lives at <base><resource>/ and single records at
// <base><resource>/<id>/. Collection responses are either a bare JSON array
// or a pagination envelope with the array under "results"; DecodeCollection
// resolves both and falls back to an empty sequence for anything else.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/octofit/internal/app/system/metrics"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultDomain is the forwarding domain of the deployment host.
	DefaultDomain = "app.github.dev"
	// DefaultPort is the port the API listens on behind the forwarding domain.
	DefaultPort = 8000

	// RequestIDHeader carries the correlation id to the API.
	RequestIDHeader = "X-Request-ID"
)

// BaseURL builds the API base for a deployment host, e.g.
// https://<host>-8000.app.github.dev/api/.
func BaseURL(host, domain string, port int) string {
	if domain == "" {
		domain = DefaultDomain
	}
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("https://%s-%d.%s/api/", strings.TrimSpace(host), port, domain)
}

// Client issues requests against one API base URL. It is safe for
// concurrent use.
type Client struct {
	base *url.URL
	hc   *http.Client
	log  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.hc = hc
		}
	}
}

// New returns a Client for baseURL, which must be an absolute http(s) URL.
// A trailing slash is added when missing so resource paths resolve under it.
func New(baseURL string, logger *zap.Logger, opts ...Option) (*Client, error) {
	u, err := ParseBase(baseURL)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	// No client-level Timeout: collection fetches are bounded only by the
	// caller's context.
	c := &Client{base: u, hc: &http.Client{}, log: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParseBase validates and normalizes an API base URL.
func ParseBase(baseURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api base url %q: missing host", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.base.String() }

// Endpoint returns the collection URL for resource, or the record URL when
// id is non-empty.
func (c *Client) Endpoint(resource, id string) string {
	p := strings.Trim(resource, "/") + "/"
	if id != "" {
		p += strings.Trim(id, "/") + "/"
	}
	return c.base.ResolveReference(&url.URL{Path: p}).String()
}

// List fetches a collection and returns its records undecoded.
func (c *Client) List(ctx context.Context, resource string) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, resource, c.Endpoint(resource, ""), nil)
	if err != nil {
		return nil, err
	}
	return DecodeCollection(body)
}

// ListInto fetches a collection and normalizes each record with fn. The
// index passed to fn is the record's position in the response.
func ListInto[T any](ctx context.Context, c *Client, resource string, fn func(i int, raw json.RawMessage) T) ([]T, error) {
	raws, err := c.List(ctx, resource)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		out = append(out, fn(i, raw))
	}
	return out, nil
}

// Create POSTs payload as JSON to the collection URL.
func (c *Client) Create(ctx context.Context, resource string, payload any) error {
	_, err := c.do(ctx, http.MethodPost, resource, c.Endpoint(resource, ""), payload)
	return err
}

// Update PUTs payload as JSON to the record URL.
func (c *Client) Update(ctx context.Context, resource, id string, payload any) error {
	if id == "" {
		return errors.New("update: empty id")
	}
	_, err := c.do(ctx, http.MethodPut, resource, c.Endpoint(resource, id), payload)
	return err
}

// Delete issues DELETE against the record URL.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	if id == "" {
		return errors.New("delete: empty id")
	}
	_, err := c.do(ctx, http.MethodDelete, resource, c.Endpoint(resource, id), nil)
	return err
}

// Ping checks that the API root answers without a server error.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("ping %s: %w", c.base.Redacted(), err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= http.StatusInternalServerError {
		return &HTTPError{Method: http.MethodGet, URL: c.base.Redacted(), Status: resp.StatusCode}
	}
	return nil
}

// CloseIdleConnections releases pooled connections (used at shutdown).
func (c *Client) CloseIdleConnections() {
	c.hc.CloseIdleConnections()
}

func (c *Client) do(ctx context.Context, method, resource, target string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", resource, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, target, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(RequestIDHeader, requestID(ctx))

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		outcome := metrics.OutcomeTransport
		if ctx.Err() != nil {
			outcome = metrics.OutcomeCanceled
		}
		metrics.ObserveUpstream(method, resource, outcome, time.Since(start))
		c.log.Warn("api request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.String("outcome", outcome),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		metrics.ObserveUpstream(method, resource, metrics.OutcomeTransport, elapsed)
		return nil, fmt.Errorf("read %s %s: %w", method, target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(method, resource, metrics.OutcomeHTTPError, elapsed)
		c.log.Warn("api returned error status",
			zap.String("method", method),
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", elapsed))
		return nil, &HTTPError{Method: method, URL: target, Status: resp.StatusCode}
	}

	metrics.ObserveUpstream(method, resource, metrics.OutcomeOK, elapsed)
	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))
	return data, nil
}

// requestID reuses the inbound request id when chi's RequestID middleware
// set one, so API logs can be joined with ours.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
