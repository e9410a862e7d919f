package client

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

	"github.com/google/uuid"

	"github.com/dmitrijs2005/safepaws/internal/logging"
)

const (
	DefaultTimeout  = 10 * time.Second
	RequestIDHeader = "X-Request-ID"
)

// maxBodyBytes caps a response body. Larger bodies fail with
// ErrResponseTooLarge instead of being decoded from a truncated read.
var maxBodyBytes int64 = 64 << 20

// HTTPClient talks JSON to the SafePaws REST backend.
//
// The bearer token is read from the TokenSource before every authenticated
// call; nothing about its validity is cached. Each request carries a fresh
// X-Request-ID that is also attached to the debug log line.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logging.Logger
	newID   func() string
}

// Option configures an HTTPClient in NewHTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests use the one
// from httptest.Server).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithLogger sets the logger for request tracing. The default discards.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// NewHTTPClient validates baseURL and builds a client. timeout <= 0 falls
// back to DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tokens == nil {
		tokens = StaticToken("")
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logging.Nop(),
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// call describes one request.
type call struct {
	method string
	path   string
	query  url.Values
	auth   bool
	in     any
	out    any
}

func (c *HTTPClient) do(ctx context.Context, cl call) error {
	var authz string
	if cl.auth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}
		if token == "" {
			return ErrNoToken
		}
		authz = "Bearer " + token
	}

	var body io.Reader
	if cl.in != nil {
		b, err := json.Marshal(cl.in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	requestID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if cl.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.logger.Debug(ctx, "api call failed", "request_id", requestID, "method", cl.method, "path", cl.path, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}
	if int64(len(raw)) > maxBodyBytes {
		c.logger.Warn(ctx, "api response too large", "request_id", requestID, "method", cl.method, "path", cl.path, "limit", maxBodyBytes)
		return fmt.Errorf("%w: %s %s exceeds %d bytes", ErrResponseTooLarge, cl.method, cl.path, maxBodyBytes)
	}

	c.logger.Debug(ctx, "api call",
		"request_id", requestID,
		"method", cl.method,
		"path", cl.path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(resp.StatusCode, raw)}
	}

	if cl.out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, cl.out); err != nil {
		return fmt.Errorf("decode %s %s: %w", cl.method, cl.path, err)
	}
	return nil
}

// parseDetail extracts the human readable message from an error body. The
// backend sends either {"detail": "text"} or, for request validation
// failures, {"detail": [{"msg": "..."}, ...]}.
func parseDetail(status int, raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return genericDetail(status)
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		if strings.TrimSpace(text) == "" {
			return genericDetail(status)
		}
		return text
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return genericDetail(status)
}

// IsConnectionError reports whether err means the backend was unreachable.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
