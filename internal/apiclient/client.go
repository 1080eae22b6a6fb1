// Package apiclient is a typed client for the DUERP REST API.
//
// Every method takes the caller's context, so an abandoned page request
// cancels its in-flight calls. Failures are returned as *APIError after going
// through a single logging interceptor; nothing is retried.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/diewo77/go-duerp/internal/logging"
)

const (
	maxErrorPayload = 2048
	maxBodySize     = 32 << 20

	// RequestIDHeader is forwarded from the page request to the API.
	RequestIDHeader = "X-Request-ID"
)

// Client talks to the DUERP REST API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
	metrics *Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMetrics enables call metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New creates a client for cfg. A nil logger uses the logrus standard logger.
func New(cfg Config, logger *logrus.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    newHTTPClient(cfg),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string { return c.baseURL }

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// rawResponse is a successful HTTP exchange.
type rawResponse struct {
	body        []byte
	contentType string
	disposition string
}

// send performs one HTTP exchange and classifies failures as *APIError.
func (c *Client) send(ctx context.Context, op, method, path string, in any) (res *rawResponse, err error) {
	start := time.Now()
	defer func() {
		c.metrics.observe(op, start, err)
		if err != nil {
			err = c.intercept(ctx, err)
		}
	}()

	var body io.Reader
	if in != nil {
		b, merr := json.Marshal(in)
		if merr != nil {
			return nil, &APIError{Op: op, Err: errors.Wrap(merr, "encode request")}
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logging.RequestID(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &APIError{Op: op, Status: resp.StatusCode, Err: errors.Wrap(err, "read response")}
	}
	if resp.StatusCode >= 400 {
		return nil, newStatusError(op, resp.StatusCode, data)
	}
	return &rawResponse{
		body:        data,
		contentType: resp.Header.Get("Content-Type"),
		disposition: resp.Header.Get("Content-Disposition"),
	}, nil
}

func newStatusError(op string, status int, data []byte) *APIError {
	e := &APIError{Op: op, Status: status, Payload: truncate(string(data), maxErrorPayload)}
	var env envelope
	if json.Unmarshal(data, &env) == nil {
		e.Message = env.Error
		if e.Message == "" {
			e.Message = env.Message
		}
	}
	return e
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

// call performs a JSON exchange and decodes the envelope's data into T.
func call[T any](ctx context.Context, c *Client, op, method, path string, in any) (T, error) {
	var out T
	res, err := c.send(ctx, op, method, path, in)
	if err != nil {
		return out, err
	}
	var env envelope
	if err := json.Unmarshal(res.body, &env); err != nil {
		return out, c.intercept(ctx, &APIError{Op: op, Status: http.StatusOK, Payload: truncate(string(res.body), maxErrorPayload), Err: errors.Wrapf(err, "decode %s response", op)})
	}
	if env.Success != nil && !*env.Success {
		return out, c.intercept(ctx, &APIError{Op: op, Status: http.StatusOK, Message: env.Error, Payload: truncate(string(res.body), maxErrorPayload)})
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, c.intercept(ctx, &APIError{Op: op, Status: http.StatusOK, Err: errors.Wrapf(err, "decode %s data", op)})
	}
	return out, nil
}

// exec performs a JSON exchange whose data is ignored.
func exec(ctx context.Context, c *Client, op, method, path string, in any) error {
	_, err := call[json.RawMessage](ctx, c, op, method, path, in)
	return err
}
