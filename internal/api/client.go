package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

// ErrNoData is returned when a successful envelope carries no data but the
// caller expected some.
var ErrNoData = errors.New("no data returned")

// envelope is the wrapper every backend endpoint responds with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *errorBody      `json:"error"`
}

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// Client talks to the vocabulary backend's JSON API.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

// NewClient creates a Client for the API rooted at baseURL + prefix.
func NewClient(baseURL, prefix string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		prefix:  prefix,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL builds the absolute URL for endpoint, normalizing slashes between
// the base URL, the prefix and the endpoint.
func (c *Client) URL(endpoint string) string {
	base := strings.TrimRight(c.baseURL, "/")
	prefix := strings.Trim(c.prefix, "/")
	endpoint = strings.TrimLeft(endpoint, "/")
	if prefix == "" {
		return base + "/" + endpoint
	}
	return base + "/" + prefix + "/" + endpoint
}

// Do sends a JSON request and decodes the envelope's data into out.
//
// body is marshalled as the request payload when non-nil. dataSchema, when
// non-nil, validates the envelope's data before decoding. out may be nil
// when the caller does not need the data.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, dataSchema *Schema, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	url := c.URL(endpoint)
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	log.Printf("[api] %s %s", method, url)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	log.Printf("[api] %s %s -> %d (%d bytes)", method, url, resp.StatusCode, len(raw))

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	if ok && out == nil && len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := Validate(envelopeSchema, raw); err != nil {
		if !ok {
			return &Error{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
			}
		}
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &ErrInvalidResponse{Body: raw, Err: err}
	}

	if !ok {
		msg := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if !env.Success {
		msg := "API request failed"
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return &ErrInvalidResponse{Body: raw, Err: ErrNoData}
	}
	if err := Validate(dataSchema, data); err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ErrInvalidResponse{Body: raw, Err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}
