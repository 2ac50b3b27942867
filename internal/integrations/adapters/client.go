package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"giveaway-server/internal/integrations"
)

const (
	DefaultTimeout   = 15 * time.Second
	userAgent        = "Giveaway-Integrations/1.0"
	maxResponseBytes = 1 << 20
)

// Option customises how an adapter talks to its provider.
type Option func(*options)

type options struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// WithHTTPClient replaces the default client. Its Timeout is left untouched.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithBaseURL points the adapter at a different API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = strings.TrimRight(u, "/") }
}

func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func buildOptions(opts []Option) options {
	o := options{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}
	return o
}

// apiError is a failed provider call already classified into a result code.
type apiError struct {
	code    integrations.ResultCode
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.status > 0 {
		return fmt.Sprintf("status %d: %s", e.status, e.message)
	}
	return e.message
}

// apiClient sends JSON requests to one provider API.
type apiClient struct {
	http      *http.Client
	baseURL   string
	timeout   time.Duration
	authorize func(req *http.Request)
}

func newAPIClient(o options, defaultBaseURL string, authorize func(*http.Request)) *apiClient {
	base := o.baseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &apiClient{http: o.httpClient, baseURL: base, timeout: o.timeout, authorize: authorize}
}

// doJSON sends in as the JSON body (when non-nil) and decodes a successful
// response into out (when non-nil).
func (c *apiClient) doJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return &apiError{code: integrations.CodeInvalidConfig, message: fmt.Sprintf("failed to encode request: %v", err)}
		}
	}
	return c.send(ctx, method, path, payload, nil, out)
}

func (c *apiClient) send(ctx context.Context, method, path string, payload []byte, header http.Header, out interface{}) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &apiError{code: integrations.CodeInvalidConfig, message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	if c.authorize != nil {
		c.authorize(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &apiError{code: integrations.CodeProviderError, status: resp.StatusCode, message: "unexpected response from provider"}
	}
	return nil
}

func transportError(err error) *apiError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &apiError{code: integrations.CodeProviderTimeout, message: "provider did not respond in time"}
	}
	return &apiError{code: integrations.CodeNetworkError, message: fmt.Sprintf("could not reach provider: %v", err)}
}

func statusError(status int, body []byte) *apiError {
	e := &apiError{status: status, message: providerMessage(body)}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.code = integrations.CodeUnauthorized
	case status == http.StatusNotFound:
		e.code = integrations.CodeNotFound
	case status == http.StatusTooManyRequests:
		e.code = integrations.CodeRateLimited
	case status >= 500:
		e.code = integrations.CodeProviderError
	default:
		e.code = integrations.CodeRejected
	}
	if e.message == "" {
		e.message = http.StatusText(status)
	}
	return e
}

// providerMessage pulls the human readable error out of the common provider shapes.
func providerMessage(body []byte) string {
	var payload struct {
		Detail  string      `json:"detail"`
		Message string      `json:"message"`
		Error   interface{} `json:"error"`
		Errors  []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(truncate(string(body), 200))
	}
	switch {
	case payload.Detail != "":
		return payload.Detail
	case payload.Message != "":
		return payload.Message
	case len(payload.Errors) > 0 && payload.Errors[0].Message != "":
		return payload.Errors[0].Message
	}
	if s, ok := payload.Error.(string); ok {
		return s
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// failure converts an error from doJSON into a failed Result prefixed with what was attempted.
func failure(what string, err error) integrations.Result {
	var apiErr *apiError
	if errors.As(err, &apiErr) {
		return integrations.Failed(apiErr.code, fmt.Sprintf("%s: %s", what, apiErr.message))
	}
	return integrations.Failed(integrations.CodeProviderError, fmt.Sprintf("%s: %v", what, err))
}

func listsData(lists []integrations.List) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(lists))
	for _, l := range lists {
		out = append(out, map[string]interface{}{"id": l.ID, "name": l.Name, "member_count": l.MemberCount})
	}
	return out
}
