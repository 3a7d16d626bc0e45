/**
 * @description
 * The Akahu API client.
 *
 * The client owns an app token, a base URL and a Transport, and is immutable
 * after construction: one client can be shared across goroutines as long as
 * its transport is safe for concurrent use. Every operation follows the same
 * shape: build the request, confirm transport readiness, execute, map non-2xx
 * statuses to StatusError, decode the envelope. The client never retries,
 * caches or persists anything; those concerns belong to transport middleware
 * and to callers.
 *
 * @dependencies
 * - github.com/stanleykosi/akahu-go/pkg/transport: pluggable HTTP seam.
 */
package akahu

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/stanleykosi/akahu-go/pkg/transport"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.akahu.io/v1"

// appIDHeader carries the app token on every request.
const appIDHeader = "X-Akahu-Id"

// Client is an immutable Akahu API client.
type Client struct {
	transport transport.Transport
	appToken  AppToken
	appSecret AppSecret
	baseURL   string
}

// Option configures a Client during construction.
type Option func(*Client)

// WithBaseURL points the client at a non-production API root, e.g. a
// sandbox or a local stub.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTransport substitutes the transport. This is the hook for retries,
// rate limiting, tracing and test doubles; see the transport package.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithAppSecret enables app-scoped endpoints such as Categories, which
// authenticate with HTTP Basic auth instead of a user token.
func WithAppSecret(secret AppSecret) Option {
	return func(c *Client) {
		c.appSecret = secret
	}
}

// New constructs a client for the given app token. Misconfiguration is a
// construction-time error, never a panic.
func New(appToken AppToken, opts ...Option) (*Client, error) {
	if appToken == "" {
		return nil, errors.New("akahu: app token must not be empty")
	}
	c := &Client{
		transport: transport.NewHTTP(),
		appToken:  appToken,
		baseURL:   DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		return nil, errors.New("akahu: transport must not be nil")
	}
	if c.baseURL == "" {
		return nil, errors.New("akahu: base URL must not be empty")
	}
	return c, nil
}

// userHeader builds the headers for a user-scoped request.
func (c *Client) userHeader(token UserToken) http.Header {
	h := http.Header{}
	h.Set(appIDHeader, string(c.appToken))
	h.Set("Authorization", "Bearer "+string(token))
	h.Set("Accept", "application/json")
	return h
}

// appHeader builds the headers for an app-scoped request, which uses HTTP
// Basic auth with the app token and secret.
func (c *Client) appHeader() (http.Header, error) {
	if c.appSecret == "" {
		return nil, ErrMissingAppSecret
	}
	h := http.Header{}
	h.Set(appIDHeader, string(c.appToken))
	credentials := string(c.appToken) + ":" + string(c.appSecret)
	h.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(credentials)))
	h.Set("Accept", "application/json")
	return h, nil
}

// do runs one operation end to end. out may be nil for endpoints with an
// empty success body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, header http.Header, out any) error {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req := &transport.Request{
		Method: method,
		URL:    u,
		Header: header,
	}

	if err := c.transport.Ready(ctx); err != nil {
		return &RequestError{Err: err}
	}
	res, err := c.transport.Do(ctx, req)
	if err != nil {
		return &RequestError{Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newStatusError(res)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.Body, out); err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			return err
		}
		return &DecodeError{Reason: "invalid response body", Err: err}
	}
	return nil
}

// get is do for the read endpoints.
func (c *Client) get(ctx context.Context, path string, query url.Values, header http.Header, out any) error {
	return c.do(ctx, http.MethodGet, path, query, header, out)
}

// newStatusError maps a non-2xx response, preferring the message from the
// API's error envelope and keeping the raw body for the caller.
func newStatusError(res *transport.Response) *StatusError {
	message := http.StatusText(res.StatusCode)
	var envelope errorResponse
	if err := json.Unmarshal(res.Body, &envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}
	return &StatusError{
		StatusCode: res.StatusCode,
		Message:    message,
		Body:       res.Body,
	}
}
