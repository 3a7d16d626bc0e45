package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// HTTPTransport is the default Transport, backed by net/http. It is always
// ready: net/http applies its own connection pooling and needs no admission
// control.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTP creates an HTTPTransport with a 30 second request timeout.
func NewHTTP() *HTTPTransport {
	return NewHTTPWithClient(&http.Client{Timeout: defaultTimeout})
}

// NewHTTPWithClient creates an HTTPTransport over a caller-supplied client,
// for custom timeouts, proxies or TLS configuration.
func NewHTTPWithClient(client *http.Client) *HTTPTransport {
	return &HTTPTransport{client: client}
}

// Ready reports readiness immediately unless ctx is already done.
func (t *HTTPTransport) Ready(ctx context.Context) error {
	return ctx.Err()
}

// Do executes the request and reads the full response body.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}

	httpRes, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer httpRes.Body.Close()

	resBody, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	return &Response{
		StatusCode: httpRes.StatusCode,
		Header:     httpRes.Header,
		Body:       resBody,
	}, nil
}
