/**
 * @description
 * Transport abstraction used by the Akahu client.
 *
 * A Transport sends one HTTP request and returns its response; it carries no
 * authentication or API knowledge. The interface deliberately splits admission
 * (Ready) from execution (Do) so that rate limiting, concurrency capping,
 * retries and tracing can be layered around any implementation by decoration,
 * without the client knowing such middleware exists.
 *
 * @dependencies
 * - net/http: header representation only; implementations choose their own stack.
 */
package transport

import (
	"context"
	"net/http"
)

// Request is a transport-level request descriptor.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// Response is a transport-level response descriptor. Body is fully read
// before the response is returned.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs HTTP round trips on behalf of the client.
//
// Implementations decide their own thread-safety guarantees; a transport
// shared by one client across goroutines must be safe for concurrent use.
type Transport interface {
	// Ready blocks until the transport is willing to accept another request,
	// or until ctx is done. Callers confirm readiness before every Do, which
	// is what lets admission-controlling middleware apply backpressure.
	Ready(ctx context.Context) error

	// Do performs a single round trip. A returned error means the request
	// never produced an HTTP response (DNS failure, reset connection, ...);
	// non-2xx statuses are returned as a Response, not an error.
	Do(ctx context.Context, req *Request) (*Response, error)
}

// cloneHeader copies a header map so middleware can add fields without
// mutating the caller's request.
func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}
	return h.Clone()
}
