package transport

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation identifier stamped by Traced.
const RequestIDHeader = "X-Request-Id"

type tracedTransport struct {
	next Transport
}

// Traced decorates a transport so every outgoing request carries an
// X-Request-Id header. A request that already has one keeps it.
func Traced(next Transport) Transport {
	return &tracedTransport{next: next}
}

func (t *tracedTransport) Ready(ctx context.Context) error {
	return t.next.Ready(ctx)
}

func (t *tracedTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Header.Get(RequestIDHeader) != "" {
		return t.next.Do(ctx, req)
	}
	traced := *req
	traced.Header = cloneHeader(req.Header)
	traced.Header.Set(RequestIDHeader, uuid.NewString())
	return t.next.Do(ctx, &traced)
}
