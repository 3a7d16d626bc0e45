package transport

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// GateTransport caps the number of in-flight requests. Ready blocks while
// all slots are busy, so a client that checks readiness first will wait
// instead of piling more requests onto a saturated transport.
type GateTransport struct {
	next Transport
	sem  *semaphore.Weighted
}

// Gate decorates a transport with an n-slot admission gate. A gate needs at
// least one slot to ever admit a request, so n below 1 is raised to 1.
func Gate(next Transport, n int64) *GateTransport {
	if n < 1 {
		n = 1
	}
	return &GateTransport{next: next, sem: semaphore.NewWeighted(n)}
}

// Ready waits for a free slot, then releases it again: admission is
// confirmed, the slot itself is held by Do for the duration of the call.
func (t *GateTransport) Ready(ctx context.Context) error {
	if err := t.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	t.sem.Release(1)
	return t.next.Ready(ctx)
}

func (t *GateTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := t.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer t.sem.Release(1)
	return t.next.Do(ctx, req)
}
