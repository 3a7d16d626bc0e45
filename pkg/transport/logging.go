package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// loggedTransport logs every round trip on its way through.
type loggedTransport struct {
	next Transport
	log  *zap.Logger
}

// Logged decorates a transport with structured request/response logging.
// The client core stays silent; observability is attached here, at the seam.
func Logged(next Transport, log *zap.Logger) Transport {
	return &loggedTransport{next: next, log: log}
}

func (t *loggedTransport) Ready(ctx context.Context) error {
	return t.next.Ready(ctx)
}

func (t *loggedTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	res, err := t.next.Do(ctx, req)
	if err != nil {
		t.log.Error("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}
	t.log.Info("request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL),
		zap.Int("status", res.StatusCode),
		zap.Duration("took", time.Since(start)),
	)
	return res, nil
}
