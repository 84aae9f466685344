package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// DefaultQueueSize bounds the requests waiting for the worker
const DefaultQueueSize = 64

// Local is an in-process transport. Requests are handled on a single worker
// goroutine, so responses are delivered in request order.
type Local struct {
	handler Handler
	deliver func([]byte)
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
	queue  chan []byte
	done   chan struct{}
	cancel context.CancelFunc
}

// NewLocal starts a worker feeding envelopes to h. Each encoded response
// is passed to deliver from the worker goroutine.
func NewLocal(h Handler, deliver func([]byte), logger *slog.Logger) *Local {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l := &Local{
		handler: h,
		deliver: deliver,
		logger:  logger.With("component", "bridge.local"),
		queue:   make(chan []byte, DefaultQueueSize),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go l.run(ctx)
	return l
}

// Post enqueues one request envelope. It never blocks.
func (l *Local) Post(env []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrBridgeClosed
	}
	select {
	case l.queue <- env:
		return nil
	default:
		return ErrBridgeBusy
	}
}

// Close stops accepting requests and waits for queued ones to finish
func (l *Local) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	close(l.queue)
	l.mu.Unlock()

	<-l.done
	l.cancel()
	return nil
}

func (l *Local) run(ctx context.Context) {
	defer close(l.done)

	for env := range l.queue {
		resp := handleEnvelope(ctx, l.handler, env)
		out, err := json.Marshal(resp)
		if err != nil {
			l.logger.Error("encode response", "command", resp.Command, "error", err)
			continue
		}
		l.deliver(out)
	}
}

// handleEnvelope decodes env and answers it. Undecodable envelopes get an error response.
func handleEnvelope(ctx context.Context, h Handler, env []byte) Response {
	req, err := DecodeRequest(env)
	if err != nil {
		return Failure(Request{}, "invalid request: "+err.Error())
	}
	return h.Handle(ctx, req)
}
