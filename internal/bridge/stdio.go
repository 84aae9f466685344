package bridge

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
)

// maxLine bounds one envelope on the stdio transport
const maxLine = 16 * 1024 * 1024

// Serve reads newline-delimited request envelopes from r and writes one
// response line to w for each, until r is exhausted or ctx is done.
func Serve(ctx context.Context, h Handler, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)

	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		if err := enc.Encode(handleEnvelope(ctx, h, line)); err != nil {
			return err
		}
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Client is the front-end side of the stdio transport
type Client struct {
	w       io.WriteCloser
	deliver func([]byte)
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// NewClient writes requests to w and delivers every response line read
// from r. Delivery happens on the client's reader goroutine.
func NewClient(w io.WriteCloser, r io.Reader, deliver func([]byte), logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		w:       w,
		deliver: deliver,
		logger:  logger.With("component", "bridge.stdio"),
		done:    make(chan struct{}),
	}
	go c.read(r)
	return c
}

// Post writes one envelope line
func (c *Client) Post(env []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrBridgeClosed
	}
	line := make([]byte, 0, len(env)+1)
	line = append(append(line, env...), '\n')
	if _, err := c.w.Write(line); err != nil {
		if errors.Is(err, io.ErrClosedPipe) {
			return ErrBridgeClosed
		}
		return err
	}
	return nil
}

// Close closes the request stream and waits for the response stream to end
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	err := c.w.Close()
	c.mu.Unlock()

	<-c.done
	return err
}

// Done is closed when the response stream ends
func (c *Client) Done() <-chan struct{} {
	return c.done
}

func (c *Client) read(r io.Reader) {
	defer close(c.done)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		out := make([]byte, len(line))
		copy(out, line)
		c.deliver(out)
	}
	if err := scanner.Err(); err != nil {
		c.logger.Error("response stream", "error", err)
	}
}
