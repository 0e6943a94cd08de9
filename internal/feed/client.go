// Package feed maintains the TCP connection to the live-stats host, frames
// the byte stream into discrete JSON messages, and delivers each decoded
// message to the ingestion engine in arrival order.
package feed

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/courtside-live/livestats/internal/config"
	"github.com/courtside-live/livestats/internal/logging"
	"github.com/courtside-live/livestats/internal/metrics"
)

// Receiver consumes decoded feed messages one at a time.
type Receiver interface {
	Receive(msg map[string]any)
}

type dialFunc func(ctx context.Context, addr string, timeout time.Duration) (net.Conn, error)

// Client dials the feed, subscribes, and pumps frames into its Receiver.
// Frames are delimited by CRLF; a dropped connection is redialed with
// linear backoff until the context is cancelled.
type Client struct {
	cfg      config.FeedConfig
	receiver Receiver
	logger   *slog.Logger
	metrics  *metrics.Recorder
	dial     dialFunc

	mu        sync.Mutex
	connected bool
}

// NewClient constructs a Client with default dialing.
func NewClient(cfg config.FeedConfig, receiver Receiver, logger *slog.Logger, recorder *metrics.Recorder) *Client {
	return &Client{
		cfg:      cfg,
		receiver: receiver,
		logger:   logger,
		metrics:  recorder,
		dial: func(ctx context.Context, addr string, timeout time.Duration) (net.Conn, error) {
			dialer := net.Dialer{Timeout: timeout}
			return dialer.DialContext(ctx, "tcp", addr)
		},
	}
}

// Connected reports whether a feed session is currently established.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Client) setConnected(connected bool) {
	c.mu.Lock()
	c.connected = connected
	c.mu.Unlock()
}

// Run connects and consumes the feed until the context is cancelled.
// Connection failures back off linearly per consecutive attempt.
func (c *Client) Run(ctx context.Context) error {
	attempt := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.runSession(ctx)
		c.metrics.RecordConnect(err)
		if err == nil || ctx.Err() != nil {
			// A clean session end only happens on shutdown.
			return ctx.Err()
		}

		attempt++
		delay := time.Duration(attempt) * c.cfg.ReconnectBackoff
		logging.Warn(c.logger, "feed session ended, reconnecting",
			"attempt", attempt,
			logging.FieldDurationMS, delay.Milliseconds(),
			"error", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
}

func (c *Client) runSession(ctx context.Context) error {
	conn, err := c.dial(ctx, c.cfg.Addr, c.cfg.DialTimeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.cfg.Addr, err)
	}

	connID := uuid.NewString()
	logger := c.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldConnID, connID))
	}

	// Unblock the read loop when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()
	defer conn.Close()

	if err := c.subscribe(conn); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	c.setConnected(true)
	defer c.setConnected(false)
	logging.Info(logger, "feed connected", "addr", c.cfg.Addr)

	return c.readFrames(logger, conn)
}

func (c *Client) subscribe(conn net.Conn) error {
	frame, err := json.Marshal(newParameters(c.cfg.SubscribeTypes, c.cfg.PlayByPlayOnConnect))
	if err != nil {
		return err
	}
	_, err = conn.Write(append(frame, '\r', '\n'))
	return err
}

func (c *Client) readFrames(logger *slog.Logger, conn net.Conn) error {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 64*1024), c.cfg.MaxFrameBytes)
	scanner.Split(splitCRLF)

	for scanner.Scan() {
		frame := scanner.Bytes()
		if len(bytes.TrimSpace(frame)) == 0 {
			continue
		}
		c.metrics.RecordFrame(len(frame))

		var msg map[string]any
		if err := json.Unmarshal(frame, &msg); err != nil {
			// A garbled frame is dropped; framing stays intact.
			logging.Warn(logger, "dropping undecodable frame",
				logging.FieldCount, len(frame), "error", err)
			continue
		}
		c.receiver.Receive(msg)
	}

	if err := scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return ErrFrameTooLarge
		}
		return err
	}
	return fmt.Errorf("feed closed connection")
}

// splitCRLF frames on "\r\n" but tolerates bare "\n" delimiters.
func splitCRLF(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		token = data[:idx]
		token = bytes.TrimSuffix(token, []byte{'\r'})
		return idx + 1, token, nil
	}
	if atEOF && len(data) > 0 {
		return len(data), bytes.TrimSuffix(data, []byte{'\r'}), nil
	}
	return 0, nil, nil
}
