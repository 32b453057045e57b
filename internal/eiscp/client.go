package eiscp

import (
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Handler receives client events. Callbacks run on the client's reader
// goroutine in arrival order; nil callbacks are skipped.
type Handler struct {
	OnMessage func(Message)
	OnClose   func()
	OnError   func(error)
}

// Client owns one TCP session to one receiver. At most one transport is
// open at a time; a transport is replaced, never reused, across connect
// attempts.
type Client struct {
	addr    string
	cfg     Config
	handler Handler
	logger  zerolog.Logger

	mu        sync.Mutex
	conn      net.Conn
	connected bool
	gen       uint64
}

// NewClient constructs an unconnected client for one receiver.
func NewClient(host string, port int, cfg Config, handler Handler) *Client {
	if port <= 0 {
		port = DefaultPort
	}
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	return &Client{
		addr:    addr,
		cfg:     cfg.WithDefaults(),
		handler: handler,
		logger:  log.With().Str("component", "eiscp").Str("receiver", addr).Logger(),
	}
}

// Connected reports whether the transport is established.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Connect opens the TCP transport. Connecting while already connected
// succeeds without opening a second transport. The client never retries
// on its own; retry policy belongs to the caller.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		return nil
	}
	gen := c.gen
	c.mu.Unlock()

	dialer := net.Dialer{Timeout: c.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		c.logger.Warn().Err(err).Msg("dial failed")
		return err
	}

	c.mu.Lock()
	if c.connected {
		c.mu.Unlock()
		_ = conn.Close()
		return nil
	}
	if c.gen != gen {
		// A Close raced this connect; the dialed transport is stale.
		c.mu.Unlock()
		_ = conn.Close()
		return ErrSuperseded
	}
	c.gen++
	cur := c.gen
	c.conn = conn
	c.connected = true
	c.mu.Unlock()

	c.logger.Info().Msg("connected")
	go c.readLoop(conn, cur)
	return nil
}

// Send frames command and writes it to the transport as a single unit.
// It does not wait for a device reply; replies, if any, arrive through
// OnMessage. Sending while unconnected performs no I/O.
func (c *Client) Send(command string) error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return ErrNotConnected
	}
	conn := c.conn
	gen := c.gen
	c.mu.Unlock()

	packet, err := EncodePacket(command)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	if _, err := conn.Write(packet); err != nil {
		c.teardown(gen, err)
		return err
	}
	return nil
}

// Close ends the transport and marks the client unconnected. Closing an
// already-unconnected client is a no-op; any pending connect attempt is
// superseded either way.
func (c *Client) Close() {
	c.mu.Lock()
	c.gen++
	if !c.connected {
		c.mu.Unlock()
		return
	}
	c.connected = false
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}
	_ = conn.Close()
	c.logger.Info().Msg("closed")
	if c.handler.OnClose != nil {
		c.handler.OnClose()
	}
}

// readLoop drives de-framing and event delivery for one transport
// generation. It is the only writer to the receive buffer, so inbound
// events are serialized in arrival order without locking.
func (c *Client) readLoop(conn net.Conn, gen uint64) {
	var dec Decoder
	buf := make([]byte, 4096)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			for _, msg := range dec.Feed(buf[:n]) {
				if c.handler.OnMessage != nil {
					c.handler.OnMessage(msg)
				}
			}
		}
		if err != nil {
			c.teardown(gen, err)
			return
		}
	}
}

// teardown ends the session for one transport generation. Generations
// already superseded by Close or a newer connect are inert, so at most
// one close event is emitted per transport.
func (c *Client) teardown(gen uint64, err error) {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}
	c.gen++
	c.connected = false
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
	if err != nil && !errors.Is(err, io.EOF) {
		c.logger.Warn().Err(err).Msg("transport error")
		if c.handler.OnError != nil {
			c.handler.OnError(err)
		}
	} else {
		c.logger.Info().Msg("transport closed by peer")
	}
	if c.handler.OnClose != nil {
		c.handler.OnClose()
	}
}
