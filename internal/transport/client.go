package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"
)

// Client speaks the line protocol against a running listener.
type Client struct {
	address   string
	transport Transport
	timeout   time.Duration
}

// NewClient creates a client for the given address.
func NewClient(address string, tr Transport) *Client {
	if tr == nil {
		tr = DefaultTransport
	}
	return &Client{
		address:   address,
		transport: tr,
		timeout:   2 * time.Second,
	}
}

// SetTimeout changes how long Send waits for response lines.
func (c *Client) SetTimeout(d time.Duration) { c.timeout = d }

// Send writes one command line and collects any response lines the peer
// emits before the response window closes. A command may legitimately
// produce zero responses, so a bare timeout with nothing read is not an
// error.
func (c *Client) Send(line string) ([]string, error) {
	conn, err := c.transport.Dial(c.address, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", c.address, err)
	}
	defer conn.Close()

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := conn.Write([]byte(line)); err != nil {
		return nil, fmt.Errorf("send command: %w", err)
	}

	var responses []string
	reader := bufio.NewReader(conn)
	window := c.timeout
	for {
		_ = conn.SetReadDeadline(time.Now().Add(window))
		resp, err := reader.ReadString('\n')
		if resp != "" {
			responses = append(responses, strings.TrimRight(resp, "\n"))
		}
		if err != nil {
			if isWindowClosed(err) || errors.Is(err, io.EOF) {
				return responses, nil
			}
			return responses, fmt.Errorf("read response: %w", err)
		}
		// Follow-up lines arrive quickly or not at all.
		window = 200 * time.Millisecond
	}
}

// IsRunning reports whether a listener answers at the address.
func (c *Client) IsRunning() bool {
	conn, err := c.transport.Dial(c.address, SocketCheckTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// isWindowClosed reports whether the error just means the peer has no
// more response lines for us.
func isWindowClosed(err error) bool {
	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return true
	}
	return os.IsTimeout(err)
}
