package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/stuffbucket/linewire/internal/logging"
	"github.com/stuffbucket/linewire/internal/proto"
)

// Timeout constants.
const (
	SocketCheckTimeout = 100 * time.Millisecond

	dialTimeout     = 1 * time.Second
	connIdleTimeout = 5 * time.Minute
	readBufSize     = 512
)

// EngineFactory builds a fresh engine for one connection, wired to write
// its responses to the given sink. Giving each connection its own engine
// keeps the engine's single-threaded contract without locks.
type EngineFactory func(out io.Writer) (*proto.Engine, error)

// ListenerConfig holds configuration for a protocol listener.
type ListenerConfig struct {
	Address   string
	Transport Transport
	Build     EngineFactory
}

// Listener accepts connections and runs the line protocol over each.
type Listener struct {
	address   string
	transport Transport
	netListen net.Listener
	build     EngineFactory
	done      chan struct{}
}

// NewListener creates a listener at cfg.Address.
func NewListener(cfg ListenerConfig) (*Listener, error) {
	if cfg.Transport == nil {
		cfg.Transport = DefaultTransport
	}
	if cfg.Build == nil {
		return nil, fmt.Errorf("engine factory is required")
	}

	// Check if a listener is already running
	conn, err := cfg.Transport.Dial(cfg.Address, SocketCheckTimeout)
	if err == nil {
		conn.Close()
		return nil, fmt.Errorf("listener already running on %s", cfg.Address)
	}

	// Clean up stale socket
	if err := cfg.Transport.Cleanup(cfg.Address); err != nil {
		return nil, fmt.Errorf("cleanup stale socket: %w", err)
	}

	netListen, err := cfg.Transport.Listen(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Address, err)
	}

	// Restrict permissions for Unix sockets
	if _, ok := cfg.Transport.(UnixTransport); ok {
		if err := os.Chmod(cfg.Address, 0o600); err != nil {
			netListen.Close()
			return nil, fmt.Errorf("chmod socket: %w", err)
		}
	}

	return &Listener{
		address:   cfg.Address,
		transport: cfg.Transport,
		netListen: netListen,
		build:     cfg.Build,
		done:      make(chan struct{}),
	}, nil
}

// Addr returns the bound network address.
func (l *Listener) Addr() net.Addr {
	return l.netListen.Addr()
}

// Start begins accepting connections (blocking).
func (l *Listener) Start(ctx context.Context) {
	defer close(l.done)

	for {
		conn, err := l.netListen.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				logging.L().Warn("listener accept error", "error", err)
				continue
			}
		}
		go l.handleConnection(conn)
	}
}

// handleConnection pumps one connection through its own engine: every
// read is fed to the buffer and the engine drained, one line per
// Process call. Rejected lines are reported back as "error: ..." lines;
// the engine has already consumed them, so the loop keeps going.
func (l *Listener) handleConnection(conn net.Conn) {
	defer conn.Close()

	engine, err := l.build(conn)
	if err != nil {
		logging.L().Error("build engine", "error", err)
		return
	}

	buf := make([]byte, readBufSize)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(connIdleTimeout))
		n, err := conn.Read(buf)
		if n > 0 {
			engine.Feed(buf[:n])
			for {
				processed, perr := engine.Process()
				if perr != nil {
					fmt.Fprintf(conn, "error: %v\n", perr)
					continue
				}
				if !processed {
					break
				}
			}
		}
		if err != nil {
			return
		}
	}
}

// Close shuts down the listener.
func (l *Listener) Close() error {
	var errs []error
	if l.netListen != nil {
		if err := l.netListen.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close listener: %w", err))
		}
	}
	if err := l.transport.Cleanup(l.address); err != nil {
		errs = append(errs, fmt.Errorf("cleanup: %w", err))
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
