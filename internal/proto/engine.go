// Package proto implements a line-oriented key=value command protocol
// for resource-constrained peers on a byte stream.
//
// Flow:
//
//	Transport ── Feed ── Engine buffer ── Process ── Tokenize ── Registry ── Resolve ── apply ── Callback
//	                                          │
//	                                      Responder ── output sink
//
// An Engine is single-threaded: Feed, Process and registration never
// block and perform no I/O beyond the output sink. Hosts embedding an
// engine in concurrent code must serialize calls externally.
package proto

import (
	"fmt"
	"io"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/stuffbucket/linewire/internal/logging"
)

// Default engine parameters.
const (
	DefaultDelimiter  = '\n'
	DefaultBufReserve = 150
)

// Engine owns the input buffer, the command and state registries, and
// the output sink.
type Engine struct {
	delim    byte
	buf      []byte
	commands map[string]*Command
	states   map[string]stateEntry
	out      io.Writer
	log      *charmlog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithDelimiter sets the line delimiter (default newline).
func WithDelimiter(d byte) Option {
	return func(e *Engine) { e.delim = d }
}

// WithOutput sets the responder's output sink (default stdout).
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.out = w }
}

// WithBufReserve pre-sizes the input buffer.
func WithBufReserve(n int) Option {
	return func(e *Engine) { e.buf = make([]byte, 0, n) }
}

// WithLogger overrides the engine's logger.
func WithLogger(l *charmlog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine with no registered commands or states.
func New(opts ...Option) *Engine {
	e := &Engine{
		delim:    DefaultDelimiter,
		buf:      make([]byte, 0, DefaultBufReserve),
		commands: make(map[string]*Command),
		states:   make(map[string]stateEntry),
		out:      os.Stdout,
		log:      logging.L(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Feed appends raw bytes to the input buffer. It performs no parsing.
func (e *Engine) Feed(p []byte) {
	e.buf = append(e.buf, p...)
}

// FeedString appends a string to the input buffer.
func (e *Engine) FeedString(s string) {
	e.buf = append(e.buf, s...)
}

// Buffered returns the number of unconsumed bytes in the input buffer.
func (e *Engine) Buffered() int { return len(e.buf) }

// SetOutput swaps the responder's output sink at runtime.
func (e *Engine) SetOutput(w io.Writer) { e.out = w }

// Register adds a command under the given qualifier. Registering a
// qualifier twice fails with ErrDuplicateRegistration; the reserved
// "@lw." namespace fails with ErrReservedQualifier. Registration errors
// are configuration-time errors, distinct from Process failures.
func (e *Engine) Register(qualifier string, args Args, cb Callback) error {
	if strings.HasPrefix(qualifier, reservedPrefix) {
		return fmt.Errorf("%q: %w", qualifier, ErrReservedQualifier)
	}
	return e.register(qualifier, args, cb)
}

func (e *Engine) register(qualifier string, args Args, cb Callback) error {
	if _, ok := e.commands[qualifier]; ok {
		return fmt.Errorf("command %q: %w", qualifier, ErrDuplicateRegistration)
	}
	e.commands[qualifier] = &Command{args: args, callback: cb}
	return nil
}

// Lookup returns the registered command for a qualifier.
func (e *Engine) Lookup(qualifier string) (*Command, bool) {
	cmd, ok := e.commands[qualifier]
	return cmd, ok
}

// Process extracts and executes at most one non-blank line from the
// buffer. It returns (false, nil) when no complete line is buffered,
// (true, nil) when a command was applied, and (false, err) when the
// extracted line was invalid. The offending line is consumed in every
// case, so Process is safe to call in a polling loop: repeated calls
// always make forward progress and never reprocess a line. Blank and
// space-only lines are consumed silently without counting as processed.
func (e *Engine) Process() (bool, error) {
	for {
		idx := -1
		for i, b := range e.buf {
			if b == e.delim {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false, nil
		}

		line := string(e.buf[:idx])
		e.buf = e.buf[idx+1:]

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := e.dispatch(line); err != nil {
			e.log.Debug("line rejected", "line", line, "error", err)
			return false, err
		}
		return true, nil
	}
}

// dispatch runs one non-blank line through tokenizer, registry lookup,
// argument resolution, application and callback.
func (e *Engine) dispatch(line string) error {
	tokens := Tokenize(line)
	qualifier := tokens[0]

	cmd, ok := e.commands[qualifier]
	if !ok {
		return fmt.Errorf("%q: %w", qualifier, ErrUnknownQualifier)
	}

	matched, unmatched, err := resolveArgs(cmd.args, tokens[1:])
	if err != nil {
		return err
	}

	// The line is fully validated; applying is all-or-nothing.
	applyArgs(cmd.args, matched)

	if cmd.callback != nil {
		cmd.callback(matched, unmatched)
	}
	return nil
}
