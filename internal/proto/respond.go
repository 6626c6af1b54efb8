package proto

import (
	"fmt"
	"time"
)

// Response labels. LabelResponse marks user-facing responses and state
// reports; LabelInternal is reserved for introspection output.
const (
	LabelResponse = 'R'
	LabelInternal = '_'
)

// Respond writes a labeled, timestamped response line to the output
// sink: "<label>(<epoch-millis>) <channel>: <message>\n". Sink write
// errors are the transport's concern and are ignored here.
func (e *Engine) Respond(channel, message string) {
	e.respond(LabelResponse, channel, message)
}

func (e *Engine) respond(label byte, channel, message string) {
	fmt.Fprintf(e.out, "%c(%d) %s: %s\n", label, time.Now().UnixMilli(), channel, message)
}
