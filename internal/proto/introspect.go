package proto

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Version is the protocol's semantic version.
const Version = "1.0.0"

// reservedPrefix namespaces the built-in introspection commands. User
// registrations under this prefix are rejected.
const reservedPrefix = "@lw."

// Built-in qualifiers.
const (
	CmdVersion      = "@lw.version"
	CmdBufferSize   = "@lw.buffer.size"
	CmdRegistration = "@lw.registration"
	CmdState        = "@lw.state"
)

// RegisterBuiltins installs the introspection commands. Their responses
// carry the internal '_' label so peers can separate them from user
// command output.
func (e *Engine) RegisterBuiltins() error {
	builtins := map[string]Callback{
		CmdVersion: func(_, _ RawArgs) {
			e.respond(LabelInternal, CmdVersion, Version)
		},
		CmdBufferSize: func(_, _ RawArgs) {
			// The line that invoked this is already consumed, so the
			// count is the unconsumed remainder.
			e.respond(LabelInternal, CmdBufferSize, strconv.Itoa(len(e.buf)))
		},
		CmdRegistration: func(_, _ RawArgs) {
			e.respond(LabelInternal, CmdRegistration, e.registrationDump())
		},
		CmdState: func(_, _ RawArgs) {
			e.respond(LabelInternal, CmdState, e.stateDump())
		},
	}
	for qualifier, cb := range builtins {
		if err := e.register(qualifier, nil, cb); err != nil {
			return err
		}
	}
	return nil
}

// registrationDump serializes every registered qualifier to its argument
// names, each tagged optional/required and int/float.
func (e *Engine) registrationDump() string {
	reg := make(map[string]map[string]string, len(e.commands))
	for qualifier, cmd := range e.commands {
		args := make(map[string]string, len(cmd.args))
		for name, spec := range cmd.args {
			req := "required"
			if spec.Optional {
				req = "optional"
			}
			args[name] = req + "," + spec.Kind.String()
		}
		reg[qualifier] = args
	}
	b, err := json.Marshal(reg)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// stateDump serializes every registered state name to its current value,
// rendered as integer or float per its type tag.
func (e *Engine) stateDump() string {
	names := make([]string, 0, len(e.states))
	for name := range e.states {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			b.WriteByte(',')
		}
		entry := e.states[name]
		val := entry.get()
		b.WriteString(strconv.Quote(name))
		b.WriteString(": ")
		if entry.isFloat {
			b.WriteString(strconv.FormatFloat(val.Float64(), 'g', -1, 64))
		} else {
			b.WriteString(strconv.FormatInt(val.Int64(), 10))
		}
	}
	b.WriteByte('}')
	return b.String()
}
