package proto

import (
	"fmt"
	"strings"
)

// resolveArgs checks the argument tokens of one line against the
// command's declared specs. It partitions the supplied arguments into
// matched (declared, type-checked, validated) and unmatched (undeclared,
// recorded verbatim) maps and enforces that every required argument is
// present. No setter runs here; application is deferred until the whole
// line has validated.
func resolveArgs(args Args, tokens []string) (matched, unmatched RawArgs, err error) {
	matched = make(RawArgs)
	unmatched = make(RawArgs)

	for _, token := range tokens {
		eq := strings.Index(token, "=")
		if eq < 0 {
			return nil, nil, fmt.Errorf("%q: missing '=': %w", token, ErrMalformedArgument)
		}
		name, raw := token[:eq], token[eq+1:]
		if raw == "" {
			return nil, nil, fmt.Errorf("%q: incomplete pair: %w", token, ErrMalformedArgument)
		}

		val, ok := ParseValue(raw)
		if !ok {
			return nil, nil, fmt.Errorf("%q: value is not numeric: %w", token, ErrMalformedArgument)
		}

		spec, declared := args[name]
		if !declared {
			// Undeclared arguments bypass type and validator checks.
			// Last write wins on duplicates.
			unmatched[name] = val
			continue
		}

		if spec.Kind == KindInt && !val.IsInt() {
			return nil, nil, fmt.Errorf("%q: should be int: %w", token, ErrTypeMismatch)
		}
		if spec.Validate != nil && !spec.Validate(val) {
			return nil, nil, fmt.Errorf("%q: %w", token, ErrValidationFailed)
		}
		matched[name] = val
	}

	for name, spec := range args {
		if !spec.Optional {
			if _, ok := matched[name]; !ok {
				return nil, nil, fmt.Errorf("%q is required: %w", name, ErrMissingArgument)
			}
		}
	}

	return matched, unmatched, nil
}

// applyArgs invokes the setters for a fully validated line.
func applyArgs(args Args, matched RawArgs) {
	for name, val := range matched {
		if set := args[name].Set; set != nil {
			set(val)
		}
	}
}
