package proto

import "errors"

// Protocol error kinds. Process and Register wrap these with context via
// %w, so callers classify failures with errors.Is.
var (
	// ErrUnknownQualifier indicates the first token of a line does not
	// name a registered command.
	ErrUnknownQualifier = errors.New("unknown qualifier")

	// ErrMalformedArgument indicates an argument token lacks '=', has an
	// empty value, or its value is not numeric.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrTypeMismatch indicates an integer-declared argument received a
	// float-typed value.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValidationFailed indicates an argument's validator rejected the
	// supplied value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingArgument indicates a required argument was not supplied.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrDuplicateRegistration indicates a command qualifier or state
	// name is already registered.
	ErrDuplicateRegistration = errors.New("duplicate registration")

	// ErrReservedQualifier indicates an attempt to register a command in
	// the reserved "@lw." namespace.
	ErrReservedQualifier = errors.New("reserved qualifier")
)
