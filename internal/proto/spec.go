package proto

// Setter applies a validated value to externally owned storage. Setters
// must have no side effects beyond mutating their bound target; the
// engine may invoke them only after a whole line has validated.
type Setter func(Value)

// Validator reports whether a value is acceptable for an argument.
type Validator func(Value) bool

// Arg describes one named argument a command accepts.
type Arg struct {
	// Optional, when false, makes the argument required on every line
	// that invokes the command.
	Optional bool
	// Kind is the declared numeric kind. KindInt rejects float-typed
	// values; KindFloat accepts both.
	Kind Kind
	// Set applies the value once the whole line has validated. May be nil.
	Set Setter
	// Validate is an optional predicate; nil means always valid.
	Validate Validator
}

// Args maps argument names to their specs for one command.
type Args map[string]Arg

// RawArgs maps argument names to the values supplied on one line. Two
// instances flow into each callback: the matched (declared) and the
// unmatched (undeclared) arguments.
type RawArgs map[string]Value

// Callback receives the matched and unmatched arguments of a
// successfully applied line.
type Callback func(matched, unmatched RawArgs)

// BindInt returns an Arg that stores integer values into cell.
func BindInt(cell *int64, optional bool, validate Validator) Arg {
	return Arg{
		Optional: optional,
		Kind:     KindInt,
		Set:      func(v Value) { *cell = v.Int64() },
		Validate: validate,
	}
}

// BindFloat returns an Arg that stores float values into cell.
func BindFloat(cell *float64, optional bool, validate Validator) Arg {
	return Arg{
		Optional: optional,
		Kind:     KindFloat,
		Set:      func(v Value) { *cell = v.Float64() },
		Validate: validate,
	}
}

// Command pairs a command's argument specs with its callback.
type Command struct {
	args     Args
	callback Callback
}

// Args returns the command's declared arguments.
func (c *Command) Args() Args { return c.args }
