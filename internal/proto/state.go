package proto

import (
	"fmt"
	"math"
)

// stateEntry is one registered exchange state: a getter/setter pair plus
// the tag that decides integer vs float rendering in the state dump.
type stateEntry struct {
	get     func() Value
	set     func(Value)
	isFloat bool
}

// RegisterState adds a named state to the state registry. Registering a
// name twice fails with ErrDuplicateRegistration.
func (e *Engine) RegisterState(name string, get func() Value, set func(Value), isFloat bool) error {
	if _, ok := e.states[name]; ok {
		return fmt.Errorf("state %q: %w", name, ErrDuplicateRegistration)
	}
	e.states[name] = stateEntry{get: get, set: set, isFloat: isFloat}
	return nil
}

// UnregisterState removes a named state. Removing an absent name is a
// no-op, so best-effort cleanup on owner teardown never fails.
func (e *Engine) UnregisterState(name string) {
	delete(e.states, name)
}

// Scalar is the set of value types an ExchangeState can hold. Booleans
// exchange as 0/1.
type Scalar interface {
	bool | int8 | int16 | int32 | int64 | int | uint8 | uint16 | uint32 | float32 | float64
}

// ExchangeState is a named state that reports every update through the
// engine's responder and answers the "@lw.state" introspection dump. It
// registers on construction; Close unregisters it. Registration
// lifetime is explicit at the call site rather than tied to garbage
// collection.
type ExchangeState[T Scalar] struct {
	engine *Engine
	name   string
	val    T
	closed bool
}

// NewExchangeState registers a state under the given name with the zero
// value. It fails with ErrDuplicateRegistration if the name is taken.
func NewExchangeState[T Scalar](e *Engine, name string) (*ExchangeState[T], error) {
	s := &ExchangeState[T]{engine: e, name: name}
	err := e.RegisterState(name,
		func() Value { return scalarToValue(s.val) },
		func(v Value) { s.Set(valueToScalar[T](v)) },
		scalarKind[T]() == KindFloat)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the registered state name.
func (s *ExchangeState[T]) Name() string { return s.name }

// Get returns the current value.
func (s *ExchangeState[T]) Get() T { return s.val }

// Set stores a new value and reports it as "R(<ts>) <name>: <value>".
func (s *ExchangeState[T]) Set(v T) {
	s.val = v
	s.engine.Respond(s.name, scalarToValue(v).String())
}

// Arg binds the state as a command argument: applying the argument also
// updates and reports the state. The argument carries the state's
// default validator.
func (s *ExchangeState[T]) Arg(optional bool) Arg {
	return Arg{
		Optional: optional,
		Kind:     scalarKind[T](),
		Set:      func(v Value) { s.Set(valueToScalar[T](v)) },
		Validate: DefaultValidator[T](),
	}
}

// Close unregisters the state. It is idempotent.
func (s *ExchangeState[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.engine.UnregisterState(s.name)
}

// scalarKind returns the protocol kind for a scalar type.
func scalarKind[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return KindFloat
	default:
		return KindInt
	}
}

// scalarToValue converts a scalar to its wire value.
func scalarToValue[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case bool:
		if x {
			return Int(1)
		}
		return Int(0)
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case int:
		return Int(int64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	}
	return Value{}
}

// valueToScalar converts a wire value to a scalar, truncating floats
// for integer targets. Range enforcement is the validator's job.
func valueToScalar[T Scalar](v Value) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(v.Int64() != 0).(T)
	case int8:
		return any(int8(v.Int64())).(T)
	case int16:
		return any(int16(v.Int64())).(T)
	case int32:
		return any(int32(v.Int64())).(T)
	case int64:
		return any(v.Int64()).(T)
	case int:
		return any(int(v.Int64())).(T)
	case uint8:
		return any(uint8(v.Int64())).(T)
	case uint16:
		return any(uint16(v.Int64())).(T)
	case uint32:
		return any(uint32(v.Int64())).(T)
	case float32:
		return any(float32(v.Float64())).(T)
	case float64:
		return any(v.Float64()).(T)
	}
	return zero
}

// DefaultValidator returns the range validator for a scalar type:
// booleans accept integral 0 or 1, integer types accept integral values
// within their range, floats accept anything numeric.
func DefaultValidator[T Scalar]() Validator {
	var zero T
	switch any(zero).(type) {
	case bool:
		return RangeValidator(0, 1)
	case int8:
		return RangeValidator(math.MinInt8, math.MaxInt8)
	case int16:
		return RangeValidator(math.MinInt16, math.MaxInt16)
	case int32:
		return RangeValidator(math.MinInt32, math.MaxInt32)
	case int64, int:
		return func(v Value) bool {
			_, ok := integral(v)
			return ok
		}
	case uint8:
		return RangeValidator(0, math.MaxUint8)
	case uint16:
		return RangeValidator(0, math.MaxUint16)
	case uint32:
		return RangeValidator(0, math.MaxUint32)
	}
	return func(Value) bool { return true }
}

// RangeValidator accepts integral values in [lo, hi].
func RangeValidator(lo, hi int64) Validator {
	return func(v Value) bool {
		n, ok := integral(v)
		return ok && n >= lo && n <= hi
	}
}

// FloatRangeValidator accepts numeric values in [lo, hi].
func FloatRangeValidator(lo, hi float64) Validator {
	return func(v Value) bool {
		f := v.Float64()
		return f >= lo && f <= hi
	}
}

// integral returns the value as an int64 when it is mathematically
// integral, whether integer- or float-typed.
func integral(v Value) (int64, bool) {
	if v.IsInt() {
		return v.Int64(), true
	}
	f := v.Float64()
	if f == math.Trunc(f) {
		return int64(f), true
	}
	return 0, false
}
