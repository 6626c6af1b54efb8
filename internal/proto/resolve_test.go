package proto

import (
	"bytes"
	"errors"
	"testing"
)

func TestMalformedArguments(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "missing equals", line: "test arg\n"},
		{name: "empty value", line: "test arg=\n"},
		{name: "non numeric value", line: "test arg=strval\n"},
		{name: "trailing garbage", line: "test arg=5x\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(WithOutput(&bytes.Buffer{}))
			if err := e.Register("test", Args{
				"arg": {Optional: true, Kind: KindFloat},
			}, nil); err != nil {
				t.Fatalf("Register() error = %v", err)
			}

			e.FeedString(tc.line)
			if _, err := e.Process(); !errors.Is(err, ErrMalformedArgument) {
				t.Errorf("Process() error = %v, want ErrMalformedArgument", err)
			}
		})
	}
}

func TestIntegerArgumentTyping(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		line    string
		wantErr error
	}{
		{name: "int spec accepts int", kind: KindInt, line: "test arg=5\n"},
		{name: "int spec rejects float", kind: KindInt, line: "test arg=5.0\n", wantErr: ErrTypeMismatch},
		{name: "float spec accepts int", kind: KindFloat, line: "test arg=5\n"},
		{name: "float spec accepts float", kind: KindFloat, line: "test arg=5.0\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(WithOutput(&bytes.Buffer{}))
			if err := e.Register("test", Args{
				"arg": {Optional: true, Kind: tc.kind},
			}, nil); err != nil {
				t.Fatalf("Register() error = %v", err)
			}

			e.FeedString(tc.line)
			_, err := e.Process()
			if tc.wantErr == nil && err != nil {
				t.Errorf("Process() error = %v, want nil", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Process() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestRequiredArguments(t *testing.T) {
	build := func(t *testing.T) *Engine {
		e := New(WithOutput(&bytes.Buffer{}))
		if err := e.Register("test", Args{
			"required_arg": {Optional: false, Kind: KindFloat},
			"optional_arg": {Optional: true, Kind: KindFloat},
		}, nil); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		return e
	}

	t.Run("no arguments", func(t *testing.T) {
		e := build(t)
		e.FeedString("test\n")
		if _, err := e.Process(); !errors.Is(err, ErrMissingArgument) {
			t.Errorf("Process() error = %v, want ErrMissingArgument", err)
		}
	})

	t.Run("only optional supplied", func(t *testing.T) {
		e := build(t)
		e.FeedString("test optional_arg=1.0\n")
		if _, err := e.Process(); !errors.Is(err, ErrMissingArgument) {
			t.Errorf("Process() error = %v, want ErrMissingArgument", err)
		}
	})

	t.Run("required supplied", func(t *testing.T) {
		e := build(t)
		e.FeedString("test required_arg=1.0\n")
		if processed, err := e.Process(); !processed || err != nil {
			t.Errorf("Process() = (%t, %v), want (true, nil)", processed, err)
		}
	})

	t.Run("both supplied", func(t *testing.T) {
		e := build(t)
		e.FeedString("test required_arg=1.0 optional_arg=1.0\n")
		if processed, err := e.Process(); !processed || err != nil {
			t.Errorf("Process() = (%t, %v), want (true, nil)", processed, err)
		}
	})
}

func TestValidator(t *testing.T) {
	e := New(WithOutput(&bytes.Buffer{}))
	if err := e.Register("test", Args{
		"arg": {
			Optional: true,
			Kind:     KindFloat,
			Validate: func(v Value) bool { return v.Float64() > 50.0 },
		},
	}, nil); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	e.FeedString("test arg=5\n")
	if _, err := e.Process(); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Process() error = %v, want ErrValidationFailed", err)
	}

	e.FeedString("test arg=500\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}
}

func TestMatchedAndUnmatchedMaps(t *testing.T) {
	e := New(WithOutput(&bytes.Buffer{}))

	var matched, unmatched RawArgs
	if err := e.Register("test", Args{
		"arg": {Optional: true, Kind: KindInt},
	}, func(m, u RawArgs) {
		matched, unmatched = m, u
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	e.FeedString("test arg=5 other=10 other=2.5\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}

	if got := matched["arg"]; got != Int(5) {
		t.Errorf("matched[arg] = %v, want Int(5)", got)
	}
	if len(matched) != 1 {
		t.Errorf("len(matched) = %d, want 1", len(matched))
	}
	// Undeclared arguments land in the unmatched map, last write wins,
	// and are never type-checked.
	if got := unmatched["other"]; got != Float(2.5) {
		t.Errorf("unmatched[other] = %v, want Float(2.5)", got)
	}
	if len(unmatched) != 1 {
		t.Errorf("len(unmatched) = %d, want 1", len(unmatched))
	}
}

func TestApplyIsAllOrNothing(t *testing.T) {
	e := New(WithOutput(&bytes.Buffer{}))

	var a, b int64
	callbackRan := false
	if err := e.Register("test", Args{
		"a": BindInt(&a, true, nil),
		"b": BindInt(&b, true, RangeValidator(0, 100)),
	}, func(_, _ RawArgs) {
		callbackRan = true
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	// b fails validation, so a's setter must not run either.
	e.FeedString("test a=1 b=999\n")
	if _, err := e.Process(); !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("Process() error = %v, want ErrValidationFailed", err)
	}
	if a != 0 || b != 0 {
		t.Errorf("(a, b) = (%d, %d) after failed line, want (0, 0)", a, b)
	}
	if callbackRan {
		t.Error("callback ran on failed line")
	}

	e.FeedString("test a=1 b=99\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}
	if a != 1 || b != 99 {
		t.Errorf("(a, b) = (%d, %d), want (1, 99)", a, b)
	}
	if !callbackRan {
		t.Error("callback did not run on valid line")
	}
}

func TestEndToEndExample(t *testing.T) {
	e := New(WithOutput(&bytes.Buffer{}))

	calls := 0
	var matched, unmatched RawArgs
	if err := e.Register("test", Args{
		"required_arg": {Optional: false, Kind: KindFloat},
		"optional_arg": {Optional: true, Kind: KindFloat},
	}, func(m, u RawArgs) {
		matched, unmatched = m, u
		calls++
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	e.FeedString("test required_arg=1.0 optional_arg=2.0\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if matched["required_arg"] != Float(1.0) || matched["optional_arg"] != Float(2.0) {
		t.Errorf("matched = %v, want required_arg=1 optional_arg=2", matched)
	}
	if len(unmatched) != 0 {
		t.Errorf("unmatched = %v, want empty", unmatched)
	}

	e.FeedString("test optional_arg=2.0\n")
	if _, err := e.Process(); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("Process() error = %v, want ErrMissingArgument", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d after failed line, want 1", calls)
	}
}
