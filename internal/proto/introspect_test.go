package proto

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
)

func newIntrospectEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	e := New(WithOutput(&out))
	if err := e.RegisterBuiltins(); err != nil {
		t.Fatalf("RegisterBuiltins() error = %v", err)
	}
	return e, &out
}

func TestVersionQuery(t *testing.T) {
	e, out := newIntrospectEngine(t)

	e.FeedString("@lw.version\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}

	re := regexp.MustCompile(`^_\(\d+\) @lw\.version: (\S+)\n$`)
	m := re.FindStringSubmatch(out.String())
	if m == nil {
		t.Fatalf("output = %q, want match for %q", out.String(), re)
	}
	if m[1] != Version {
		t.Errorf("reported version = %q, want %q", m[1], Version)
	}
}

func TestBufferSizeQuery(t *testing.T) {
	e, out := newIntrospectEngine(t)

	// The query line itself is consumed before the callback runs, so
	// only the queued second line counts.
	e.FeedString("@lw.buffer.size\ntest\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}

	re := regexp.MustCompile(`^_\(\d+\) @lw\.buffer\.size: 5\n$`)
	if !re.MatchString(out.String()) {
		t.Errorf("output = %q, want match for %q", out.String(), re)
	}
}

func TestRegistrationDump(t *testing.T) {
	e, out := newIntrospectEngine(t)

	if err := e.Register("test", Args{
		"int_opt": {Optional: true, Kind: KindInt},
		"int_req": {Optional: false, Kind: KindInt},
		"f_opt":   {Optional: true, Kind: KindFloat},
		"f_req":   {Optional: false, Kind: KindFloat},
	}, nil); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	e.FeedString("@lw.registration\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}

	line := out.String()
	payload := line[strings.Index(line, "{"):]
	var reg map[string]map[string]string
	if err := json.Unmarshal([]byte(strings.TrimSpace(payload)), &reg); err != nil {
		t.Fatalf("registration payload %q is not valid JSON: %v", payload, err)
	}

	want := map[string]string{
		"int_opt": "optional,int",
		"int_req": "required,int",
		"f_opt":   "optional,float",
		"f_req":   "required,float",
	}
	got, ok := reg["test"]
	if !ok {
		t.Fatalf("dump %v has no entry for %q", reg, "test")
	}
	for name, tag := range want {
		if got[name] != tag {
			t.Errorf("dump[test][%s] = %q, want %q", name, got[name], tag)
		}
	}
	// Built-ins appear too
	if _, ok := reg[CmdVersion]; !ok {
		t.Errorf("dump %v has no entry for %q", reg, CmdVersion)
	}
}

func TestStateDump(t *testing.T) {
	e, out := newIntrospectEngine(t)

	boolState, err := NewExchangeState[bool](e, "bool_state")
	if err != nil {
		t.Fatalf("NewExchangeState() error = %v", err)
	}
	int8State, err := NewExchangeState[int8](e, "int8_state")
	if err != nil {
		t.Fatalf("NewExchangeState() error = %v", err)
	}
	floatState, err := NewExchangeState[float32](e, "float_state")
	if err != nil {
		t.Fatalf("NewExchangeState() error = %v", err)
	}

	boolState.Set(true)
	int8State.Set(-23)
	floatState.Set(2.5)
	out.Reset()

	e.FeedString("@lw.state\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}

	line := out.String()
	payload := strings.TrimSpace(line[strings.Index(line, "{"):])
	want := `{"bool_state": 1,"float_state": 2.5,"int8_state": -23}`
	if payload != want {
		t.Errorf("state dump = %q, want %q", payload, want)
	}
}

func TestEmptyDumps(t *testing.T) {
	e, out := newIntrospectEngine(t)

	e.FeedString("@lw.state\n")
	if processed, err := e.Process(); !processed || err != nil {
		t.Fatalf("Process() = (%t, %v), want (true, nil)", processed, err)
	}
	if !strings.Contains(out.String(), "{}") {
		t.Errorf("empty state dump = %q, want to contain {}", out.String())
	}
}
