package proto

import "testing"

func TestParseValue(t *testing.T) {
	tests := []struct {
		in     string
		want   Value
		wantOK bool
	}{
		{in: "5", want: Int(5), wantOK: true},
		{in: "-3", want: Int(-3), wantOK: true},
		{in: "+7", want: Int(7), wantOK: true},
		{in: "0", want: Int(0), wantOK: true},
		{in: "5.0", want: Float(5.0), wantOK: true},
		{in: "-2.5", want: Float(-2.5), wantOK: true},
		{in: "1e3", want: Float(1000), wantOK: true},
		{in: ".5", want: Float(0.5), wantOK: true},
		// Large integers keep exact precision through the int tag.
		{in: "9007199254740993", want: Int(9007199254740993), wantOK: true},
		{in: "strval", wantOK: false},
		{in: "5x", wantOK: false},
		{in: "5.0x", wantOK: false},
		{in: " 5", wantOK: false},
		{in: "5 ", wantOK: false},
		{in: "", wantOK: false},
		{in: "=", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseValue(tc.in)
			if ok != tc.wantOK {
				t.Fatalf("ParseValue(%q) ok = %t, want %t", tc.in, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("ParseValue(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestValueConversions(t *testing.T) {
	if got := Int(5).Float64(); got != 5.0 {
		t.Errorf("Int(5).Float64() = %v, want 5.0", got)
	}
	if got := Float(5.9).Int64(); got != 5 {
		t.Errorf("Float(5.9).Int64() = %d, want 5", got)
	}
	if !Int(5).IsInt() {
		t.Error("Int(5).IsInt() = false, want true")
	}
	if Float(5.0).IsInt() {
		t.Error("Float(5.0).IsInt() = true, want false")
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		in   Value
		want string
	}{
		{in: Int(5), want: "5"},
		{in: Int(-23), want: "-23"},
		{in: Float(2.56), want: "2.56"},
		{in: Float(2), want: "2"},
	}
	for _, tc := range tests {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}
