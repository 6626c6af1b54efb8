package proto

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single token", in: "test", want: []string{"test"}},
		{name: "two tokens", in: "test arg=5", want: []string{"test", "arg=5"}},
		{name: "collapsed runs", in: "test   arg=5    other=1", want: []string{"test", "arg=5", "other=1"}},
		{name: "leading spaces", in: "   test", want: []string{"test"}},
		{name: "trailing spaces", in: "test   ", want: []string{"test"}},
		{name: "surrounded", in: "  test arg=5  ", want: []string{"test", "arg=5"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Tokenize(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
