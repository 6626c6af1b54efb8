package proto

import "strings"

// Tokenize splits a command line into its whitespace-separated tokens.
// Runs of spaces collapse and leading/trailing spaces are dropped. Blank
// and space-only lines are filtered before this point, so the result
// always has at least one token (the qualifier).
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool { return r == ' ' })
}
