package mine

import (
	"strings"
	"unicode"
)

// Wildcard is the distinguished token representing "any value" at a
// template position.
const Wildcard = "<*>"

// VarTokenFunc reports whether a token looks like a variable value (an ID,
// a number, a timestamp fragment) rather than a stable literal. Variable
// tokens branch through the generic wildcard child during tree descent so
// high-cardinality values don't explode the tree.
type VarTokenFunc func(token string) bool

// DefaultVarToken treats any token containing a digit as variable.
// This is deliberately coarse; tune it per corpus via Config.IsVariableToken
// when log literals legitimately contain digits (e.g. "http2", "ipv4").
func DefaultVarToken(token string) bool {
	return strings.ContainsAny(token, "0123456789")
}

// tokenize splits a normalized line into tokens on whitespace plus any
// extra delimiter characters. Empty tokens from consecutive delimiters are
// dropped. An empty line yields a zero-length sequence, which is valid
// input downstream.
func tokenize(line, delimiters string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(delimiters, r)
	})
}
