package entity

import "strings"

// normalizeEnumToken uppercases and trims a request-supplied enum string so
// the Parse helpers accept any casing the client sends.
func normalizeEnumToken(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
