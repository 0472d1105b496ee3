package textutil

import (
	"strings"
)

// StripTokens drops the first n whitespace-delimited tokens of s and
// rejoins the rest with single spaces. Used to turn raw course names
// like "101 - 01 HN English II" into their display form.
func StripTokens(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) <= n {
		return ""
	}
	return strings.Join(fields[n:], " ")
}

// StripEnclosing removes a literal prefix and suffix where present
// and trims surrounding whitespace.
func StripEnclosing(s, prefix, suffix string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimSuffix(s, suffix)
	return strings.TrimSpace(s)
}
