package textutil

import (
	"strings"
	"unicode/utf8"
)

// TruncateUTF8 returns the longest prefix of s that is at most maxBytes
// bytes and does not split a multi-byte UTF-8 character.
func TruncateUTF8(s string, maxBytes int) string {
	if maxBytes <= 0 {
		return ""
	}
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.RuneStart(s[maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}

// Ellipsize shortens s to at most maxBytes bytes, marking the cut with "…".
func Ellipsize(s string, maxBytes int) string {
	const mark = "…"
	if len(s) <= maxBytes {
		return s
	}
	if maxBytes <= len(mark) {
		return TruncateUTF8(s, maxBytes)
	}
	return TruncateUTF8(s, maxBytes-len(mark)) + mark
}

// SplitHead splits s on whitespace and returns the first field and the
// remaining fields joined by single spaces. Runs of whitespace between the
// remaining fields collapse.
func SplitHead(s string) (head string, rest string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
