// Package sanitizer normalises untrusted form input before it is validated
// and rendered into outbound email.
package sanitizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower trims and lowercases s. Email addresses are compared this way
// when fingerprinting submissions.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NFC composes s into Unicode normalization form C, so an "é" typed as "e"
// plus a combining accent equals the precomposed letter.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars drops control characters other than \n, \r and \t.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeNewlines converts \r\n and lone \r to \n.
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SingleLine collapses every whitespace run, line breaks included, into a
// single space and trims the result. Values interpolated into email
// subjects go through it so they cannot inject header lines.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(RemoveControlChars(s), " "))
}
