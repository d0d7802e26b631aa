// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	// strip control chars outside tab/newline/carriage return
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// WordCount counts whitespace-separated tokens.
func WordCount(s string) int { return len(strings.Fields(s)) }

// SentenceCount counts non-empty segments terminated by '.', '!' or '?'.
// Trailing text without a terminator counts as one sentence.
func SentenceCount(s string) int {
	n := 0
	seg := strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, p := range seg {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// ContainsToken reports whether term occurs in text bounded by non-word
// characters (or the text edges). Both arguments are expected lower-cased.
// This is the whole-token matching used for skills, degrees, and answer
// keywords; it never does fuzzy matching.
func ContainsToken(text, term string) bool {
	if term == "" {
		return false
	}
	for i := 0; i <= len(text)-len(term); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(term)
		if (start == 0 || !isWordByte(text[start-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		i = start + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
