package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsHangul reports whether r is a Hangul syllable or jamo.
func IsHangul(r rune) bool {
	return unicode.Is(unicode.Hangul, r)
}

// ContainsNumbers checks if a string contains any numeric digits
func ContainsNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ContainsSpecialChars checks if a string contains non letter runes
func ContainsSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// NormalizeEnding trims surrounding whitespace from a queried ending.
func NormalizeEnding(s string) string {
	return strings.TrimSpace(s)
}

// IsValidEnding checks if s can be a right part of an eojeol split: it is
// non empty, holds no whitespace and is at most maxLen runes long.
// maxLen <= 0 disables the length check.
func IsValidEnding(s string, maxLen int) bool {
	if len(s) == 0 || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	return maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen
}

// IsHangulEnding reports whether s is made of Hangul only, with no digits
// or special chars. Callers apply it when input filtering is enabled.
func IsHangulEnding(s string) bool {
	if len(s) == 0 || ContainsNumbers(s) || ContainsSpecialChars(s) {
		return false
	}
	for _, r := range s {
		if !IsHangul(r) {
			return false
		}
	}
	return true
}
