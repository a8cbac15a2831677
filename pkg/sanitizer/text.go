package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text sanitizes a single untrusted string.
//
// A trailing line terminator (any mix of CR and LF) is stripped, then leading
// and trailing Unicode whitespace is trimmed. The result must be non-empty,
// must not exceed maxLen characters (runes, not bytes) and must not contain
// control characters. Invalid UTF-8 sequences are rejected as U+FFFD.
//
// Checks run in that order, so a blank input always yields ErrEmpty and an
// overlong input yields ErrTooLong even if it also contains control characters.
// For ErrInvalidCharacter the reported rune is the first offending one.
func Text(raw string, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(strings.TrimRight(raw, "\r\n"))
	if trimmed == "" {
		return "", errEmpty()
	}

	if n := utf8.RuneCountInString(trimmed); n > maxLen {
		return "", errTooLong(maxLen, n)
	}

	if r, found := firstDisallowed(trimmed); found {
		return "", errInvalidCharacter(r)
	}

	return trimmed, nil
}

// firstDisallowed returns the first control character or invalid UTF-8
// sequence in s.
func firstDisallowed(s string) (rune, bool) {
	for i, r := range s {
		if unicode.IsControl(r) {
			return r, true
		}
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return r, true
			}
		}
	}
	return 0, false
}
