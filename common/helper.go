package common

import (
	"fmt"
	"unicode/utf8"
)

// ParseWildcard converts the --wildcard option to a rune, it must be exactly one character.
func ParseWildcard(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("wildcard[%v] should be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("wildcard[%v] is not valid utf8", s)
	}
	return r, nil
}

// IsLowercase returns true if every rune of word is in 'a'..'z'.
func IsLowercase(word string) bool {
	for _, ch := range word {
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}
