// Package email holds small address helpers shared by the mailer.
package email

import (
	"strings"
	"unicode"
)

// DeriveDisplayName builds a human greeting name from an address local part,
// e.g. "jane.doe@example.com" becomes "Jane Doe". Separator runes (.,_-+)
// split words; each word is capitalized. An unusable local part yields
// "there" so greetings still read naturally ("Hi there,").
func DeriveDisplayName(email string) string {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})

	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if hasLetter(p) {
			words = append(words, capitalize(p))
		}
	}
	if len(words) == 0 {
		return "there"
	}
	return strings.Join(words, " ")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
