// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// SplitList parses a comma-separated value into a slice, trimming whitespace
// and dropping empty or duplicate entries. Order is preserved.
//
// Example:
//
//	SplitList(" foo ,bar,, foo ")
//	// Returns: []string{"foo", "bar"}
func SplitList(csv string) []string {
	if csv == "" {
		return nil
	}

	parts := strings.Split(csv, ",")
	seen := make(map[string]struct{}, len(parts))
	result := make([]string, 0, len(parts))

	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}

	return result
}

// SplitListLower is like SplitList but also lowercases each entry. Useful for
// case-insensitive matching against hostnames and origins.
func SplitListLower(csv string) []string {
	values := SplitList(strings.ToLower(csv))
	return values
}
