// Package format provides display formatting helpers for metadata values
package format

import (
	"fmt"
	"regexp"
	"strings"
)

// ScaleNumber scales a quantity such as bytes to a human-readable form,
// e.g. 1253656 -> "1.20MB". The suffix names the base unit.
func ScaleNumber(num float64, suffix string) string {
	const factor = 1024.0
	for _, unit := range []string{"", "K", "M", "G", "T", "P"} {
		if num < factor {
			return fmt.Sprintf("%.2f%s%s", num, unit, suffix)
		}
		num /= factor
	}
	return fmt.Sprintf("%.2fE%s", num, suffix)
}

var (
	nonWord    = regexp.MustCompile(`[^a-zA-Z0-9._/ ]+`)
	whitespace = regexp.MustCompile(`\s+`)
	repeated   = regexp.MustCompile(`_{2,}`)
)

// Snake converts a string to snake case suitable for object names
func Snake(s string) string {
	s = nonWord.ReplaceAllString(s, "")
	s = strings.ToLower(strings.TrimSpace(whitespace.ReplaceAllString(s, " ")))
	s = strings.ReplaceAll(s, " ", "_")
	return repeated.ReplaceAllString(s, "_")
}
