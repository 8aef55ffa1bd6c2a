// Package util provides shared utility functions used across the codebase.
package util

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TruncateString truncates a string to maxLen runes, adding "..." if
// truncated. It does not account for ANSI escape codes or wide characters;
// for styled terminal output use TruncateANSI instead.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}

// TruncateANSI truncates a string to maxWidth visual columns, adding "..."
// if truncated. It handles ANSI escape codes and wide characters, so styled
// demo output stays intact when cut.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 3 {
		return "..."
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	// ansi.Truncate includes the tail in the final width calculation.
	return ansi.Truncate(s, maxWidth, "...")
}

// Pluralize returns the singular or plural form of a noun for n, prefixed
// with the count, e.g. "1 subscriber" or "3 subscribers".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
