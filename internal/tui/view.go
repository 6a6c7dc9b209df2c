package tui

import "fmt"

// money formats an unsigned amount for display. Signs are applied by the
// caller, which knows the record type.
func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
