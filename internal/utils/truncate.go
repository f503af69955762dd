package utils

// Truncate shortens s to at most max runes, replacing the tail with an
// ellipsis when it cuts. Used by the TUI to keep gallery rows on one line.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
