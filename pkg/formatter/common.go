package formatter

// truncateString shortens s to max runes, marking the cut with an ellipsis.
func truncateString(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
