// Package clipboard bridges the system clipboard into card input and output.
package clipboard

import (
	"strings"

	"github.com/atotto/clipboard"
)

// MaxPasteLen caps how much clipboard text is accepted as card input.
const MaxPasteLen = 2048

// Sanitizer checks and normalizes clipboard text before it becomes embed
// content.
type Sanitizer struct {
	maxLen int
}

// NewSanitizer creates a Sanitizer with the default paste limit.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{maxLen: MaxPasteLen}
}

// Extract trims text and collapses line breaks into single spaces, returning
// the result, or empty string when the input is unusable (blank or over the
// paste limit). The wrapping engine is single-paragraph, so pasted newlines
// become spaces rather than leaking into chunk content.
func (s *Sanitizer) Extract(text string) string {
	text = strings.TrimSpace(text)
	if text == "" || len(text) > s.maxLen {
		return ""
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return strings.Join(lines, " ")
}

// ReadText reads the system clipboard and returns sanitized card input, or
// empty string when nothing usable is there.
func ReadText() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return ""
	}
	return NewSanitizer().Extract(text)
}

// WriteCard copies a rendered card to the system clipboard.
func WriteCard(rendered string) error {
	return clipboard.WriteAll(rendered)
}
