package card

import (
	"fmt"
	"strings"
)

// Style selects the decoration applied around each wrapped chunk. Decoration
// never counts against the width budget.
type Style int

const (
	// StylePlain leaves chunks undecorated (descriptions).
	StylePlain Style = iota
	// StyleEmphasis wraps chunks in asterisks (titles).
	StyleEmphasis
	// StyleCode wraps chunks in backtick fences (footers).
	StyleCode
)

const (
	// Wall is the left border drawn in front of every rendered line.
	Wall = "│"

	// RuleChar is the box dash used for precomputed horizontal rules.
	RuleChar = "─"

	// DefaultWidth is the interior column width used when an embed was never
	// sized explicitly.
	DefaultWidth = 28
)

// validWidth reports whether px lies strictly between 2 and 47.
func validWidth(px int) bool {
	return px > 2 && px < 47
}

// Chunk partitions s into consecutive pieces of at most width bytes, left to
// right. The final piece takes whatever remainder is left. No byte is dropped
// or duplicated: strings.Join(Chunk(s, w), "") == s for every input.
//
// An empty string yields a single empty chunk so callers still produce one
// rendered line.
func Chunk(s string, width int) []string {
	if len(s) <= width {
		return []string{s}
	}
	chunks := make([]string, 0, (len(s)+width-1)/width)
	for i := 0; i < len(s); i += width {
		end := i + width
		if end > len(s) {
			end = len(s)
		}
		chunks = append(chunks, s[i:end])
	}
	return chunks
}

// Wrap splits s into width-sized chunks and renders each as one wall-prefixed
// line, decorated per style, joined with newlines. Removing the wall prefix
// and decoration from every line and concatenating the remainders yields s
// unchanged.
func Wrap(s string, width int, style Style) (string, error) {
	if !validWidth(width) {
		return "", fmt.Errorf("%w: %d", ErrWidthOutOfRange, width)
	}

	var mark string
	switch style {
	case StyleEmphasis:
		mark = "*"
	case StyleCode:
		mark = "`"
	}

	chunks := Chunk(s, width)
	lines := make([]string, len(chunks))
	for i, c := range chunks {
		lines[i] = Wall + " " + mark + c + mark
	}
	return strings.Join(lines, "\n"), nil
}
