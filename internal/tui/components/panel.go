package components

import (
	"strings"

	"github.com/cardbox-dev/cardbox/internal/tui/colors"

	"github.com/charmbracelet/lipgloss"
)

// RenderPanel draws content inside a rounded box with the title embedded in
// the top border. Content lines are padded or truncated to the interior
// width so the right border stays aligned.
// Example: ╭─ Preview ──────────────╮
func RenderPanel(title, content string, width, height int, borderColor lipgloss.Color) string {
	const (
		topLeft     = "╭"
		topRight    = "╮"
		bottomLeft  = "╰"
		bottomRight = "╯"
		horizontal  = "─"
		vertical    = "│"
	)

	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	var topBorder string
	if title != "" {
		label := " " + title + " "
		remaining := innerWidth - lipgloss.Width(label) - 1
		if remaining < 0 {
			remaining = 0
		}
		topBorder = borderStyle.Render(topLeft+horizontal) +
			lipgloss.NewStyle().Foreground(colors.White).Render(label) +
			borderStyle.Render(strings.Repeat(horizontal, remaining)+topRight)
	} else {
		topBorder = borderStyle.Render(topLeft + strings.Repeat(horizontal, innerWidth) + topRight)
	}

	bottomBorder := borderStyle.Render(bottomLeft + strings.Repeat(horizontal, innerWidth) + bottomRight)

	contentLines := strings.Split(content, "\n")
	innerHeight := height - 2
	if innerHeight < len(contentLines) {
		innerHeight = len(contentLines)
	}

	rows := make([]string, 0, innerHeight)
	for i := 0; i < innerHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lineWidth := lipgloss.Width(line)
		if lineWidth < innerWidth {
			line = line + strings.Repeat(" ", innerWidth-lineWidth)
		} else if lineWidth > innerWidth {
			runes := []rune(line)
			if len(runes) > innerWidth {
				line = string(runes[:innerWidth])
			}
		}
		rows = append(rows, borderStyle.Render(vertical)+line+borderStyle.Render(vertical))
	}

	return lipgloss.JoinVertical(lipgloss.Left, topBorder, strings.Join(rows, "\n"), bottomBorder)
}
