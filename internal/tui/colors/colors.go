package colors

import "github.com/charmbracelet/lipgloss"

// === Color Palette ===
var (
	Accent    = lipgloss.Color("#bd93f9") // Purple - focused elements
	Highlight = lipgloss.Color("#ff79c6") // Pink - panel borders
	Info      = lipgloss.Color("#8be9fd") // Cyan - hints
	Gray      = lipgloss.Color("#44475a") // Inactive borders
	LightGray = lipgloss.Color("#a9b1d6") // Secondary text
	White     = lipgloss.Color("#f8f8f2")
)

// === Semantic State Colors ===
var (
	StateError = lipgloss.Color("#ff5555") // Validation failures
	StateOK    = lipgloss.Color("#50fa7b") // Saved/copied confirmations
)
