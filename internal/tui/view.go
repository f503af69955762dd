package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cardbox-dev/cardbox/internal/card"
	"github.com/cardbox-dev/cardbox/internal/tui/colors"
	"github.com/cardbox-dev/cardbox/internal/tui/components"
	"github.com/cardbox-dev/cardbox/internal/utils"
)

var inputLabels = [inputCount]string{
	inputTitle:       "Title:",
	inputDescription: "Description:",
	inputFooter:      "Footer:",
	inputWidth:       "Width:",
	inputFieldName:   "Field name:",
	inputFieldValue:  "Field value:",
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	labelStyle := lipgloss.NewStyle().Width(LabelWidth).Foreground(colors.LightGray)
	focusedLabel := lipgloss.NewStyle().Width(LabelWidth).Foreground(colors.Accent)

	// --- FORM COLUMN ---
	var formRows []string
	for i := range m.inputs {
		style := labelStyle
		if i == m.focusedInput {
			style = focusedLabel
		}
		formRows = append(formRows, lipgloss.JoinHorizontal(lipgloss.Left,
			style.Render(inputLabels[i]),
			m.inputs[i].View(),
		))
		if i == inputWidth {
			formRows = append(formRows, "")
		}
	}

	stamp := "off"
	if m.stampNow {
		stamp = "on"
	}
	formRows = append(formRows, "",
		lipgloss.NewStyle().Foreground(colors.LightGray).Render(
			fmt.Sprintf("fields: %d   timestamp: %s", len(m.fields), stamp)),
	)

	form := lipgloss.JoinVertical(lipgloss.Left, formRows...)

	// --- PREVIEW COLUMN ---
	px := m.px()
	if px == 0 {
		px = card.DefaultWidth
	}
	panelTitle := "Preview " + strconv.Itoa(px) + "px"
	panelHeight := strings.Count(m.preview, "\n") + 3
	if panelHeight < PanelMinHeight {
		panelHeight = PanelMinHeight
	}
	panel := components.RenderPanel(panelTitle, m.preview, PanelWidth, panelHeight, colors.Highlight)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().MarginRight(3).Render(form),
		panel,
	)

	// --- GALLERY ---
	var gallery string
	if len(m.drafts) > 0 {
		rows := []string{lipgloss.NewStyle().Foreground(colors.Info).Render("Drafts")}
		start := 0
		if len(m.drafts) > GalleryRows {
			start = len(m.drafts) - GalleryRows
		}
		for _, d := range m.drafts[start:] {
			rows = append(rows, fmt.Sprintf("  %s  %s",
				lipgloss.NewStyle().Foreground(colors.LightGray).Render(d.ID[:8]),
				utils.Truncate(d.Label, GalleryTrim)))
		}
		gallery = lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	// --- STATUS + HELP ---
	statusStyle := lipgloss.NewStyle().Foreground(colors.StateOK)
	if m.statusErr {
		statusStyle = lipgloss.NewStyle().Foreground(colors.StateError)
	}
	status := statusStyle.Render(utils.Truncate(m.status, StatusTrim))

	header := lipgloss.NewStyle().Foreground(colors.Highlight).Bold(true).Render("CARDBOX")

	sections := []string{header, "", top}
	if gallery != "" {
		sections = append(sections, "", gallery)
	}
	sections = append(sections, "", status, m.help.View(m.keys))

	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}
