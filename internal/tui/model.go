// Package tui is the interactive card builder: a form of inputs on the left,
// a live preview of the rendered card on the right, and an in-memory gallery
// of saved drafts underneath.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/cardbox-dev/cardbox/internal/card"
)

// Input slots, in focus-cycle order.
const (
	inputTitle = iota
	inputDescription
	inputFooter
	inputWidth
	inputFieldName
	inputFieldValue
	inputCount
)

// Draft is one saved card in the session gallery. Drafts live only as long
// as the program; there is deliberately no persistence.
type Draft struct {
	ID       string // uuid, session-unique
	Label    string
	Rendered string
}

// Model is the root bubbletea model for the builder.
type Model struct {
	inputs       []textinput.Model
	focusedInput int

	fields   []card.Field
	stampNow bool

	preview   string
	status    string
	statusErr bool

	drafts []Draft

	width  int
	height int

	help help.Model
	keys keyMap
}

// InitialModel builds the form with every input blurred except the title.
func InitialModel() Model {
	titleInput := textinput.New()
	titleInput.Placeholder = "Card title"
	titleInput.Width = InputWidth
	titleInput.Prompt = ""
	titleInput.Focus()

	descInput := textinput.New()
	descInput.Placeholder = "Longer body text, chunk-wrapped"
	descInput.Width = InputWidth
	descInput.Prompt = ""

	footerInput := textinput.New()
	footerInput.Placeholder = "footer, max 20 chars"
	footerInput.Width = InputWidth
	footerInput.Prompt = ""
	footerInput.CharLimit = card.MaxFooterLen

	widthInput := textinput.New()
	widthInput.Placeholder = strconv.Itoa(card.DefaultWidth)
	widthInput.Width = 4
	widthInput.Prompt = ""
	widthInput.CharLimit = 2

	fieldNameInput := textinput.New()
	fieldNameInput.Placeholder = "field name"
	fieldNameInput.Width = InputWidth
	fieldNameInput.Prompt = ""

	fieldValueInput := textinput.New()
	fieldValueInput.Placeholder = "field value"
	fieldValueInput.Width = InputWidth
	fieldValueInput.Prompt = ""

	m := Model{
		inputs: []textinput.Model{
			titleInput, descInput, footerInput,
			widthInput, fieldNameInput, fieldValueInput,
		},
		help: help.New(),
		keys: builderKeys,
	}
	m.refreshPreview()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// px parses the width input, returning 0 for "use the default".
func (m Model) px() int {
	raw := strings.TrimSpace(m.inputs[inputWidth].Value())
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

// buildEmbed assembles a card from the current form state. The rule record is
// re-sized after the content setters run because they clear it.
func (m Model) buildEmbed() (*card.Embed, error) {
	e, err := card.New(card.Data{}, false)
	if err != nil {
		return nil, err
	}

	px := m.px()
	if px != 0 {
		if _, err := e.SizeEmbed(px); err != nil {
			return nil, err
		}
	}
	if title := m.inputs[inputTitle].Value(); title != "" {
		if _, err := e.SetTitle(title); err != nil {
			return nil, err
		}
	}
	if desc := m.inputs[inputDescription].Value(); desc != "" {
		if _, err := e.SetDescription(desc); err != nil {
			return nil, err
		}
	}
	if px != 0 {
		if _, err := e.SizeEmbed(px); err != nil {
			return nil, err
		}
	}
	for _, f := range m.fields {
		if _, err := e.AddField(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	if footer := m.inputs[inputFooter].Value(); footer != "" {
		if _, err := e.SetFooter(footer); err != nil {
			return nil, err
		}
	}
	if m.stampNow {
		e.SetTimestamp()
	}
	return e, nil
}

// refreshPreview re-renders the preview pane, surfacing validation errors in
// the status line while keeping the last good preview on screen.
func (m *Model) refreshPreview() {
	e, err := m.buildEmbed()
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.preview = e.Render()
	m.statusErr = false
}

// saveDraft snapshots the current card into the gallery.
func (m *Model) saveDraft() {
	e, err := m.buildEmbed()
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	label := m.inputs[inputTitle].Value()
	if label == "" {
		label = "(untitled)"
	}
	m.drafts = append(m.drafts, Draft{
		ID:       uuid.New().String(),
		Label:    label,
		Rendered: e.Render(),
	})
	m.status = "draft saved"
	m.statusErr = false
}
