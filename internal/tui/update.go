package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cardbox-dev/cardbox/internal/card"
	"github.com/cardbox-dev/cardbox/internal/clipboard"
	"github.com/cardbox-dev/cardbox/internal/utils"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cycleFocus(1)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cycleFocus(-1)
			return m, nil

		case key.Matches(msg, m.keys.Apply):
			m.refreshPreview()
			if !m.statusErr {
				m.status = "preview updated"
			}
			return m, nil

		case key.Matches(msg, m.keys.AddField):
			m.commitField()
			return m, nil

		case key.Matches(msg, m.keys.ClearFields):
			m.fields = nil
			m.refreshPreview()
			m.status = "fields cleared"
			m.statusErr = false
			return m, nil

		case key.Matches(msg, m.keys.ToggleStamp):
			m.stampNow = !m.stampNow
			m.refreshPreview()
			return m, nil

		case key.Matches(msg, m.keys.Save):
			m.saveDraft()
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			if err := clipboard.WriteCard(m.preview); err != nil {
				utils.Debug("clipboard write failed: %v", err)
				m.status = "clipboard unavailable"
				m.statusErr = true
			} else {
				m.status = "card copied to clipboard"
				m.statusErr = false
			}
			return m, nil

		case key.Matches(msg, m.keys.Paste):
			text := clipboard.ReadText()
			if text == "" {
				m.status = "nothing usable on the clipboard"
				m.statusErr = true
				return m, nil
			}
			m.inputs[inputDescription].SetValue(text)
			m.refreshPreview()
			m.status = "description pasted"
			m.statusErr = false
			return m, nil
		}
	}

	// Everything else goes to the focused input.
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// cycleFocus moves input focus by delta, wrapping around the form.
func (m *Model) cycleFocus(delta int) {
	m.inputs[m.focusedInput].Blur()
	m.focusedInput = (m.focusedInput + delta + inputCount) % inputCount
	m.inputs[m.focusedInput].Focus()
}

// commitField validates the field inputs and appends them to the card,
// clearing the inputs on success so the next field can be typed straight in.
func (m *Model) commitField() {
	name := m.inputs[inputFieldName].Value()
	value := m.inputs[inputFieldValue].Value()

	normalized, err := card.NormalizeFields(card.Field{Name: name, Value: value})
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}

	m.fields = append(m.fields, normalized...)
	m.inputs[inputFieldName].SetValue("")
	m.inputs[inputFieldValue].SetValue("")
	m.refreshPreview()
	if !m.statusErr {
		m.status = "field added"
	}
	utils.Debug("field committed, %d total", len(m.fields))
}
