package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
			m.status = ""
			return m, nil
		case tea.KeyDown:
			if m.selected < len(m.keys)-1 {
				m.selected++
			}
			m.status = ""
			return m, nil
		case tea.KeyCtrlR:
			key := m.SelectedKey()
			if key != "" {
				m.engine.ResetComponentOverride(key)
				m.status = fmt.Sprintf("cleared overrides for %s", key)
			}
			return m, nil
		case tea.KeyEnter:
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() Model {
	key := m.SelectedKey()
	text := strings.TrimSpace(m.input.Value())
	if key == "" || text == "" {
		return m
	}

	matches := m.engine.Library().Interpret(text)
	m.engine.ApplyEnglishStyleCommand(key, text)
	m.input.Reset()

	if len(matches) == 0 {
		m.status = "no style commands matched"
		return m
	}
	m.status = fmt.Sprintf("applied: %s", strings.Join(matches, ", "))
	return m
}
