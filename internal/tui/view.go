package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/inkwell/pkg/styles"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render("Inkwell • style preview"))

	sections = append(sections, sectionStyle.Render("Components"))
	sections = append(sections, m.renderKeyList())

	sections = append(sections, sectionStyle.Render("Resolved style"))
	sections = append(sections, renderFragment(m.Resolved(), 1))

	sections = append(sections, sectionStyle.Render("Say something"))
	sections = append(sections, m.input.View())

	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render("↑/↓ select • enter apply • ctrl+r reset • esc quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderKeyList() string {
	var lines []string
	for i, key := range m.keys {
		if i == m.selected {
			lines = append(lines, selectedStyle.Render(" ▸ "+key))
			continue
		}
		lines = append(lines, keyStyle.Render("   "+key))
	}
	return strings.Join(lines, "\n")
}

// renderFragment prints a fragment as indented property lines with keys
// sorted for a stable display.
func renderFragment(fragment styles.Fragment, indent int) string {
	if fragment.IsEmpty() {
		return keyStyle.Render(strings.Repeat("  ", indent) + "(empty)")
	}

	keys := make([]string, 0, len(fragment))
	for key := range fragment {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var lines []string
	prefix := strings.Repeat("  ", indent)
	for _, key := range keys {
		switch value := fragment[key].(type) {
		case styles.Fragment:
			lines = append(lines, propStyle.Render(prefix+key+":"))
			lines = append(lines, renderFragment(value, indent+1))
		case map[string]any:
			lines = append(lines, propStyle.Render(prefix+key+":"))
			lines = append(lines, renderFragment(styles.Fragment(value), indent+1))
		default:
			line := propStyle.Render(prefix+key+": ") + valueStyle.Render(fmt.Sprintf("%v", value))
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
