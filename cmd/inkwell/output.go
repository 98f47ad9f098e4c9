package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/inkwell/internal/style"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// useColor reports whether styled output should be emitted. Colors are
// dropped when the flag disables them or stdout is not a terminal.
func useColor(flags *rootFlags) bool {
	if flags.noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func styled(enabled bool, s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// writeFragmentYAML prints a fragment as a YAML document. yaml.v3 sorts map
// keys, so the output is deterministic for structurally equal fragments.
func writeFragmentYAML(w io.Writer, fragment style.Fragment) error {
	if fragment.IsEmpty() {
		_, err := fmt.Fprintln(w, "{}")
		return err
	}

	data, err := yaml.Marshal(fragment)
	if err != nil {
		return fmt.Errorf("marshal fragment: %w", err)
	}
	_, err = w.Write(data)
	return err
}
