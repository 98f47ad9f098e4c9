package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/inkwell/internal/tui"
)

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview resolved styles and try free-text commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(rootFlags)
		},
	}

	return cmd
}

func runPreview(rootFlags *rootFlags) error {
	ctx, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(ctx.engine))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
