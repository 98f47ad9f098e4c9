package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newInterpretCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interpret <free text>",
		Short: "Show which style commands a piece of free text matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterpret(cmd, rootFlags, strings.Join(args, " "))
		},
	}

	return cmd
}

func runInterpret(cmd *cobra.Command, rootFlags *rootFlags, text string) error {
	ctx, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	color := useColor(rootFlags)
	out := cmd.OutOrStdout()

	matches := ctx.engine.Library().Interpret(text)
	if len(matches) == 0 {
		fmt.Fprintln(out, styled(color, dimStyle, "no commands matched"))
		return nil
	}

	for _, name := range matches {
		fmt.Fprintln(out, styled(color, nameStyle, name))
	}
	return nil
}
