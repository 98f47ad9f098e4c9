package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newComponentsCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List the component keys in the active registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(cmd, rootFlags)
		},
	}

	return cmd
}

func runComponents(cmd *cobra.Command, rootFlags *rootFlags) error {
	ctx, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	color := useColor(rootFlags)
	out := cmd.OutOrStdout()
	registry := ctx.engine.Registry()

	fmt.Fprintln(out, styled(color, headingStyle, "Components"))

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tDEFAULT COMMANDS\tDESCRIPTION")
	for _, key := range registry.Keys() {
		entry := registry.Lookup(key)
		commands := strings.Join(entry.Commands, ", ")
		if commands == "" {
			commands = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Key, commands, entry.Description)
	}
	return w.Flush()
}
