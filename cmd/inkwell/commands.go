package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type commandsOptions struct {
	showStyles bool
}

func newCommandsCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &commandsOptions{}

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List the style commands in the active library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommands(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.showStyles, "styles", false, "Include each command's style fragment")

	return cmd
}

func runCommands(cmd *cobra.Command, rootFlags *rootFlags, opts *commandsOptions) error {
	ctx, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	color := useColor(rootFlags)
	out := cmd.OutOrStdout()
	library := ctx.engine.Library()

	fmt.Fprintln(out, styled(color, headingStyle, "Style commands"))
	for _, name := range library.Names() {
		fmt.Fprintln(out, styled(color, nameStyle, "  "+name))
		if !opts.showStyles {
			continue
		}
		data, err := yaml.Marshal(library.Lookup(name))
		if err != nil {
			return fmt.Errorf("marshal fragment for %q: %w", name, err)
		}
		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			fmt.Fprintln(out, "    "+line)
		}
	}
	return nil
}
