package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/inkwell/pkg/styles"
)

type resolveOptions struct {
	commands  []string
	overrides string
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component-key>",
		Short: "Resolve the final style fragment for a component key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVarP(&opts.commands, "command", "c", nil, "Extra command to merge (repeatable, ordered)")
	cmd.Flags().StringVarP(&opts.overrides, "overrides", "o", "", "Inline YAML fragment merged at highest precedence")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions, key string) error {
	ctx, err := newAppContext(rootFlags)
	if err != nil {
		return err
	}

	resolveOpts := styles.Options{Commands: opts.commands}
	if opts.overrides != "" {
		var fragment styles.Fragment
		if err := yaml.Unmarshal([]byte(opts.overrides), &fragment); err != nil {
			return fmt.Errorf("parse --overrides: %w", err)
		}
		resolveOpts.Overrides = fragment
	}

	resolved := ctx.engine.GetComponentStyle(key, resolveOpts)

	color := useColor(rootFlags)
	fmt.Fprintln(cmd.OutOrStdout(), styled(color, nameStyle, key))
	return writeFragmentYAML(cmd.OutOrStdout(), resolved)
}
