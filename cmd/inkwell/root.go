package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	manifestPath string
	verbose      bool
	noColor      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "inkwell",
		Short:         "Inkwell resolves declarative style commands for kiosk UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the preview panel
			if len(args) == 0 {
				return runPreview(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.manifestPath, "manifest", "m", "", "Theme manifest to load instead of the built-in theme")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newCommandsCmd(flags))
	cmd.AddCommand(newComponentsCmd(flags))
	cmd.AddCommand(newInterpretCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
