// Package commands holds the overlay command line: running the simulator, editing packs,
// rendering previews and moving packs in and out of the store.
package commands

import (
	"github.com/spf13/cobra"
)

// New creates the root command
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "overlay",
		Short:         "Author and preview reactive combat overlays.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands registers every subcommand
func AddCommands(topLevel *cobra.Command) {
	addSim(topLevel)
	addEdit(topLevel)
	addRender(topLevel)
	addList(topLevel)
	addValidate(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addCopy(topLevel)
	addShare(topLevel)
}
