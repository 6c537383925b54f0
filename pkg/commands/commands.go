package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "quotes",
		Short: options.Wrap80("Browse, filter, add and sync categorized quotes on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addList(topLevel)
	addCategories(topLevel)
	addFilter(topLevel)
	addAdd(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addSync(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
