package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/commands/options"
	"tableflip.dev/quotes/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List quotes in a category",
		Example: `
quotes list
quotes list --category all --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			l := list.List{
				Service:  e.service,
				Category: co.Category,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddCategoryArg(cmd, co)
	registerCategoryCompletion(cmd)

	topLevel.AddCommand(cmd)
}
