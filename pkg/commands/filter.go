package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/runner/filter"
)

func addFilter(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "filter <category>",
		Short: "Save the category filter used by show, list and ui",
		Example: `
quotes filter Life
quotes filter all
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			f := filter.Filter{
				Service:  e.service,
				Category: args[0],
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(f.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
