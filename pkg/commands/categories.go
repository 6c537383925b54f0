package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories and the saved filter",
		Example: `
quotes categories
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			c := categories.Categories{Service: e.service, Out: cmd.OutOrStdout()}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
