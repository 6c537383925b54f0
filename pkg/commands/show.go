package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/commands/options"
	"tableflip.dev/quotes/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	wo := &options.WrapOptions{}
	var last bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a random quote",
		Example: `
quotes show
quotes show --category Life
quotes show --last
quotes show --width 40
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Service:  e.service,
				Category: co.Category,
				Last:     last,
				Out:      cmd.OutOrStdout(),
				Width:    wo.Width,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddCategoryArg(cmd, co)
	options.AddWrapArg(cmd, wo)
	registerCategoryCompletion(cmd)
	cmd.Flags().BoolVar(&last, "last", false, "Show the quote last shown in this terminal session, if any.")

	topLevel.AddCommand(cmd)
}
