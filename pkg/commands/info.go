package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where quotes are stored.",
		Example: `
quotes info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Settings: e.settings,
				Service:  e.service,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
