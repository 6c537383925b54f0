package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/runner/syncer"
)

func addSync(topLevel *cobra.Command) {
	var watch bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Merge quotes from the sync server",
		Long: `Fetch quotes from server_url and merge them into the local list. A
server quote with the same text as a local one overwrites its category; new
ones are appended. Nothing is ever removed.`,
		Example: `
quotes sync
quotes sync --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			if e.client == nil {
				return output.HandleError(errors.New("sync needs server_url to be configured"))
			}
			s := syncer.Sync{
				Service:  e.service,
				Source:   e.source(),
				Interval: e.settings.SyncInterval,
				Timeout:  e.settings.SyncTimeout,
				Watch:    watch,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and sync every sync_interval until interrupted.")

	topLevel.AddCommand(cmd)
}
