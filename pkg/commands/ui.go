package commands

import (
	"io"

	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
quotes ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr would draw over the alt screen
			e, err := newEnv(cmd, io.Discard)
			if err != nil {
				return err
			}
			i := ui.UI{
				Service:   e.service,
				Source:    e.source(),
				Interval:  e.settings.SyncInterval,
				Timeout:   e.settings.SyncTimeout,
				StatusTTL: e.settings.StatusTTL,
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
