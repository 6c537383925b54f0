package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export every quote to a JSON file",
		Long:  "Export every quote as an indented JSON array. The file defaults to " + app.ExportFileName + "; use - for stdout.",
		Example: `
quotes export
quotes export backup.json
quotes export - | jq length
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			x := transfer.Export{Service: e.service, Out: cmd.OutOrStdout()}
			if len(args) == 1 {
				x.File = args[0]
			}
			return output.HandleError(x.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Append quotes from a JSON file",
		Long:  "Append every quote in a JSON array file. Nothing is imported unless the whole file is valid; use - for stdin.",
		Example: `
quotes import quotes_export.json
cat more.json | quotes import -
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			i := transfer.Import{
				Service: e.service,
				File:    args[0],
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(i.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
