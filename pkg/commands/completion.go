package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/logging"
	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(quotes completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(quotes completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func registerCategoryCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("category", func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return categoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// categoryCompletions lists stored categories with the given prefix. It
// stays silent on errors so completion never prints noise.
func categoryCompletions(toComplete string) []string {
	settings, err := store.LoadConfig()
	if err != nil {
		return nil
	}
	p, err := store.Load(settings)
	if err != nil {
		return nil
	}
	svc := app.New(p)
	svc.Logger = logging.Discard()
	cats, err := svc.Categories(context.Background())
	if err != nil {
		return nil
	}
	cats = append([]string{quote.AllCategories}, cats...)
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(toComplete)) {
			out = append(out, c)
		}
	}
	return out
}
