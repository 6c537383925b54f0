package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/quotes/pkg/commands/options"
	"tableflip.dev/quotes/pkg/runner/add"
	"tableflip.dev/quotes/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.InteractiveOptions{}
	po := &options.PushOptions{}

	cmd := &cobra.Command{
		Use:   "add [quote]",
		Short: "Add a quote",
		Example: `
quotes add Stay hungry, stay foolish. --category Advice
quotes add -i
quotes add "Less is more." -c Design --push
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 && !io.Interactive {
				return errors.New("requires a quote, or -i to prompt for one")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text := strings.Join(args, " ")
			category := co.Category
			if io.Interactive {
				var err error
				text, category, err = snake.PromptQuote(cmd, text, category)
				if err != nil {
					return output.HandleError(err)
				}
			}

			e, err := loadEnv(cmd)
			if err != nil {
				return output.HandleError(err)
			}
			if po.Push {
				if e.client == nil {
					return output.HandleError(errors.New("--push needs server_url to be configured"))
				}
				e.service.Pusher = e.client
			}

			a := add.Add{
				Service:  e.service,
				Text:     text,
				Category: category,
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddCategoryArg(cmd, co)
	options.InteractiveArgs(cmd, io)
	options.AddPushArg(cmd, po)
	registerCategoryCompletion(cmd)

	topLevel.AddCommand(cmd)
}
