package options

import (
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
)

const defaultWidth = 80

// WrapOptions
type WrapOptions struct {
	Width int
}

func AddWrapArg(cmd *cobra.Command, o *WrapOptions) {
	cmd.Flags().IntVarP(&o.Width, "width", "W", defaultWidth,
		"Wrap quote text at this many columns.")
}

// Wrap80 wraps help text at the terminal width cobra assumes.
func Wrap80(text string) string {
	return wordwrap.String(text, defaultWidth)
}
