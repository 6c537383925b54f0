package options

import (
	"github.com/spf13/cobra"
)

// PushOptions
type PushOptions struct {
	Push bool
}

func AddPushArg(cmd *cobra.Command, o *PushOptions) {
	cmd.Flags().BoolVar(&o.Push, "push", false,
		"Also post the new quote to the sync server.")
}
