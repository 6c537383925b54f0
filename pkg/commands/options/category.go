package options

import (
	"github.com/spf13/cobra"
)

// CategoryOptions
type CategoryOptions struct {
	Category string
}

func AddCategoryArg(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		`Quote category. Defaults to the saved filter; "all" means every category.`)
}
