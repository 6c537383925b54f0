package filter

import (
	"context"
	"io"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/printers"
)

// Filter persists the category selection used by show, list and ui.
type Filter struct {
	Service  *app.Service
	Category string

	Out   io.Writer
	Width int
}

func (f *Filter) Do(ctx context.Context) error {
	if f.Service == nil {
		return app.ErrNoPersistence
	}
	if err := f.Service.Select(ctx, f.Category); err != nil {
		return err
	}
	category := f.Service.Selected(ctx)
	filtered, err := f.Service.Filtered(ctx, category)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: f.Out, Width: f.Width}
	pp.TitleWithCount(category, len(filtered))
	if len(filtered) == 0 {
		pp.Empty("No quotes available in this category.")
	}
	return nil
}
