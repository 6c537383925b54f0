package categories

import (
	"context"
	"io"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/printers"
)

// Categories prints every category with its count and marks the selection.
type Categories struct {
	Service *app.Service
	Out     io.Writer
}

func (c *Categories) Do(ctx context.Context) error {
	if c.Service == nil {
		return app.ErrNoPersistence
	}
	list, err := c.Service.Quotes(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: c.Out}
	pp.Categories(list, c.Service.Selected(ctx))
	return nil
}
