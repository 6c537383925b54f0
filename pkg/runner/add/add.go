package add

import (
	"context"
	"io"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/printers"
)

// Add stores a new quote and selects its category.
type Add struct {
	Service  *app.Service
	Text     string
	Category string

	Out   io.Writer
	Width int
}

func (a *Add) Do(ctx context.Context) error {
	if a.Service == nil {
		return app.ErrNoPersistence
	}
	q, err := a.Service.Add(ctx, a.Text, a.Category)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: a.Out, Width: a.Width}
	filtered, err := a.Service.Filtered(ctx, q.Category)
	if err != nil {
		return err
	}
	pp.Title("Quote added!")
	pp.Quote(q)
	pp.NewLine()
	pp.TitleWithCount(q.Category, len(filtered))
	pp.Table(filtered)
	return nil
}
