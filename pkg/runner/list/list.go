package list

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/printers"
	"tableflip.dev/quotes/pkg/quote"
)

// List prints the quotes in a category as a table or JSON.
type List struct {
	Service *app.Service
	// Category filters the list. Empty means the persisted selection.
	Category string
	JSON     bool

	Out   io.Writer
	Width int
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return app.ErrNoPersistence
	}
	category := l.Category
	if category == "" {
		category = l.Service.Selected(ctx)
	}
	filtered, err := l.Service.Filtered(ctx, category)
	if err != nil {
		return err
	}

	if l.JSON {
		data, err := quote.MarshalList(filtered)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(l.out(), string(data))
		return err
	}

	pp := printers.PrettyPrint{Out: l.Out, Width: l.Width}
	pp.TitleWithCount(category, len(filtered))
	pp.Table(filtered)
	return nil
}

func (l *List) out() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return color.Output
}
