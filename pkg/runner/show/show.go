package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/printers"
)

const noQuotes = "No quotes available in this category."

// Show prints a random quote, or the last one shown in this session.
type Show struct {
	Service  *app.Service
	Category string
	Last     bool

	Out   io.Writer
	Width int
}

func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return app.ErrNoPersistence
	}
	pp := printers.PrettyPrint{Out: s.Out, Width: s.Width}

	if s.Last {
		if q, ok := s.Service.LastShown(ctx); ok {
			pp.Quote(q)
			return nil
		}
	}

	q, err := s.Service.Random(ctx, s.Category)
	if errors.Is(err, app.ErrNoQuotes) {
		pp.Empty(noQuotes)
		return nil
	}
	if err != nil {
		return err
	}
	pp.Quote(q)
	return nil
}
