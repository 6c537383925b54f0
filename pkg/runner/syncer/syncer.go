package syncer

import (
	"context"
	"io"
	"time"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/printers"
	"tableflip.dev/quotes/pkg/reconcile"
)

// Sync merges the remote collection into the local list once, or every
// Interval when Watch is set.
type Sync struct {
	Service  *app.Service
	Source   reconcile.Source
	Interval time.Duration
	Timeout  time.Duration
	Watch    bool

	Out io.Writer
}

func (s *Sync) Do(ctx context.Context) error {
	if s.Service == nil {
		return app.ErrNoPersistence
	}
	pp := printers.PrettyPrint{Out: s.Out}
	rec := s.Service.Reconciler(s.Source, s.Interval)
	rec.Timeout = s.Timeout

	rec.Notify = pp.Status

	if s.Watch {
		return rec.Run(ctx)
	}
	_, err := rec.Sync(ctx)
	return err
}
