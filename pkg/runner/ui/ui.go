package ui

import (
	"context"
	"time"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/reconcile"
	"tableflip.dev/quotes/pkg/tui"
)

// UI opens the terminal quote widget.
type UI struct {
	Service *app.Service
	// Source enables the sync key and periodic sync. Nil disables both.
	Source    reconcile.Source
	Interval  time.Duration
	Timeout   time.Duration
	StatusTTL time.Duration
}

func (u *UI) Do(ctx context.Context) error {
	if u.Service == nil {
		return app.ErrNoPersistence
	}
	opts := tui.Options{
		Interval:  u.Interval,
		StatusTTL: u.StatusTTL,
	}
	if u.Source != nil {
		rec := u.Service.Reconciler(u.Source, u.Interval)
		rec.Timeout = u.Timeout
		opts.Reconciler = rec
	}
	return tui.Run(ctx, u.Service, opts)
}
