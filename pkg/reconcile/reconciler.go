package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/quotes/pkg/quote"
)

// DefaultInterval is how often Run reconciles when no interval is set.
const DefaultInterval = time.Minute

// Source yields the remote collection, already mapped to quotes.
type Source interface {
	FetchQuotes(ctx context.Context) ([]quote.Quote, error)
}

// Target owns the shared quote list. Replace stores and persists the merged
// list.
type Target interface {
	Snapshot() []quote.Quote
	Replace(list []quote.Quote) error
}

// Reconciler fetches from a Source and merges into a Target.
type Reconciler struct {
	Source Source
	Target Target

	// Interval between periodic runs of Run.
	Interval time.Duration

	// Timeout bounds a single fetch. Zero means no extra bound.
	Timeout time.Duration

	// Notify receives every status message. Defaults to logging.
	Notify func(Status)

	Logger *log.Logger

	// Now is overridable for tests.
	Now func() time.Time

	triggerOnce sync.Once
	trigger     chan struct{}
}

// New returns a Reconciler wired to src and dst.
func New(src Source, dst Target, interval time.Duration) *Reconciler {
	return &Reconciler{Source: src, Target: dst, Interval: interval}
}

func (r *Reconciler) triggers() chan struct{} {
	r.triggerOnce.Do(func() {
		r.trigger = make(chan struct{}, 1)
	})
	return r.trigger
}

// Trigger asks a running Run loop to sync now. It never blocks; triggers
// that arrive while one is pending are folded into it.
func (r *Reconciler) Trigger() {
	select {
	case r.triggers() <- struct{}{}:
	default:
	}
}

// Begin reports that a sync is starting. Call it on the goroutine that owns
// the target, before Fetch.
func (r *Reconciler) Begin() {
	r.notify(syncingStatus(r.now()))
}

// Fetch retrieves the remote collection without touching local state. It is
// safe to call from any goroutine.
func (r *Reconciler) Fetch(ctx context.Context) ([]quote.Quote, error) {
	if r.Source == nil {
		return nil, errors.New("reconcile: no source configured")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	return r.Source.FetchQuotes(ctx)
}

// Apply merges a fetched collection into the target and persists it. A
// non-nil fetchErr is reported and leaves local state untouched.
func (r *Reconciler) Apply(remote []quote.Quote, fetchErr error) (Result, error) {
	if fetchErr != nil {
		r.notify(errorStatus(fetchErr, r.now()))
		return Result{}, fetchErr
	}
	if r.Target == nil {
		err := errors.New("reconcile: no target configured")
		r.notify(errorStatus(err, r.now()))
		return Result{}, err
	}
	merged, res := Merge(r.Target.Snapshot(), remote)
	if err := r.Target.Replace(merged); err != nil {
		err = fmt.Errorf("reconcile: save: %w", err)
		r.notify(errorStatus(err, r.now()))
		return Result{}, err
	}
	r.logger().Debug("sync applied", "added", res.Added, "updated", res.Updated)
	r.notify(resultStatus(res, r.now()))
	return res, nil
}

// Sync begins, fetches and applies in one call.
func (r *Reconciler) Sync(ctx context.Context) (Result, error) {
	r.Begin()
	remote, err := r.Fetch(ctx)
	return r.Apply(remote, err)
}

type fetched struct {
	quotes []quote.Quote
	err    error
}

// Run syncs immediately, then every Interval and on every Trigger, until ctx
// is done. Fetches run concurrently and may overlap; their results are merged
// one at a time on the calling goroutine, which is also the only goroutine
// that calls Notify. Sync failures are reported and do not stop the loop.
func (r *Reconciler) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	results := make(chan fetched)
	var wg sync.WaitGroup
	defer wg.Wait()

	start := func() {
		if r.Source == nil {
			_, _ = r.Apply(nil, errors.New("reconcile: no source configured"))
			return
		}
		r.Begin()
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := r.Fetch(ctx)
			select {
			case results <- fetched{quotes: list, err: err}:
			case <-ctx.Done():
			}
		}()
	}

	start()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			start()
		case <-r.triggers():
			start()
		case res := <-results:
			if res.err != nil && ctx.Err() != nil {
				return nil
			}
			_, _ = r.Apply(res.quotes, res.err)
		}
	}
}

func (r *Reconciler) notify(s Status) {
	if r.Notify != nil {
		r.Notify(s)
		return
	}
	if s.IsError() {
		r.logger().Error(s.Message)
		return
	}
	r.logger().Info(s.Message)
}

func (r *Reconciler) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

func (r *Reconciler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
