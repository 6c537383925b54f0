// Package mcp provides the Model Context Protocol server integration for quotes.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/reconcile"
)

// ErrSyncDisabled is returned by SyncQuotes when no source is configured.
var ErrSyncDisabled = errors.New("sync is not configured")

// Service adapts app.Service for concurrent MCP handlers. Mutations are
// serialized; remote fetches are not.
type Service struct {
	App     *app.Service
	Source  reconcile.Source
	// Timeout bounds each remote fetch. Zero means no extra bound.
	Timeout time.Duration

	mu sync.Mutex
}

// CategorySummary describes a category and how many quotes it holds.
type CategorySummary struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// SyncSummary reports the outcome of a sync.
type SyncSummary struct {
	Added   int    `json:"added"`
	Updated int    `json:"updated"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

// NewService wraps svc. src may be nil, which disables sync.
func NewService(svc *app.Service, src reconcile.Source) *Service {
	return &Service{App: svc, Source: src}
}

// ListQuotes returns quotes in category. An empty category or "all" lists
// everything.
func (s *Service) ListQuotes(ctx context.Context, category string) ([]quote.Quote, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	list, err := s.App.Quotes(ctx)
	if err != nil {
		return nil, err
	}
	return quote.Filter(list, strings.TrimSpace(category)), nil
}

// RandomQuote picks a quote from category. An empty category means all.
func (s *Service) RandomQuote(ctx context.Context, category string) (quote.Quote, error) {
	if s.App == nil {
		return quote.Quote{}, app.ErrNoPersistence
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = quote.AllCategories
	}
	return s.App.Random(ctx, category)
}

// AddQuote validates and stores a new quote.
func (s *Service) AddQuote(ctx context.Context, text, category string) (quote.Quote, error) {
	if s.App == nil {
		return quote.Quote{}, app.ErrNoPersistence
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.App.Add(ctx, text, category)
}

// ListCategories summarizes every category in first-seen order.
func (s *Service) ListCategories(ctx context.Context) ([]CategorySummary, error) {
	if s.App == nil {
		return nil, app.ErrNoPersistence
	}
	list, err := s.App.Quotes(ctx)
	if err != nil {
		return nil, err
	}
	selected := s.App.Selected(ctx)
	cats := quote.Categories(list)
	out := make([]CategorySummary, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategorySummary{
			Name:     c,
			Count:    len(quote.Filter(list, c)),
			Selected: c == selected,
		})
	}
	return out, nil
}

// SyncQuotes fetches the remote collection and merges it into the list.
func (s *Service) SyncQuotes(ctx context.Context) (SyncSummary, error) {
	if s.App == nil {
		return SyncSummary{}, app.ErrNoPersistence
	}
	if s.Source == nil {
		return SyncSummary{}, ErrSyncDisabled
	}

	var last reconcile.Status
	rec := s.App.Reconciler(s.Source, 0)
	rec.Timeout = s.Timeout
	rec.Notify = func(st reconcile.Status) { last = st }

	remote, fetchErr := rec.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	res, err := rec.Apply(remote, fetchErr)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("sync: %w", err)
	}
	return SyncSummary{
		Added:   res.Added,
		Updated: res.Updated,
		Total:   len(s.App.Snapshot()),
		Message: last.Message,
	}, nil
}
