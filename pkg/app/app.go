package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/reconcile"
	"tableflip.dev/quotes/pkg/store"
)

// ExportFileName is the default name used when exporting quotes to a file.
const ExportFileName = "quotes_export.json"

var (
	// ErrNoPersistence is returned when the service has no store.
	ErrNoPersistence = errors.New("app: no persistence configured")
	// ErrNoQuotes is returned when a random pick finds an empty pool.
	ErrNoQuotes = errors.New("app: no quotes available in this category")
)

// Pusher sends a newly added quote to the server.
type Pusher interface {
	PushQuote(ctx context.Context, q quote.Quote) error
}

// Service provides the quote operations shared by the CLI, the TUI and the
// MCP server. It owns the in-memory list and writes it through on every
// mutation.
type Service struct {
	Persistence store.Persistence

	// Pusher, when set, receives every quote added through Add.
	Pusher Pusher

	Picker quote.Picker
	Logger *log.Logger

	mu     sync.Mutex
	quotes []quote.Quote
	loaded bool
}

// New returns a service backed by p. The list is read from p on first use;
// call Load to re-read it.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

func (s *Service) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// Load reads the persisted list. A missing list yields the defaults; a
// malformed one is logged and the defaults are kept.
func (s *Service) Load(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	list, err := s.Persistence.Quotes()
	switch {
	case errors.Is(err, store.ErrNotFound):
		list = quote.Defaults()
	case err != nil:
		s.logger().Warn("invalid quotes in storage, using defaults", "err", err)
		list = quote.Defaults()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = list
	s.loaded = true
	return nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	return s.Load(ctx)
}

// Snapshot returns a copy of the current list, reading it from persistence
// first if it has not been loaded. Reconciler merges start from it, so an
// unloaded service never overwrites what is on disk.
func (s *Service) Snapshot() []quote.Quote {
	if s.Persistence != nil {
		if err := s.ensureLoaded(context.Background()); err != nil {
			s.logger().Warn("could not load quotes", "err", err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return quote.Clone(s.quotes)
}

// Replace swaps in list and persists it. The in-memory list only changes
// when the write succeeds.
func (s *Service) Replace(list []quote.Quote) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if err := s.Persistence.SaveQuotes(list); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = quote.Clone(list)
	s.loaded = true
	return nil
}

// Quotes returns the full list.
func (s *Service) Quotes(ctx context.Context) ([]quote.Quote, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.Snapshot(), nil
}

// Categories returns the unique categories in first-seen order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	list, err := s.Quotes(ctx)
	if err != nil {
		return nil, err
	}
	return quote.Categories(list), nil
}

// Selected returns the persisted category filter, or quote.AllCategories.
func (s *Service) Selected(ctx context.Context) string {
	if s.Persistence == nil {
		return quote.AllCategories
	}
	cat, err := s.Persistence.SelectedCategory()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.logger().Warn("could not read selected category", "err", err)
		}
		return quote.AllCategories
	}
	if cat == "" {
		return quote.AllCategories
	}
	return cat
}

// Select persists category as the current filter.
func (s *Service) Select(ctx context.Context, category string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if category == "" {
		category = quote.AllCategories
	}
	return s.Persistence.SetSelectedCategory(category)
}

// Filtered returns the quotes in category; an empty category means the
// persisted selection.
func (s *Service) Filtered(ctx context.Context, category string) ([]quote.Quote, error) {
	list, err := s.Quotes(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		category = s.Selected(ctx)
	}
	return quote.Filter(list, category), nil
}

// Add validates, appends and persists a new quote, then selects its
// category. A configured Pusher is notified; push failures are logged only.
func (s *Service) Add(ctx context.Context, text, category string) (quote.Quote, error) {
	q := quote.New(text, category)
	if err := quote.Validate(q); err != nil {
		return quote.Quote{}, err
	}
	list, err := s.Quotes(ctx)
	if err != nil {
		return quote.Quote{}, err
	}
	if err := s.Replace(append(list, q)); err != nil {
		return quote.Quote{}, err
	}
	if err := s.Select(ctx, q.Category); err != nil {
		return q, err
	}
	if s.Pusher != nil {
		if err := s.Pusher.PushQuote(ctx, q); err != nil {
			s.logger().Warn("could not post quote to server", "err", err)
		}
	}
	return q, nil
}

// Import appends every quote in r, which must hold a JSON array. Nothing is
// applied if decoding fails.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("app: read import: %w", err)
	}
	imported, err := quote.UnmarshalList(data)
	if err != nil {
		return 0, fmt.Errorf("app: import: %w", err)
	}
	list, err := s.Quotes(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.Replace(append(list, imported...)); err != nil {
		return 0, err
	}
	return len(imported), nil
}

// Export writes the full list to w as an indented JSON array.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	list, err := s.Quotes(ctx)
	if err != nil {
		return err
	}
	data, err := quote.MarshalList(list)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("app: export: %w", err)
	}
	return nil
}

// Random picks a quote from category (empty means the persisted selection)
// and remembers its position for LastShown.
func (s *Service) Random(ctx context.Context, category string) (quote.Quote, error) {
	list, err := s.Quotes(ctx)
	if err != nil {
		return quote.Quote{}, err
	}
	if category == "" {
		category = s.Selected(ctx)
	}
	q, ok := s.Picker.Pick(quote.Filter(list, category))
	if !ok {
		return quote.Quote{}, ErrNoQuotes
	}
	if s.Persistence != nil {
		if err := s.Persistence.SetLastShown(quote.IndexOf(list, q)); err != nil {
			s.logger().Warn("could not remember last shown quote", "err", err)
		}
	}
	return q, nil
}

// LastShown returns the quote most recently picked in this session, if the
// remembered position is still valid.
func (s *Service) LastShown(ctx context.Context) (quote.Quote, bool) {
	if s.Persistence == nil {
		return quote.Quote{}, false
	}
	idx, err := s.Persistence.LastShown()
	if err != nil {
		return quote.Quote{}, false
	}
	list, err := s.Quotes(ctx)
	if err != nil || idx < 0 || idx >= len(list) {
		return quote.Quote{}, false
	}
	return list[idx], true
}

// Reconciler returns a reconciler that merges src into this service.
func (s *Service) Reconciler(src reconcile.Source, interval time.Duration) *reconcile.Reconciler {
	r := reconcile.New(src, s, interval)
	r.Logger = s.Logger
	return r
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
