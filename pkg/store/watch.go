package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventQuotesChanged indicates the stored quote list was rewritten.
	EventQuotesChanged EventType = iota

	// EventCategoryChanged indicates the selected category filter changed.
	EventCategoryChanged

	// EventInvalidated signals a change that could not be classified; callers
	// should reload everything.
	EventInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventQuotesChanged:
		return "quotes"
	case EventCategoryChanged:
		return "category"
	default:
		return "invalidated"
	}
}

// Event is emitted by Persistence.Watch when the persistent store changes.
type Event struct {
	Type EventType
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel; events are dropped rather than blocking the watcher. The
// channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		// The throttle flushes from its own timer goroutine, so sends and
		// the final close share a lock.
		var (
			mu     sync.Mutex
			closed bool
		)
		defer func() {
			mu.Lock()
			closed = true
			close(events)
			mu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Warn("store: watcher close", "err", err)
			}
		}()

		send := func(ev Event) {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Debug("store: watcher error", "err", err)
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op == fsnotify.Chmod {
					continue
				}
				typ, ok := eventTypeForPath(evt.Name)
				if !ok {
					continue
				}
				throttle.Enqueue(Event{Type: typ}, send)
			}
		}
	}()

	return events, nil
}

// eventTypeForPath maps a file in the store directory to the event it
// represents. Temporary files are ignored.
func eventTypeForPath(path string) (EventType, bool) {
	name := filepath.Base(path)
	switch {
	case strings.HasPrefix(name, "."):
		return 0, false
	case name == keyQuotes:
		return EventQuotesChanged, true
	case name == keyCategory:
		return EventCategoryChanged, true
	default:
		return EventInvalidated, true
	}
}

// eventThrottle coalesces bursts of writes into one notification per type.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[ev.Type] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]struct{})
	t.timer = nil
	t.mu.Unlock()

	for typ := range pending {
		send(Event{Type: typ})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
