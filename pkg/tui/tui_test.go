package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/logging"
	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/reconcile"
	"tableflip.dev/quotes/pkg/store"
)

type fixedSource struct {
	quotes []quote.Quote
	err    error
}

func (s fixedSource) FetchQuotes(context.Context) ([]quote.Quote, error) {
	return quote.Clone(s.quotes), s.err
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(&store.Settings{Path: t.TempDir(), Session: t.TempDir()})
	require.NoError(t, err)
	svc := app.New(p)
	svc.Logger = logging.Discard()
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewRestoresLastShown(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	svc.Picker = quote.Picker{IntN: func(int) int { return 0 }}
	picked, err := svc.Random(ctx, "Life")
	require.NoError(t, err)

	m, err := New(ctx, svc, Options{})
	require.NoError(t, err)
	assert.True(t, m.hasShown)
	assert.Equal(t, picked, m.shown)
	assert.Contains(t, m.View(), "Life is what happens")
}

func TestCycleCategoryPersistsSelection(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	m, err := New(ctx, svc, Options{})
	require.NoError(t, err)
	assert.Equal(t, quote.AllCategories, m.category)
	assert.Len(t, m.visible, 3)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Motivation", m.category)
	assert.Len(t, m.visible, 1)
	assert.Equal(t, "Motivation", svc.Selected(ctx))

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "Inspiration", m.category)
	assert.Equal(t, "Inspiration", svc.Selected(ctx))
}

func TestRandomWithEmptyCategory(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	require.NoError(t, svc.Select(ctx, "Nope"))

	m, err := New(ctx, svc, Options{})
	require.NoError(t, err)
	assert.Empty(t, m.visible)

	m.Update(runes("n"))
	assert.False(t, m.hasShown)
	assert.Equal(t, hintNoQuotes, m.message)
}

func TestAddForm(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	m, err := New(ctx, svc, Options{})
	require.NoError(t, err)

	m.Update(runes("a"))
	require.Equal(t, modeAdd, m.mode)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.form)
	assert.Contains(t, m.form.err, quote.ErrRequired.Error())

	m.Update(runes("Stay hungry."))
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(runes("Advice"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "Advice", m.category)
	assert.Equal(t, []quote.Quote{{Text: "Stay hungry.", Category: "Advice"}}, m.visible)
	assert.Equal(t, "Advice", svc.Selected(ctx))
	assert.Contains(t, m.categories, "Advice")
}

func TestAddFormCancel(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	m, err := New(ctx, svc, Options{})
	require.NoError(t, err)

	m.Update(runes("a"))
	m.Update(runes("draft"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Len(t, svc.Snapshot(), 3)
}

func TestSyncMergesInUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	src := fixedSource{quotes: []quote.Quote{
		{Text: "Life is what happens when you're busy making other plans.", Category: "Server"},
		{Text: "sunt aut facere", Category: "Server"},
	}}
	rec := svc.Reconciler(src, time.Minute)
	m, err := New(ctx, svc, Options{Reconciler: rec, StatusTTL: 5 * time.Second})
	require.NoError(t, err)

	_, cmd := m.Update(runes("s"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "Syncing with server...", m.status.Message)
	assert.Len(t, svc.Snapshot(), 3)

	list, fetchErr := rec.Fetch(ctx)
	m.Update(syncResultMsg{quotes: list, err: fetchErr})
	assert.Equal(t, "Synced: 1 new quotes added from server.", m.status.Message)
	assert.Len(t, m.visible, 4)
	assert.Contains(t, m.categories, "Server")
	assert.NotContains(t, m.categories, "Life")
}

func TestSyncFailureKeepsList(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	rec := svc.Reconciler(fixedSource{err: errors.New("offline")}, time.Minute)
	m, err := New(ctx, svc, Options{Reconciler: rec})
	require.NoError(t, err)

	m.startSync()
	list, fetchErr := rec.Fetch(ctx)
	m.Update(syncResultMsg{quotes: list, err: fetchErr})
	assert.True(t, m.status.IsError())
	assert.Equal(t, "Error syncing with server: offline", m.status.Message)
	assert.Equal(t, quote.Defaults(), svc.Snapshot())
}

func TestStatusExpiry(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	m, err := New(ctx, svc, Options{StatusTTL: time.Second})
	require.NoError(t, err)

	first := time.Unix(100, 0)
	m.setStatus(reconcile.Status{Message: "one", At: first})
	m.setStatus(reconcile.Status{Message: "two", At: first.Add(time.Second)})

	m.Update(statusExpiredMsg{at: first})
	assert.Equal(t, "two", m.status.Message)

	m.Update(statusExpiredMsg{at: first.Add(time.Second)})
	assert.Empty(t, m.status.Message)
}

func TestWatchEventReloads(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	m, err := New(ctx, svc, Options{})
	require.NoError(t, err)

	require.NoError(t, svc.Persistence.SaveQuotes([]quote.Quote{{Text: "x", Category: "Y"}}))
	m.Update(watchEventMsg{event: store.Event{Type: store.EventQuotesChanged}})
	assert.Equal(t, []string{quote.AllCategories, "Y"}, m.categories)

	require.NoError(t, svc.Persistence.SetSelectedCategory("Y"))
	m.Update(watchEventMsg{event: store.Event{Type: store.EventCategoryChanged}})
	assert.Equal(t, "Y", m.category)
	assert.Len(t, m.visible, 1)
}
