package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/logging"
	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/store"
)

type staticSource struct {
	quotes []quote.Quote
	err    error
}

func (s staticSource) FetchQuotes(context.Context) ([]quote.Quote, error) {
	return quote.Clone(s.quotes), s.err
}

func newTestService(t *testing.T, src *staticSource) *Service {
	t.Helper()
	p, err := store.Load(&store.Settings{Path: t.TempDir(), Session: t.TempDir()})
	require.NoError(t, err)
	a := app.New(p)
	a.Logger = logging.Discard()
	if src == nil {
		return NewService(a, nil)
	}
	return NewService(a, *src)
}

func TestServiceListQuotes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	all, err := svc.ListQuotes(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, quote.Defaults(), all)

	all, err = svc.ListQuotes(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	life, err := svc.ListQuotes(ctx, " Life ")
	require.NoError(t, err)
	require.Len(t, life, 1)
	assert.Equal(t, "Life", life[0].Category)
}

func TestServiceRandomQuoteIgnoresSelection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)
	require.NoError(t, svc.App.Select(ctx, "Missing"))

	q, err := svc.RandomQuote(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, quote.Defaults(), q)

	_, err = svc.RandomQuote(ctx, "Missing")
	assert.ErrorIs(t, err, app.ErrNoQuotes)
}

func TestServiceAddQuote(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	q, err := svc.AddQuote(ctx, "  Be kind. ", "Life")
	require.NoError(t, err)
	assert.Equal(t, quote.Quote{Text: "Be kind.", Category: "Life"}, q)

	_, err = svc.AddQuote(ctx, "", "Life")
	assert.ErrorIs(t, err, quote.ErrRequired)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []CategorySummary{
		{Name: "Motivation", Count: 1},
		{Name: "Life", Count: 2, Selected: true},
		{Name: "Inspiration", Count: 1},
	}, cats)
}

func TestServiceSyncQuotes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &staticSource{quotes: []quote.Quote{
		{Text: "Imagination is more important than knowledge.", Category: "Server"},
		{Text: "qui est esse", Category: "Server"},
	}})

	summary, err := svc.SyncQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncSummary{
		Added:   1,
		Updated: 1,
		Total:   4,
		Message: "Synced: 1 new quotes added from server.",
	}, summary)

	summary, err = svc.SyncQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Added)
	assert.Equal(t, "Sync complete: No new quotes.", summary.Message)
}

func TestServiceSyncQuotesErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestService(t, nil).SyncQuotes(ctx)
	assert.ErrorIs(t, err, ErrSyncDisabled)

	offline := errors.New("offline")
	svc := newTestService(t, &staticSource{err: offline})
	_, err = svc.SyncQuotes(ctx)
	assert.ErrorIs(t, err, offline)

	list, err := svc.ListQuotes(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, quote.Defaults(), list)
}

func TestTemplateArg(t *testing.T) {
	assert.Equal(t, "Life", templateArg("Life"))
	assert.Equal(t, "Life", templateArg([]string{"Life"}))
	assert.Empty(t, templateArg(nil))
	assert.Empty(t, templateArg([]string{}))
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("quotes MCP", "test", newTestService(t, nil)))
}
