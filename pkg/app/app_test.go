package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/quotes/pkg/logging"
	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/reconcile"
	"tableflip.dev/quotes/pkg/store"
)

type memoryPersistence struct {
	mu        sync.Mutex
	quotes    []quote.Quote
	raw       error
	category  string
	lastShown *int
	saveErr   error
}

func (m *memoryPersistence) Quotes() ([]quote.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raw != nil {
		return nil, m.raw
	}
	if m.quotes == nil {
		return nil, store.ErrNotFound
	}
	return quote.Clone(m.quotes), nil
}

func (m *memoryPersistence) SaveQuotes(list []quote.Quote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.quotes = quote.Clone(list)
	m.raw = nil
	return nil
}

func (m *memoryPersistence) SelectedCategory() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.category == "" {
		return "", store.ErrNotFound
	}
	return m.category, nil
}

func (m *memoryPersistence) SetSelectedCategory(category string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.category = category
	return nil
}

func (m *memoryPersistence) LastShown() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastShown == nil {
		return -1, store.ErrNotFound
	}
	return *m.lastShown, nil
}

func (m *memoryPersistence) SetLastShown(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastShown = &index
	return nil
}

func (m *memoryPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type recordingPusher struct {
	pushed []quote.Quote
	err    error
}

func (p *recordingPusher) PushQuote(_ context.Context, q quote.Quote) error {
	p.pushed = append(p.pushed, q)
	return p.err
}

func newTestService(t *testing.T, p *memoryPersistence) *Service {
	t.Helper()
	svc := New(p)
	svc.Logger = logging.Discard()
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestLoadDefaultsWhenNothingStored(t *testing.T) {
	svc := newTestService(t, &memoryPersistence{})
	got, err := svc.Quotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, quote.Defaults(), got)
}

func TestLoadDefaultsWhenMalformed(t *testing.T) {
	svc := newTestService(t, &memoryPersistence{raw: errors.New("invalid character")})
	got, err := svc.Quotes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, quote.Defaults(), got)
}

func TestLoadWithoutPersistence(t *testing.T) {
	assert.ErrorIs(t, New(nil).Load(context.Background()), ErrNoPersistence)
}

func TestAddPersistsAndSelectsCategory(t *testing.T) {
	ctx := context.Background()
	p := &memoryPersistence{}
	pusher := &recordingPusher{}
	svc := newTestService(t, p)
	svc.Pusher = pusher

	q, err := svc.Add(ctx, "  Stay hungry.  ", " Wisdom ")
	require.NoError(t, err)
	assert.Equal(t, quote.Quote{Text: "Stay hungry.", Category: "Wisdom"}, q)

	stored, err := p.Quotes()
	require.NoError(t, err)
	assert.Len(t, stored, 4)
	assert.Equal(t, q, stored[3])
	assert.Equal(t, "Wisdom", svc.Selected(ctx))
	assert.Equal(t, []quote.Quote{q}, pusher.pushed)
}

func TestAddPushFailureIsNotFatal(t *testing.T) {
	svc := newTestService(t, &memoryPersistence{})
	svc.Pusher = &recordingPusher{err: errors.New("offline")}
	_, err := svc.Add(context.Background(), "text", "cat")
	assert.NoError(t, err)
}

func TestAddRequiresBothFields(t *testing.T) {
	p := &memoryPersistence{}
	svc := newTestService(t, p)

	_, err := svc.Add(context.Background(), "", "cat")
	assert.ErrorIs(t, err, quote.ErrRequired)
	_, err = svc.Add(context.Background(), "text", "   ")
	assert.ErrorIs(t, err, quote.ErrRequired)

	_, err = p.Quotes()
	assert.ErrorIs(t, err, store.ErrNotFound, "nothing should have been saved")
}

func TestAddSaveFailureKeepsMemory(t *testing.T) {
	p := &memoryPersistence{saveErr: errors.New("disk full")}
	svc := newTestService(t, p)
	_, err := svc.Add(context.Background(), "text", "cat")
	require.Error(t, err)
	assert.Len(t, svc.Snapshot(), 3)
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &memoryPersistence{})

	var buf bytes.Buffer
	require.NoError(t, svc.Export(ctx, &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n  {"))

	n, err := svc.Import(ctx, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := svc.Quotes(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 6)
	for _, q := range quote.Defaults() {
		assert.Contains(t, got, q)
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	p := &memoryPersistence{}
	svc := newTestService(t, p)

	_, err := svc.Import(ctx, strings.NewReader(`{"text":"a","category":"b"}`))
	assert.ErrorIs(t, err, quote.ErrNotArray)

	_, err = svc.Import(ctx, strings.NewReader(`[{"text":`))
	assert.Error(t, err)

	assert.Len(t, svc.Snapshot(), 3)
	_, err = p.Quotes()
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestImportAppendsVerbatim(t *testing.T) {
	svc := newTestService(t, &memoryPersistence{})
	n, err := svc.Import(context.Background(), strings.NewReader(`[{"text":"x"}]`))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	got := svc.Snapshot()
	assert.Equal(t, quote.Quote{Text: "x"}, got[len(got)-1])
}

func TestSelectPersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	p := &memoryPersistence{}
	svc := newTestService(t, p)
	assert.Equal(t, quote.AllCategories, svc.Selected(ctx))

	require.NoError(t, svc.Select(ctx, "Life"))

	reloaded := newTestService(t, p)
	assert.Equal(t, "Life", reloaded.Selected(ctx))

	filtered, err := reloaded.Filtered(ctx, "")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Life", filtered[0].Category)
}

func TestRandomSingleEntryPool(t *testing.T) {
	ctx := context.Background()
	p := &memoryPersistence{}
	svc := newTestService(t, p)

	want := quote.Defaults()[1]
	for i := 0; i < 20; i++ {
		got, err := svc.Random(ctx, "Life")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	last, ok := svc.LastShown(ctx)
	require.True(t, ok)
	assert.Equal(t, want, last)
	idx, err := p.LastShown()
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestRandomEmptyPool(t *testing.T) {
	svc := newTestService(t, &memoryPersistence{})
	_, err := svc.Random(context.Background(), "Nope")
	assert.ErrorIs(t, err, ErrNoQuotes)
}

func TestLastShownOutOfRange(t *testing.T) {
	idx := 42
	svc := newTestService(t, &memoryPersistence{lastShown: &idx})
	_, ok := svc.LastShown(context.Background())
	assert.False(t, ok)
}

type fixedSource []quote.Quote

func (f fixedSource) FetchQuotes(context.Context) ([]quote.Quote, error) {
	return quote.Clone(f), nil
}

func TestReconcilerMergesIntoService(t *testing.T) {
	ctx := context.Background()
	p := &memoryPersistence{quotes: []quote.Quote{{Text: "A", Category: "X"}}}
	svc := newTestService(t, p)

	r := svc.Reconciler(fixedSource{{Text: "A", Category: "Server"}, {Text: "B", Category: "Server"}}, 0)
	r.Notify = func(reconcile.Status) {}
	res, err := r.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Updated)

	stored, err := p.Quotes()
	require.NoError(t, err)
	assert.Equal(t, []quote.Quote{{Text: "A", Category: "Server"}, {Text: "B", Category: "Server"}}, stored)
	assert.Equal(t, stored, svc.Snapshot())
}

func TestReconcilerLoadsBeforeMerging(t *testing.T) {
	ctx := context.Background()
	p, err := store.Load(&store.Settings{Path: t.TempDir(), Session: t.TempDir()})
	require.NoError(t, err)
	saved := []quote.Quote{{Text: "mine", Category: "Local"}, {Text: "also mine", Category: "Local"}}
	require.NoError(t, p.SaveQuotes(saved))

	svc := New(p)
	svc.Logger = logging.Discard()
	r := svc.Reconciler(fixedSource{{Text: "remote", Category: "Server"}}, 0)
	r.Notify = func(reconcile.Status) {}
	res, err := r.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)

	stored, err := p.Quotes()
	require.NoError(t, err)
	assert.Equal(t, append(saved, quote.Quote{Text: "remote", Category: "Server"}), stored)
}
