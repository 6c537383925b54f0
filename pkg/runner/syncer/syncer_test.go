package syncer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/quotes/pkg/app"
	"tableflip.dev/quotes/pkg/logging"
	"tableflip.dev/quotes/pkg/quote"
	"tableflip.dev/quotes/pkg/store"
)

type source struct {
	quotes []quote.Quote
	err    error
}

func (s source) FetchQuotes(context.Context) ([]quote.Quote, error) {
	return quote.Clone(s.quotes), s.err
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(&store.Settings{Path: t.TempDir(), Session: t.TempDir()})
	require.NoError(t, err)
	svc := app.New(p)
	svc.Logger = logging.Discard()
	return svc
}

func TestSyncOnce(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	svc := newService(t)

	var out bytes.Buffer
	s := Sync{
		Service: svc,
		Source:  source{quotes: []quote.Quote{{Text: "sunt aut facere", Category: "Server"}}},
		Out:     &out,
	}
	require.NoError(t, s.Do(ctx))
	assert.Equal(t, "Syncing with server...\nSynced: 1 new quotes added from server.\n", out.String())

	out.Reset()
	require.NoError(t, s.Do(ctx))
	assert.Equal(t, "Syncing with server...\nSync complete: No new quotes.\n", out.String())
	assert.Len(t, svc.Snapshot(), 4)
}

func TestSyncOnceFailure(t *testing.T) {
	color.NoColor = true
	svc := newService(t)
	offline := errors.New("offline")

	var out bytes.Buffer
	s := Sync{Service: svc, Source: source{err: offline}, Out: &out}
	err := s.Do(context.Background())
	assert.ErrorIs(t, err, offline)
	assert.Equal(t, "Syncing with server...\nError syncing with server: offline\n", out.String())
	assert.Equal(t, quote.Defaults(), svc.Snapshot())
}

func TestSyncWatchStopsOnCancel(t *testing.T) {
	color.NoColor = true
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := Sync{Service: newService(t), Source: source{}, Watch: true, Out: &bytes.Buffer{}}
	assert.NoError(t, s.Do(ctx))
}

type blockingSource struct{}

func (blockingSource) FetchQuotes(ctx context.Context) ([]quote.Quote, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestSyncOnceTimeout(t *testing.T) {
	color.NoColor = true
	svc := newService(t)

	var out bytes.Buffer
	s := Sync{Service: svc, Source: blockingSource{}, Timeout: 20 * time.Millisecond, Out: &out}
	err := s.Do(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, out.String(), "Error syncing with server: context deadline exceeded")
	assert.Equal(t, quote.Defaults(), svc.Snapshot())
}
