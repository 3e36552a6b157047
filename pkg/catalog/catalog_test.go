package catalog

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planz/planz/pkg/clock"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/logger"
)

type fakeSource struct {
	events []domain.Event
	err    error
	calls  atomic.Int32
}

func (f *fakeSource) Query(ctx context.Context, conditions ...domain.Condition) ([]domain.Event, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func TestCatalog_Publish(t *testing.T) {
	c := New()
	assert.Nil(t, c.Current())

	events := []domain.Event{{ID: "1"}, {ID: "2"}}
	first := c.Publish(events, now)
	events[0].ID = "mutated"

	assert.Equal(t, uint64(1), first.Version)
	assert.Equal(t, "1", c.Current().Events[0].ID, "snapshot must not alias the input slice")

	second := c.Publish([]domain.Event{{ID: "3"}}, now)
	assert.Equal(t, uint64(2), second.Version)
	assert.Same(t, second, c.Current())
	assert.Len(t, first.Events, 2, "older snapshots stay intact")
}

func TestCatalog_Find(t *testing.T) {
	c := New()
	_, ok := c.Find("1")
	assert.False(t, ok)

	c.Publish([]domain.Event{{ID: "1", Title: "Cata de Vinos"}}, now)
	e, ok := c.Find("1")
	require.True(t, ok)
	assert.Equal(t, "Cata de Vinos", e.Title)

	_, ok = c.Find("missing")
	assert.False(t, ok)
}

func TestRefresher_Refresh(t *testing.T) {
	t.Run("publishes a new snapshot", func(t *testing.T) {
		src := &fakeSource{events: []domain.Event{{ID: "1"}}}
		c := New()
		r := NewRefresher(src, c, clock.NewFixed(now), logger.NewTestLogger(t), time.Second)

		snap, err := r.Refresh(context.Background())
		require.NoError(t, err)
		assert.Equal(t, uint64(1), snap.Version)
		assert.Equal(t, now, snap.LoadedAt)
		assert.Same(t, snap, c.Current())
	})

	t.Run("keeps previous snapshot on failure", func(t *testing.T) {
		src := &fakeSource{events: []domain.Event{{ID: "1"}}}
		c := New()
		r := NewRefresher(src, c, clock.NewFixed(now), logger.NewNoOpLogger(), time.Second)

		prev, err := r.Refresh(context.Background())
		require.NoError(t, err)

		src.err = errors.New("db down")
		_, err = r.Refresh(context.Background())
		require.Error(t, err)
		assert.Same(t, prev, c.Current())
	})
}

func TestRefresher_Start(t *testing.T) {
	t.Run("rejects invalid schedule", func(t *testing.T) {
		r := NewRefresher(&fakeSource{}, New(), clock.NewFixed(now), logger.NewNoOpLogger(), 0)
		assert.Error(t, r.Start("not a schedule"))
	})

	t.Run("runs on schedule and shuts down", func(t *testing.T) {
		src := &fakeSource{events: []domain.Event{{ID: "1"}}}
		c := New()
		r := NewRefresher(src, c, clock.NewFixed(now), logger.NewNoOpLogger(), time.Second)
		require.NoError(t, r.Start("@every 1s"))

		assert.Eventually(t, func() bool { return c.Current() != nil }, 3*time.Second, 50*time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, r.Shutdown(ctx))
	})
}
