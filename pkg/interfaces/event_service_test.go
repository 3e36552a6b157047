package interfaces

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planz/planz/pkg/catalog"
	"github.com/planz/planz/pkg/clock"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/logger"
)

var now = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func fixtureEvents() []domain.Event {
	return []domain.Event{
		{ID: "a", Title: "Gratis hoy", Date: "2026-10-17", Zone: domain.ZoneCentro, Category: domain.CategoryBienestar, MaxParticipants: 10, CurrentParticipants: 5, Price: "Gratis"},
		{ID: "b", Title: "Taller", Date: "2026-10-18", Zone: domain.ZoneNorte, Category: domain.CategoryArteCultura, MaxParticipants: 10, CurrentParticipants: 10, Price: "$45"},
		{ID: "c", Title: "Cata", Date: "2026-10-10", Zone: domain.ZoneOeste, Category: domain.CategoryGastronomia, MaxParticipants: 20, CurrentParticipants: 0, Price: "$60"},
		{ID: "d", Title: "Sin fecha", Date: "pronto", Zone: domain.ZoneSur, Category: domain.CategoryBienestar, MaxParticipants: 0, Price: "consultar"},
	}
}

type mockAppInfoRepository struct {
	queryFunc func(ctx context.Context, conditions ...domain.Condition) ([]domain.AppInfo, error)
}

func (m *mockAppInfoRepository) Save(ctx context.Context, info *domain.AppInfo) error {
	return nil
}

func (m *mockAppInfoRepository) Query(ctx context.Context, conditions ...domain.Condition) ([]domain.AppInfo, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, conditions...)
	}
	return []domain.AppInfo{}, nil
}

type fixedSessions int

func (n fixedSessions) Len() int { return int(n) }

func newEventService(t *testing.T, events []domain.Event, appInfo domain.AppInfoRepository) *EventService {
	cat := catalog.New()
	if events != nil {
		cat.Publish(events, now)
	}
	return NewEventService(cat, appInfo, fixedSessions(2), clock.NewFixed(now), logger.NewTestLogger(t))
}

func TestEventService_SearchEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("empty state returns whole catalog with views", func(t *testing.T) {
		svc := newEventService(t, fixtureEvents(), nil)

		resp, err := svc.SearchEvents(ctx, domain.FilterState{})
		require.NoError(t, err)

		assert.Equal(t, 4, resp.Total)
		assert.False(t, resp.ActiveFilters)
		assert.Equal(t, domain.NewFilterState(), resp.Filters)
		assert.Equal(t, "Hoy", resp.Events[0].DateLabel)
		assert.Equal(t, "Mañana", resp.Events[1].DateLabel)
		assert.True(t, resp.Events[1].IsFull)
	})

	t.Run("filters by price", func(t *testing.T) {
		svc := newEventService(t, fixtureEvents(), nil)
		state := domain.NewFilterState()
		state.PriceRange = domain.PriceRangeFree

		resp, err := svc.SearchEvents(ctx, state)
		require.NoError(t, err)

		require.Len(t, resp.Events, 1)
		assert.Equal(t, "a", resp.Events[0].ID)
		assert.True(t, resp.ActiveFilters)
	})

	t.Run("catalog not loaded", func(t *testing.T) {
		svc := newEventService(t, nil, nil)

		_, err := svc.SearchEvents(ctx, domain.NewFilterState())
		assert.ErrorIs(t, err, domain.ErrCatalogNotReady)
	})
}

func TestEventService_GetEvent(t *testing.T) {
	ctx := context.Background()
	svc := newEventService(t, fixtureEvents(), nil)

	view, err := svc.GetEvent(ctx, "c")
	require.NoError(t, err)
	assert.True(t, view.IsPast)
	assert.Equal(t, 20, view.SpotsLeft)
	assert.Equal(t, "10 oct", view.DateLabel)

	_, err = svc.GetEvent(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	_, err = svc.GetEvent(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestEventService_AdminStats(t *testing.T) {
	svc := newEventService(t, fixtureEvents(), nil)

	stats, err := svc.AdminStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalEvents)
	assert.Equal(t, 2, stats.UpcomingEvents)
	assert.Equal(t, 1, stats.PastEvents)
	assert.Equal(t, 1, stats.FullEvents)
	assert.Equal(t, 15, stats.TotalParticipants)
	assert.Equal(t, 40, stats.TotalCapacity)
	assert.InDelta(t, 37.5, stats.AverageFill, 1e-9)
	assert.Equal(t, 2, stats.ByCategory[domain.CategoryBienestar])
	assert.Equal(t, 1, stats.ByZone[domain.ZoneNorte])
	assert.Equal(t, 2, stats.ActiveSessions)
	assert.Equal(t, uint64(1), stats.CatalogVersion)
}

func TestEventService_AppInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("queries the active document", func(t *testing.T) {
		var got []domain.Condition
		repo := &mockAppInfoRepository{
			queryFunc: func(ctx context.Context, conditions ...domain.Condition) ([]domain.AppInfo, error) {
				got = conditions
				return []domain.AppInfo{{Name: "PlanZ", IsActive: true}}, nil
			},
		}
		svc := newEventService(t, nil, repo)

		info, err := svc.AppInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, "PlanZ", info.Name)
		assert.Equal(t, []domain.Condition{domain.Where("isActive", domain.OpEqual, true)}, got)
	})

	t.Run("none active", func(t *testing.T) {
		svc := newEventService(t, nil, &mockAppInfoRepository{})

		_, err := svc.AppInfo(ctx)
		assert.ErrorIs(t, err, domain.ErrAppInfoNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		boom := errors.New("database is locked")
		repo := &mockAppInfoRepository{
			queryFunc: func(ctx context.Context, conditions ...domain.Condition) ([]domain.AppInfo, error) {
				return nil, boom
			},
		}
		svc := newEventService(t, nil, repo)

		_, err := svc.AppInfo(ctx)
		assert.ErrorIs(t, err, boom)
	})
}
