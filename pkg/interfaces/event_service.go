package interfaces

import (
	"context"
	"fmt"

	"github.com/planz/planz/pkg/catalog"
	"github.com/planz/planz/pkg/clock"
	"github.com/planz/planz/pkg/discovery"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/logger"
)

// sessionCounter reports how many browsing sessions are open.
type sessionCounter interface {
	Len() int
}

type EventService struct {
	catalog  *catalog.Catalog
	appInfo  domain.AppInfoRepository
	sessions sessionCounter
	clock    clock.Clock
	log      logger.Logger
}

func NewEventService(
	catalog *catalog.Catalog,
	appInfo domain.AppInfoRepository,
	sessions sessionCounter,
	clk clock.Clock,
	log logger.Logger,
) *EventService {
	return &EventService{
		catalog:  catalog,
		appInfo:  appInfo,
		sessions: sessions,
		clock:    clk,
		log:      log,
	}
}

// SearchEvents runs a one-shot filter over the current snapshot.
func (s *EventService) SearchEvents(ctx context.Context, state domain.FilterState) (*domain.EventSearchResponse, error) {
	snap := s.catalog.Current()
	if snap == nil {
		return nil, domain.ErrCatalogNotReady
	}

	state = state.Normalized()
	today := s.clock.Now()
	events := snap.Events
	if !state.IsEmpty() {
		events = discovery.Filter(events, state, today)
	}

	s.log.Debug("events filtered", map[string]interface{}{
		"query":   state.Query(),
		"active":  discovery.ActiveDimensions(state),
		"matched": len(events),
		"version": snap.Version,
	})

	return searchResponse(state, events, today), nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*domain.EventView, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}
	if s.catalog.Current() == nil {
		return nil, domain.ErrCatalogNotReady
	}

	event, ok := s.catalog.Find(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	view := discovery.View(event, s.clock.Now())
	return &view, nil
}

func (s *EventService) FilterOptions() domain.FilterOptions {
	return domain.NewFilterOptions()
}

// AdminStats summarizes the current snapshot. Events whose date cannot be
// read count as neither upcoming nor past.
func (s *EventService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	snap := s.catalog.Current()
	if snap == nil {
		return nil, domain.ErrCatalogNotReady
	}

	today := s.clock.Now()
	stats := &domain.AdminStats{
		TotalEvents:    len(snap.Events),
		ByCategory:     make(map[domain.Category]int),
		ByZone:         make(map[domain.Zone]int),
		CatalogVersion: snap.Version,
	}

	var fillSum float64
	for _, e := range snap.Events {
		stats.ByCategory[e.Category]++
		stats.ByZone[e.Zone]++
		stats.TotalParticipants += e.CurrentParticipants
		stats.TotalCapacity += e.MaxParticipants
		fillSum += discovery.ParticipationRatio(e.CurrentParticipants, e.MaxParticipants)

		a := discovery.EventAvailability(e, today)
		if a.IsFull {
			stats.FullEvents++
		}
		if _, err := e.Day(); err != nil {
			continue
		}
		if a.IsPast {
			stats.PastEvents++
		} else {
			stats.UpcomingEvents++
		}
	}

	if len(snap.Events) > 0 {
		stats.AverageFill = fillSum / float64(len(snap.Events))
	}
	if s.sessions != nil {
		stats.ActiveSessions = s.sessions.Len()
	}

	return stats, nil
}

// AppInfo returns the first active app info document.
func (s *EventService) AppInfo(ctx context.Context) (*domain.AppInfo, error) {
	if s.appInfo == nil {
		return nil, domain.ErrAppInfoNotFound
	}

	infos, err := s.appInfo.Query(ctx, domain.Where("isActive", domain.OpEqual, true))
	if err != nil {
		return nil, fmt.Errorf("failed to load app info: %w", err)
	}
	if len(infos) == 0 {
		return nil, domain.ErrAppInfoNotFound
	}

	return &infos[0], nil
}
