package interfaces

import (
	"context"

	"github.com/planz/planz/pkg/catalog"
	"github.com/planz/planz/pkg/clock"
	"github.com/planz/planz/pkg/discovery"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/logger"
	"github.com/planz/planz/pkg/metrics"
)

// SessionService exposes browsing sessions, each with its own filter
// controller over the shared catalog.
type SessionService struct {
	sessions *discovery.Sessions
	catalog  *catalog.Catalog
	clock    clock.Clock
	log      logger.Logger
}

func NewSessionService(sessions *discovery.Sessions, catalog *catalog.Catalog, clk clock.Clock, log logger.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		catalog:  catalog,
		clock:    clk,
		log:      log,
	}
}

func (s *SessionService) OpenSession(ctx context.Context) (string, domain.FilterState, error) {
	id, ctrl := s.sessions.Open()
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))

	s.log.Debug("session opened", map[string]interface{}{"session_id": id})
	return id, ctrl.State(), nil
}

func (s *SessionService) SessionEvents(ctx context.Context, id string) (*domain.EventSearchResponse, error) {
	ctrl, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}

	snap := s.catalog.Current()
	if snap == nil {
		return nil, domain.ErrCatalogNotReady
	}

	today := s.clock.Now()
	state, events := ctrl.Results(snap, today)
	return searchResponse(state, events, today), nil
}

func (s *SessionService) SetFilter(ctx context.Context, id string, dim domain.Dimension, value string) (domain.FilterState, error) {
	ctrl, err := s.sessions.Get(id)
	if err != nil {
		return domain.FilterState{}, err
	}
	return ctrl.Set(dim, value)
}

// ClearFilters resets every dimension and the search text at once.
func (s *SessionService) ClearFilters(ctx context.Context, id string) (domain.FilterState, error) {
	ctrl, err := s.sessions.Get(id)
	if err != nil {
		return domain.FilterState{}, err
	}
	return ctrl.ClearAll(), nil
}

func (s *SessionService) CloseSession(ctx context.Context, id string) error {
	if err := s.sessions.Close(id); err != nil {
		return err
	}
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))

	s.log.Debug("session closed", map[string]interface{}{"session_id": id})
	return nil
}

// Sweep drops idle sessions.
func (s *SessionService) Sweep() int {
	removed := s.sessions.Sweep()
	metrics.ActiveSessions.Set(float64(s.sessions.Len()))
	if removed > 0 {
		s.log.Info("idle sessions dropped", map[string]interface{}{"removed": removed})
	}
	return removed
}
