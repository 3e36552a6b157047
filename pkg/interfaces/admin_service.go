package interfaces

import (
	"context"
	"fmt"

	"github.com/planz/planz/pkg/catalog"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/logger"
)

// CacheInvalidator drops cached catalog snapshots.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// CatalogRefresher republishes the catalog snapshot from its source.
type CatalogRefresher interface {
	Refresh(ctx context.Context) (*catalog.Snapshot, error)
}

// AdminService writes through the repositories, then drops the snapshot
// cache and republishes the catalog so searches see the change at once.
type AdminService struct {
	events    domain.EventRepository
	appInfo   domain.AppInfoRepository
	cache     CacheInvalidator
	refresher CatalogRefresher
	log       logger.Logger
}

// NewAdminService builds the admin write path. cache may be nil when no
// snapshot cache is configured.
func NewAdminService(
	events domain.EventRepository,
	appInfo domain.AppInfoRepository,
	cache CacheInvalidator,
	refresher CatalogRefresher,
	log logger.Logger,
) *AdminService {
	return &AdminService{
		events:    events,
		appInfo:   appInfo,
		cache:     cache,
		refresher: refresher,
		log:       log.WithFields(map[string]interface{}{"component": "admin"}),
	}
}

func (s *AdminService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event == nil {
		return nil, domain.ErrInvalidRequest
	}
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("event created", map[string]interface{}{"id": event.ID, "title": event.Title})
	s.republish(ctx)
	return event, nil
}

// GetStoredEvent reads an event from the store, bypassing the snapshot.
func (s *AdminService) GetStoredEvent(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.events.GetByID(ctx, id)
}

func (s *AdminService) UpdateEvent(ctx context.Context, id string, event *domain.Event) (*domain.Event, error) {
	if id == "" || event == nil {
		return nil, domain.ErrInvalidRequest
	}
	event.ID = id
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("event updated", map[string]interface{}{"id": id})
	s.republish(ctx)
	return event, nil
}

func (s *AdminService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidRequest
	}
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("event deleted", map[string]interface{}{"id": id})
	s.republish(ctx)
	return nil
}

// UpdateAppInfo saves info. Without an id it replaces the active document,
// keeping that document's id and creation time.
func (s *AdminService) UpdateAppInfo(ctx context.Context, info *domain.AppInfo) (*domain.AppInfo, error) {
	if info == nil {
		return nil, domain.ErrInvalidRequest
	}

	if info.ID == "" {
		active, err := s.appInfo.Query(ctx, domain.Where("isActive", domain.OpEqual, true))
		if err != nil {
			return nil, fmt.Errorf("failed to load app info: %w", err)
		}
		if len(active) == 0 {
			return nil, domain.ErrAppInfoNotFound
		}
		info.ID = active[0].ID
		info.CreatedAt = active[0].CreatedAt
	}

	if err := s.appInfo.Save(ctx, info); err != nil {
		return nil, err
	}

	s.log.Info("app info updated", map[string]interface{}{"id": info.ID, "active": info.IsActive})
	return info, nil
}

// republish logs its failures; the scheduled refresh retries them.
func (s *AdminService) republish(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.WithError(err).Warn("failed to invalidate snapshot cache", nil)
		}
	}
	if s.refresher == nil {
		return
	}
	if _, err := s.refresher.Refresh(ctx); err != nil {
		s.log.WithError(err).Error("catalog refresh after write failed", nil)
	}
}
