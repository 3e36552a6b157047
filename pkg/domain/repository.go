package domain

import (
	"context"
)

const (
	EventsCollection  = "events"
	AppInfoCollection = "app_info"
)

// EventRepository is the Catalog Source: a document-style store queried
// by collection conditions. Results keep insertion order.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	CreateBatch(ctx context.Context, events []Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	Query(ctx context.Context, conditions ...Condition) ([]Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type AppInfoRepository interface {
	Save(ctx context.Context, info *AppInfo) error
	Query(ctx context.Context, conditions ...Condition) ([]AppInfo, error)
}

// CatalogSource yields full catalog snapshots.
type CatalogSource interface {
	Query(ctx context.Context, conditions ...Condition) ([]Event, error)
}

type EventService interface {
	SearchEvents(ctx context.Context, state FilterState) (*EventSearchResponse, error)
	GetEvent(ctx context.Context, id string) (*EventView, error)
	FilterOptions() FilterOptions
	AdminStats(ctx context.Context) (*AdminStats, error)
	AppInfo(ctx context.Context) (*AppInfo, error)
}

// SessionService manages per-screen filter sessions.
type SessionService interface {
	OpenSession(ctx context.Context) (string, FilterState, error)
	SessionEvents(ctx context.Context, id string) (*EventSearchResponse, error)
	SetFilter(ctx context.Context, id string, dim Dimension, value string) (FilterState, error)
	ClearFilters(ctx context.Context, id string) (FilterState, error)
	CloseSession(ctx context.Context, id string) error
}

// AdminService edits the catalog and app info. Every successful write is
// visible to the next search.
type AdminService interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetStoredEvent(ctx context.Context, id string) (*Event, error)
	UpdateEvent(ctx context.Context, id string, event *Event) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	UpdateAppInfo(ctx context.Context, info *AppInfo) (*AppInfo, error)
}
