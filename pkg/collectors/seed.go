package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/planz/planz/pkg/domain"
)

// SeedData is the layout of a catalog seed file.
type SeedData struct {
	Events  []SeedEvent     `json:"events"`
	AppInfo *domain.AppInfo `json:"appInfo,omitempty"`
}

// SeedEvent is an event record whose date may be given relative to the
// load day instead of as a fixed date.
type SeedEvent struct {
	domain.Event
	DaysFromNow *int `json:"daysFromNow,omitempty"`
}

// Resolve returns the event with a relative date fixed against today.
func (s SeedEvent) Resolve(today time.Time) domain.Event {
	e := s.Event
	if s.DaysFromNow != nil {
		e.Date = today.AddDate(0, 0, *s.DaysFromNow).Format("2006-01-02")
	}
	return e
}

// LoadSeedFile fills an empty event collection from the JSON file at path,
// resolving relative dates against today. It returns the number of events
// inserted; a non-empty collection is left untouched. Invalid records are
// rejected before anything is written.
func LoadSeedFile(ctx context.Context, path string, today time.Time, events domain.EventRepository, appInfo domain.AppInfoRepository) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedData
	if err := json.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	n, err := events.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	resolved := make([]domain.Event, len(seed.Events))
	for i, se := range seed.Events {
		e := se.Resolve(today)
		if err := e.Validate(); err != nil {
			return 0, fmt.Errorf("seed event %d (%s): %w", i, e.ID, err)
		}
		resolved[i] = e
	}

	if err := events.CreateBatch(ctx, resolved); err != nil {
		return 0, fmt.Errorf("failed to seed events: %w", err)
	}

	if seed.AppInfo != nil && appInfo != nil {
		if err := appInfo.Save(ctx, seed.AppInfo); err != nil {
			return 0, fmt.Errorf("failed to seed app info: %w", err)
		}
	}

	return len(resolved), nil
}
