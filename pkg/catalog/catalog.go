package catalog

import (
	"sync/atomic"
	"time"

	"github.com/planz/planz/pkg/domain"
)

// Snapshot is one immutable version of the event catalog. Events must not
// be modified after publication.
type Snapshot struct {
	Version  uint64
	Events   []domain.Event
	LoadedAt time.Time
}

// Catalog holds the latest snapshot. Readers never block writers.
type Catalog struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

func New() *Catalog {
	return &Catalog{}
}

// Publish replaces the current snapshot with a copy of events.
func (c *Catalog) Publish(events []domain.Event, loadedAt time.Time) *Snapshot {
	snap := &Snapshot{
		Version:  c.version.Add(1),
		Events:   append([]domain.Event(nil), events...),
		LoadedAt: loadedAt,
	}
	c.current.Store(snap)
	return snap
}

// Current returns the latest snapshot, or nil before the first Publish.
func (c *Catalog) Current() *Snapshot {
	return c.current.Load()
}

// Find returns the event with id from the current snapshot.
func (c *Catalog) Find(id string) (domain.Event, bool) {
	snap := c.Current()
	if snap == nil {
		return domain.Event{}, false
	}
	for _, e := range snap.Events {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Event{}, false
}
