package discovery

import (
	"slices"
	"sync"
	"time"

	"github.com/planz/planz/pkg/catalog"
	"github.com/planz/planz/pkg/domain"
)

type memoKey struct {
	version uint64
	state   domain.FilterState
	day     time.Time
}

// Controller owns the filter state of one browsing session. Every update
// swaps in a whole new FilterState, so readers never observe a partial
// clear. Results is a pure function of (snapshot, state, today) and is
// memoized on those inputs.
type Controller struct {
	mu     sync.Mutex
	state  domain.FilterState
	memo   memoKey
	result []domain.Event
	cached bool
}

func NewController() *Controller {
	return &Controller{state: domain.NewFilterState()}
}

func (c *Controller) State() domain.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Set replaces one dimension and returns the new state.
func (c *Controller) Set(dim domain.Dimension, value string) (domain.FilterState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.state.With(dim, value)
	if err != nil {
		return c.state, err
	}
	c.state = next
	return next, nil
}

func (c *Controller) SetSearch(query string) domain.FilterState {
	// DimensionSearch is always known to With.
	state, _ := c.Set(domain.DimensionSearch, query)
	return state
}

// ClearAll resets every dimension and the search text in one update.
func (c *Controller) ClearAll() domain.FilterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.Cleared()
	return c.state
}

// Results filters snap with the current state. A nil snapshot yields an
// empty result.
func (c *Controller) Results(snap *catalog.Snapshot, today time.Time) (domain.FilterState, []domain.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if snap == nil {
		return c.state, []domain.Event{}
	}

	key := memoKey{
		version: snap.Version,
		state:   c.state.Normalized(),
		day:     CalendarDay(today),
	}
	if !c.cached || key != c.memo {
		c.result = Filter(snap.Events, c.state, today)
		c.memo = key
		c.cached = true
	}
	return c.state, slices.Clone(c.result)
}
