package interfaces

import (
	"strconv"
	"time"

	"github.com/planz/planz/pkg/discovery"
	"github.com/planz/planz/pkg/domain"
	"github.com/planz/planz/pkg/metrics"
)

// searchResponse decorates a filtered result for display and records the
// evaluation.
func searchResponse(state domain.FilterState, events []domain.Event, today time.Time) *domain.EventSearchResponse {
	metrics.FilterEvaluations.WithLabelValues(strconv.Itoa(discovery.ActiveDimensions(state))).Inc()
	metrics.FilterResultSize.Observe(float64(len(events)))

	return &domain.EventSearchResponse{
		Events:        discovery.Views(events, today),
		Total:         len(events),
		Filters:       state,
		ActiveFilters: state.HasActiveFilters(),
	}
}
