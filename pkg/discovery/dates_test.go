package discovery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/planz/planz/pkg/domain"
)

func TestDayDiff(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"same day earlier hour", time.Date(2026, 10, 17, 0, 1, 0, 0, time.UTC), 0},
		{"same day later hour", time.Date(2026, 10, 17, 23, 59, 0, 0, time.UTC), 0},
		{"tomorrow just after midnight", time.Date(2026, 10, 18, 0, 0, 1, 0, time.UTC), 1},
		{"yesterday", time.Date(2026, 10, 16, 23, 0, 0, 0, time.UTC), -1},
		{"across a month", time.Date(2026, 11, 16, 0, 0, 0, 0, time.UTC), 30},
		{"across a year", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 76},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayDiff(tt.date, today))
		})
	}
}

func TestDayDiff_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	before := time.Date(2026, 10, 24, 12, 0, 0, 0, loc)
	after := time.Date(2026, 10, 26, 0, 30, 0, 0, loc)
	assert.Equal(t, 2, DayDiff(after, before))
}

func TestDateLabel(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "Hoy"},
		{1, "Mañana"},
		{2, "En 2 días"},
		{6, "En 6 días"},
		{7, "24 oct"},
		{-1, "16 oct"},
		{77, "2 ene"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DateLabel(today.AddDate(0, 0, tt.days), today))
		})
	}
}

func TestEventDateLabel(t *testing.T) {
	assert.Equal(t, "Mañana", EventDateLabel(domain.Event{Date: "2026-10-18"}, today))
	assert.Equal(t, "15 jul", EventDateLabel(domain.Event{Date: "July 15, 2024"}, today))
	assert.Equal(t, "pronto", EventDateLabel(domain.Event{Date: "pronto"}, today))
}

func TestDateLabelAgreesWithTodayFilter(t *testing.T) {
	todayFilter := state(func(s *domain.FilterState) { s.DateRange = domain.DateRangeToday })
	for hour := 0; hour < 24; hour++ {
		now := time.Date(2026, 10, 17, hour, 30, 0, 0, time.UTC)
		e := domain.Event{ID: "x", Date: "2026-10-17"}

		assert.Equal(t, "Hoy", EventDateLabel(e, now), "hour %d", hour)
		assert.True(t, passes(e, todayFilter, now), "hour %d", hour)
	}
}

func TestTimestampsUseTodaysZone(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	now := time.Date(2026, 10, 17, 21, 0, 0, 0, bogota)
	todayFilter := state(func(s *domain.FilterState) { s.DateRange = domain.DateRangeToday })

	tests := []struct {
		name  string
		date  string
		label string
		today bool
	}{
		{"utc instant that is tonight in bogota", "2026-10-18T02:00:00Z", "Hoy", true},
		{"offset instant that is tonight in bogota", "2026-10-17T23:30:00-05:00", "Hoy", true},
		{"wall time without offset", "2026-10-17T22:00:00", "Hoy", true},
		{"utc instant after local midnight", "2026-10-18T05:30:00Z", "Mañana", false},
		{"plain date keeps its day", "2026-10-17", "Hoy", true},
		{"plain date tomorrow", "2026-10-18", "Mañana", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := domain.Event{ID: "x", Date: tt.date}
			assert.Equal(t, tt.label, EventDateLabel(e, now))
			assert.Equal(t, tt.today, passes(e, todayFilter, now))
		})
	}
}
