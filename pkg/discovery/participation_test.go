package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planz/planz/pkg/domain"
)

func TestParticipationRatio(t *testing.T) {
	tests := []struct {
		name         string
		current, max int
		want         float64
	}{
		{"partial", 12, 20, 60},
		{"full", 10, 10, 100},
		{"over capacity clamps", 15, 10, 100},
		{"empty", 0, 10, 0},
		{"zero capacity", 5, 0, 0},
		{"negative capacity", 5, -3, 0},
		{"negative current", -2, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParticipationRatio(tt.current, tt.max)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestEventAvailability(t *testing.T) {
	t.Run("upcoming with room", func(t *testing.T) {
		a := EventAvailability(domain.Event{Date: dateIn(2), MaxParticipants: 20, CurrentParticipants: 12}, today)
		assert.Equal(t, Availability{SpotsLeft: 8}, a)
	})

	t.Run("over capacity is full", func(t *testing.T) {
		a := EventAvailability(domain.Event{Date: dateIn(2), MaxParticipants: 10, CurrentParticipants: 12}, today)
		assert.Equal(t, 0, a.SpotsLeft)
		assert.True(t, a.IsFull)
	})

	t.Run("past event", func(t *testing.T) {
		a := EventAvailability(domain.Event{Date: dateIn(-1), MaxParticipants: 10}, today)
		assert.True(t, a.IsPast)
	})

	t.Run("today is not past", func(t *testing.T) {
		a := EventAvailability(domain.Event{Date: dateIn(0), MaxParticipants: 10}, today)
		assert.False(t, a.IsPast)
	})
}

func TestView(t *testing.T) {
	v := View(sampleCatalog()[0], today)

	assert.Equal(t, "Hoy", v.DateLabel)
	assert.InDelta(t, 60.0, v.Participation, 1e-9)
	assert.Equal(t, 8, v.SpotsLeft)
	assert.Equal(t, "Gastronomía", v.CategoryLabel)
	assert.Equal(t, "Centro", v.ZoneLabel)
	if assert.NotNil(t, v.PriceAmount) {
		assert.Equal(t, 45, *v.PriceAmount)
	}
	assert.False(t, v.IsFree)
	assert.True(t, View(sampleCatalog()[2], today).IsFree)

	malformed := View(sampleCatalog()[7], today)
	assert.Nil(t, malformed.PriceAmount)
	assert.False(t, malformed.IsFree)
	assert.True(t, malformed.IsPast)
	assert.True(t, malformed.IsFull)

	assert.Len(t, Views(sampleCatalog(), today), len(sampleCatalog()))
}
