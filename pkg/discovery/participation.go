package discovery

import (
	"math"
	"time"

	"github.com/planz/planz/pkg/domain"
)

// ParticipationRatio is current/max as a percentage clamped to [0, 100].
// A non-positive capacity yields 0.
func ParticipationRatio(current, max int) float64 {
	if max <= 0 || current <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(max)*100, 100)
}

type Availability struct {
	SpotsLeft int
	IsFull    bool
	IsPast    bool
}

// EventAvailability reports remaining capacity and whether the event day
// is already behind today. Events with unreadable dates are never past.
func EventAvailability(e domain.Event, today time.Time) Availability {
	spots := e.MaxParticipants - e.CurrentParticipants
	if spots < 0 {
		spots = 0
	}
	a := Availability{
		SpotsLeft: spots,
		IsFull:    e.MaxParticipants > 0 && spots == 0,
	}
	if diff, err := DaysUntil(e, today); err == nil {
		a.IsPast = diff < 0
	}
	return a
}
