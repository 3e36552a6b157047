package discovery

import (
	"time"

	"github.com/planz/planz/pkg/domain"
)

// View decorates an event with its derived display fields.
func View(e domain.Event, today time.Time) domain.EventView {
	a := EventAvailability(e, today)
	v := domain.EventView{
		Event:         e,
		DateLabel:     EventDateLabel(e, today),
		Participation: ParticipationRatio(e.CurrentParticipants, e.MaxParticipants),
		SpotsLeft:     a.SpotsLeft,
		IsFull:        a.IsFull,
		IsPast:        a.IsPast,
		IsFree:        e.Price.IsFree(),
		CategoryLabel: e.Category.Label(),
		ZoneLabel:     e.Zone.Label(),
	}
	if amount, ok := e.Price.Amount(); ok {
		v.PriceAmount = &amount
	}
	return v
}

func Views(events []domain.Event, today time.Time) []domain.EventView {
	out := make([]domain.EventView, len(events))
	for i, e := range events {
		out[i] = View(e, today)
	}
	return out
}
