package discovery

import (
	"fmt"
	"time"

	"github.com/planz/planz/pkg/domain"
)

const day = 24 * time.Hour

var shortMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// CalendarDay maps t to UTC midnight of the civil date t shows in its own
// location. Day differences between CalendarDay values are exact multiples
// of 24h regardless of DST.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayDiff is the number of calendar days from today to date. Both the
// date-range filter and DateLabel go through it.
func DayDiff(date, today time.Time) int {
	return int(CalendarDay(date).Sub(CalendarDay(today)) / day)
}

// DaysUntil parses the event date and returns its DayDiff from today.
// Timestamps are placed on the calendar of today's location.
func DaysUntil(e domain.Event, today time.Time) (int, error) {
	d, err := e.DayIn(today.Location())
	if err != nil {
		return 0, err
	}
	return DayDiff(d, today), nil
}

// DateLabel renders how close date is: "Hoy", "Mañana", "En N días" within
// the week, otherwise a short "15 jul" style date.
func DateLabel(date, today time.Time) string {
	switch diff := DayDiff(date, today); {
	case diff == 0:
		return "Hoy"
	case diff == 1:
		return "Mañana"
	case diff >= 2 && diff < 7:
		return fmt.Sprintf("En %d días", diff)
	default:
		return fmt.Sprintf("%d %s", date.Day(), shortMonths[date.Month()-1])
	}
}

// EventDateLabel is DateLabel for an event; unparseable dates are shown
// as stored.
func EventDateLabel(e domain.Event, today time.Time) string {
	d, err := e.DayIn(today.Location())
	if err != nil {
		return e.Date
	}
	return DateLabel(d, today)
}
