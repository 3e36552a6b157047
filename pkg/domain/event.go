package domain

import (
	"fmt"
	"strings"
	"time"
)

// Event is one organized activity in the catalog.
type Event struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Date                string   `json:"date"`
	Time                string   `json:"time"`
	Location            string   `json:"location"`
	Zone                Zone     `json:"zone"`
	Category            Category `json:"category"`
	Image               string   `json:"image,omitempty"`
	MaxParticipants     int      `json:"maxParticipants"`
	CurrentParticipants int      `json:"currentParticipants"`
	Price               Price    `json:"price"`
}

// dateLayouts are tried in order. Layouts with a clock component are
// instants and read in the caller's zone; the rest are plain civil dates.
var dateLayouts = []struct {
	layout  string
	instant bool
}{
	{"2006-01-02", false},
	{time.RFC3339, true},
	{"2006-01-02T15:04:05", true},
	{"January 2, 2006", false},
	{"Jan 2, 2006", false},
}

// ParseEventDate parses an event date, reading timestamps in UTC.
func ParseEventDate(s string) (time.Time, error) {
	return ParseEventDateIn(s, time.UTC)
}

// ParseEventDateIn parses an event date. Plain dates come back as UTC
// midnight of that date. Timestamps are returned in loc, and a timestamp
// without an offset is taken as wall time in loc, so the civil date of the
// result is the one seen in loc.
func ParseEventDateIn(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if !l.instant {
			if t, err := time.Parse(l.layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", s)
}

// Day returns the parsed event date.
func (e Event) Day() (time.Time, error) {
	return ParseEventDate(e.Date)
}

// DayIn returns the parsed event date with timestamps read in loc.
func (e Event) DayIn(loc *time.Location) (time.Time, error) {
	return ParseEventDateIn(e.Date, loc)
}

// Validate checks the fields a catalog record needs to be filtered and
// displayed.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	if _, err := e.Day(); err != nil {
		return ValidationError{Field: "date", Message: err.Error()}
	}
	if e.MaxParticipants <= 0 {
		return ValidationError{Field: "maxParticipants", Message: "must be positive"}
	}
	if e.CurrentParticipants < 0 || e.CurrentParticipants > e.MaxParticipants {
		return ValidationError{Field: "currentParticipants", Message: "must be between 0 and maxParticipants"}
	}
	if !e.Zone.Valid() {
		return ValidationError{Field: "zone", Message: fmt.Sprintf("unknown zone %q", e.Zone)}
	}
	if !e.Category.Valid() {
		return ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", e.Category)}
	}
	return nil
}

// EventView is an event decorated with display-ready derived fields.
type EventView struct {
	Event
	DateLabel     string  `json:"dateLabel"`
	Participation float64 `json:"participation"`
	SpotsLeft     int     `json:"spotsLeft"`
	IsFull        bool    `json:"isFull"`
	IsPast        bool    `json:"isPast"`
	PriceAmount   *int    `json:"priceAmount"`
	IsFree        bool    `json:"isFree"`
	CategoryLabel string  `json:"categoryLabel"`
	ZoneLabel     string  `json:"zoneLabel"`
}

type EventSearchResponse struct {
	Events        []EventView `json:"events"`
	Total         int         `json:"total"`
	Filters       FilterState `json:"filters"`
	ActiveFilters bool        `json:"activeFilters"`
}
