package domain

import (
	"errors"
	"testing"
	"time"
)

func validEvent() Event {
	return Event{
		ID:                  "4",
		Title:               "Taller de Cocina Asiática",
		Description:         "Aprende a preparar platos auténticos",
		Date:                "2026-10-17",
		Time:                "19:00",
		Location:            "Escuela Gastronómica",
		Zone:                ZoneCentro,
		Category:            CategoryGastronomia,
		MaxParticipants:     20,
		CurrentParticipants: 12,
		Price:               "$45",
	}
}

func TestParseEventDateIn(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		in      string
		wantDay int
	}{
		{"2026-10-18T02:00:00Z", 17},
		{"2026-10-17T22:00:00", 17},
		{"2026-10-17", 17},
		{"2026-10-18", 18},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEventDateIn(tt.in, bogota)
			if err != nil {
				t.Fatalf("ParseEventDateIn(%q) error = %v", tt.in, err)
			}
			if got.Day() != tt.wantDay {
				t.Errorf("ParseEventDateIn(%q) day = %d, want %d", tt.in, got.Day(), tt.wantDay)
			}
		})
	}

	if got, _ := ParseEventDateIn("2026-10-17T22:00:00", bogota); got.Location() != bogota {
		t.Errorf("timestamp location = %v, want %v", got.Location(), bogota)
	}
}

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-10-17", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)},
		{" 2026-10-17 ", time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)},
		{"2026-10-17T20:30:00", time.Date(2026, 10, 17, 20, 30, 0, 0, time.UTC)},
		{"2026-10-17T20:30:00Z", time.Date(2026, 10, 17, 20, 30, 0, 0, time.UTC)},
		{"July 15, 2024", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)},
		{"Jul 15, 2024", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEventDate(tt.in)
			if err != nil {
				t.Fatalf("ParseEventDate(%q) error = %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseEventDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "pronto", "17/10/2026"} {
		if _, err := ParseEventDate(bad); err == nil {
			t.Errorf("ParseEventDate(%q) expected error", bad)
		}
	}
}

func TestEventValidate(t *testing.T) {
	if err := validEvent().Validate(); err != nil {
		t.Fatalf("valid event: %v", err)
	}

	tests := []struct {
		field  string
		mutate func(e *Event)
	}{
		{"title", func(e *Event) { e.Title = "  " }},
		{"date", func(e *Event) { e.Date = "mañana" }},
		{"maxParticipants", func(e *Event) { e.MaxParticipants = 0 }},
		{"currentParticipants", func(e *Event) { e.CurrentParticipants = 21 }},
		{"currentParticipants", func(e *Event) { e.CurrentParticipants = -1 }},
		{"zone", func(e *Event) { e.Zone = "luna" }},
		{"category", func(e *Event) { e.Category = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)

			var verr ValidationError
			if err := e.Validate(); !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %s, want %s", verr.Field, tt.field)
			}
		})
	}
}

func TestPriceAmount(t *testing.T) {
	tests := []struct {
		price  Price
		want   int
		wantOK bool
	}{
		{"Gratis", 0, true},
		{"gratis", 0, true},
		{"Free", 0, true},
		{"$0", 0, true},
		{"$45", 45, true},
		{"$ 60", 60, true},
		{"€25", 25, true},
		{"$45.50", 45, true},
		{"120", 120, true},
		{"precio a consultar", 0, false},
		{"$", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.price), func(t *testing.T) {
			got, ok := tt.price.Amount()
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Amount() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if !PriceFree.IsFree() {
		t.Error("PriceFree should be free")
	}
	if Price("consultar").IsFree() {
		t.Error("unparseable price should not be free")
	}
}
