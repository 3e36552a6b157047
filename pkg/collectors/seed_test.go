package collectors

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/planz/planz/pkg/domain"
)

const seedJSON = `{
  "events": [
    {"id": "4", "title": "Taller de Cocina Asiática", "date": "2026-10-17", "zone": "centro",
     "category": "gastronomia", "maxParticipants": 20, "currentParticipants": 12, "price": "$45"},
    {"id": "6", "title": "Noche de Juegos de Mesa", "date": "2026-10-20", "zone": "sur",
     "category": "entretenimiento", "maxParticipants": 16, "currentParticipants": 8, "price": "Gratis"}
  ],
  "appInfo": {"name": "PlanZ", "version": "1.0.0", "isActive": true}
}`

var seedDay = time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

func writeSeed(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSeedFile(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds empty collection", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		events, _ := NewEventRepository(db)
		infos, _ := NewAppInfoRepository(db)

		n, err := LoadSeedFile(ctx, writeSeed(t, seedJSON), seedDay, events, infos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 seeded events, got %d", n)
		}

		got, _ := events.Query(ctx)
		if len(got) != 2 || got[0].ID != "4" || got[1].Price != domain.PriceFree {
			t.Errorf("unexpected seeded events %+v", got)
		}

		active, _ := infos.Query(ctx, domain.Where("isActive", domain.OpEqual, true))
		if len(active) != 1 {
			t.Errorf("expected seeded app info, got %d", len(active))
		}

		again, err := LoadSeedFile(ctx, writeSeed(t, seedJSON), seedDay, events, infos)
		if err != nil || again != 0 {
			t.Errorf("second load = %d, %v; want 0, nil", again, err)
		}
	})

	t.Run("rejects invalid record", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		events, _ := NewEventRepository(db)

		bad := `{"events": [{"id": "x", "title": "Sin fecha", "zone": "centro", "category": "outdoor", "maxParticipants": 5}]}`
		if _, err := LoadSeedFile(ctx, writeSeed(t, bad), seedDay, events, nil); err == nil {
			t.Fatal("expected validation error")
		}
		if n, _ := events.Count(ctx); n != 0 {
			t.Errorf("expected nothing written, got %d", n)
		}
	})

	t.Run("resolves relative dates", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		events, _ := NewEventRepository(db)

		relative := `{"events": [
		  {"id": "r1", "title": "Hoy", "daysFromNow": 0, "zone": "centro", "category": "outdoor", "maxParticipants": 5},
		  {"id": "r2", "title": "Ayer", "daysFromNow": -1, "zone": "sur", "category": "outdoor", "maxParticipants": 5},
		  {"id": "r3", "title": "Fija", "date": "2027-01-02", "zone": "sur", "category": "outdoor", "maxParticipants": 5}
		]}`
		if _, err := LoadSeedFile(ctx, writeSeed(t, relative), seedDay, events, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := events.Query(ctx)
		want := []string{"2026-10-17", "2026-10-16", "2027-01-02"}
		if len(got) != len(want) {
			t.Fatalf("expected %d events, got %d", len(want), len(got))
		}
		for i, e := range got {
			if e.Date != want[i] {
				t.Errorf("event %s date = %q, want %q", e.ID, e.Date, want[i])
			}
		}
	})

	t.Run("missing file", func(t *testing.T) {
		db, cleanup := setupTestDB(t)
		defer cleanup()
		events, _ := NewEventRepository(db)

		if _, err := LoadSeedFile(ctx, "/does/not/exist.json", seedDay, events, nil); err == nil {
			t.Error("expected read error")
		}
	})
}
