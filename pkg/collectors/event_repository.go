package collectors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/planz/planz/pkg/domain"
)

const eventColumns = `id, title, description, date, time, location, zone, category,
	image, max_participants, current_participants, price`

// EventRepository stores the event collection in SQLite. Rows come back in
// insertion order.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) (*EventRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	repo := &EventRepository{db: db}
	if err := repo.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return repo, nil
}

func (r *EventRepository) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS events (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		time TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		zone TEXT NOT NULL,
		category TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		max_participants INTEGER NOT NULL,
		current_participants INTEGER NOT NULL DEFAULT 0,
		price TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_category ON events(category);
	CREATE INDEX IF NOT EXISTS idx_events_zone ON events(zone);
	CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
	`

	_, err := r.db.Exec(query)
	return err
}

// Create inserts event, assigning a new id when it has none.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	query := `
	INSERT INTO events (` + eventColumns + `, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	_, err := r.db.ExecContext(ctx, query, append(eventArgs(event), now, now)...)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrDuplicateEvent
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// CreateBatch upserts events in one transaction. Existing ids keep their
// position in the collection.
func (r *EventRepository) CreateBatch(ctx context.Context, events []domain.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (`+eventColumns+`, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			date = excluded.date,
			time = excluded.time,
			location = excluded.location,
			zone = excluded.zone,
			category = excluded.category,
			image = excluded.image,
			max_participants = excluded.max_participants,
			current_participants = excluded.current_participants,
			price = excluded.price,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for i := range events {
		event := &events[i]
		if event.ID == "" {
			event.ID = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx, append(eventArgs(event), now, now)...); err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	return tx.Commit()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ?`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event by id: %w", err)
	}

	return event, nil
}

// Query returns the events matching every condition, in insertion order.
// With no conditions it returns the whole collection.
func (r *EventRepository) Query(ctx context.Context, conditions ...domain.Condition) ([]domain.Event, error) {
	where, args, err := eventFields.where(domain.EventsCollection, conditions)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + eventColumns + ` FROM events` + where + ` ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	return events, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}

	query := `
	UPDATE events
	SET title = ?, description = ?, date = ?, time = ?, location = ?,
		zone = ?, category = ?, image = ?, max_participants = ?,
		current_participants = ?, price = ?, updated_at = ?
	WHERE id = ?
	`

	args := append(eventArgs(event)[1:], time.Now(), event.ID)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

func eventArgs(e *domain.Event) []interface{} {
	return []interface{}{
		e.ID,
		e.Title,
		e.Description,
		e.Date,
		e.Time,
		e.Location,
		string(e.Zone),
		string(e.Category),
		e.Image,
		e.MaxParticipants,
		e.CurrentParticipants,
		string(e.Price),
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var event domain.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Zone,
		&event.Category,
		&event.Image,
		&event.MaxParticipants,
		&event.CurrentParticipants,
		&event.Price,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
