package collectors

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/planz/planz/pkg/domain"
)

// AppInfoRepository stores the landing-screen copy documents.
type AppInfoRepository struct {
	db *sql.DB
}

func NewAppInfoRepository(db *sql.DB) (*AppInfoRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	repo := &AppInfoRepository{db: db}
	if err := repo.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return repo, nil
}

func (r *AppInfoRepository) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS app_info (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		version TEXT NOT NULL DEFAULT '',
		join_message TEXT NOT NULL DEFAULT '',
		join_title TEXT NOT NULL DEFAULT '',
		next_event_message TEXT NOT NULL DEFAULT '',
		sign_in_message TEXT NOT NULL DEFAULT '',
		sign_in_title TEXT NOT NULL DEFAULT '',
		what_do_we_do TEXT NOT NULL DEFAULT '',
		who_are TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_app_info_active ON app_info(is_active);
	`

	_, err := r.db.Exec(query)
	return err
}

// Save inserts info or replaces the document with the same id.
func (r *AppInfoRepository) Save(ctx context.Context, info *domain.AppInfo) error {
	if info == nil {
		return fmt.Errorf("app info cannot be nil")
	}
	if info.ID == "" {
		info.ID = uuid.NewString()
	}

	now := time.Now()
	if info.CreatedAt.IsZero() {
		info.CreatedAt = now
	}
	info.UpdatedAt = now

	query := `
	INSERT INTO app_info (
		id, name, version, join_message, join_title, next_event_message,
		sign_in_message, sign_in_title, what_do_we_do, who_are, is_active,
		created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		version = excluded.version,
		join_message = excluded.join_message,
		join_title = excluded.join_title,
		next_event_message = excluded.next_event_message,
		sign_in_message = excluded.sign_in_message,
		sign_in_title = excluded.sign_in_title,
		what_do_we_do = excluded.what_do_we_do,
		who_are = excluded.who_are,
		is_active = excluded.is_active,
		updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		info.ID,
		info.Name,
		info.Version,
		info.JoinMessage,
		info.JoinTitle,
		info.NextEventMessage,
		info.SignInMessage,
		info.SignInTitle,
		info.WhatDoWeDo,
		info.WhoAre,
		info.IsActive,
		info.CreatedAt,
		info.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save app info: %w", err)
	}

	return nil
}

func (r *AppInfoRepository) Query(ctx context.Context, conditions ...domain.Condition) ([]domain.AppInfo, error) {
	where, args, err := appInfoFields.where(domain.AppInfoCollection, conditions)
	if err != nil {
		return nil, err
	}

	query := `
	SELECT id, name, version, join_message, join_title, next_event_message,
		sign_in_message, sign_in_title, what_do_we_do, who_are, is_active,
		created_at, updated_at
	FROM app_info` + where + ` ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query app info: %w", err)
	}
	defer rows.Close()

	infos := []domain.AppInfo{}
	for rows.Next() {
		var info domain.AppInfo
		err := rows.Scan(
			&info.ID,
			&info.Name,
			&info.Version,
			&info.JoinMessage,
			&info.JoinTitle,
			&info.NextEventMessage,
			&info.SignInMessage,
			&info.SignInTitle,
			&info.WhatDoWeDo,
			&info.WhoAre,
			&info.IsActive,
			&info.CreatedAt,
			&info.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan app info: %w", err)
		}
		infos = append(infos, info)
	}

	return infos, rows.Err()
}
