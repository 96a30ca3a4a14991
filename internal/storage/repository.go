package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/PayTrain/NASA-Space-Explorer/internal/apod"
)

// Repository caches the most recently fetched gallery snapshot in sqlite so
// the app has something to show before the first refresh completes.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS items (
  position INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  date TEXT NOT NULL,
  media_type TEXT NOT NULL,
  url TEXT NOT NULL,
  hdurl TEXT NOT NULL,
  thumbnail_url TEXT NOT NULL,
  explanation TEXT NOT NULL,
  copyright TEXT NOT NULL,
  fetched_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ReplaceSnapshot swaps the cached gallery for the given items in one
// transaction. Positions record the feed order so a later load replays the
// list exactly as it was received.
func (r *Repository) ReplaceSnapshot(ctx context.Context, items []apod.Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO items (position, title, date, media_type, url, hdurl, thumbnail_url, explanation, copyright, fetched_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for i, item := range items {
		_, err := stmt.ExecContext(
			ctx,
			i,
			item.Title,
			item.Date,
			item.MediaType,
			item.URL,
			item.HDURL,
			item.ThumbnailURL,
			item.Explanation,
			item.Copyright,
			now,
		)
		if err != nil {
			return fmt.Errorf("save item at position %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListSnapshot returns the cached gallery in its original feed order.
func (r *Repository) ListSnapshot(ctx context.Context, limit int) ([]apod.Item, error) {
	if limit < 1 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT title, date, media_type, url, hdurl, thumbnail_url, explanation, copyright
FROM items
ORDER BY position ASC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	items := make([]apod.Item, 0, limit)
	for rows.Next() {
		var item apod.Item
		if err := rows.Scan(
			&item.Title,
			&item.Date,
			&item.MediaType,
			&item.URL,
			&item.HDURL,
			&item.ThumbnailURL,
			&item.Explanation,
			&item.Copyright,
		); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return items, nil
}
