package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"jo3qma.com/ebay_search/internal/domain/model"
)

// PostgresWriter は出品一覧をPostgreSQLに保存します
type PostgresWriter struct {
	pool *pgxpool.Pool
}

func NewPostgresWriter(ctx context.Context, dsn string) (*PostgresWriter, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect postgres: %w", err)
	}
	return &PostgresWriter{pool: pool}, nil
}

func (w *PostgresWriter) Close() {
	if w.pool != nil {
		w.pool.Close()
	}
}

// EnsureSchema はlistingsテーブルが無ければ作成します
func (w *PostgresWriter) EnsureSchema(ctx context.Context) error {
	sql := `
	CREATE TABLE IF NOT EXISTS listings (
		id BIGSERIAL PRIMARY KEY,
		item_number BIGINT,
		title TEXT NOT NULL,
		price TEXT,
		bid_count TEXT,
		change_date TEXT,
		url TEXT NOT NULL UNIQUE,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_listings_item_number ON listings(item_number);
	`
	if _, err := w.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// Write は出品を1件ずつupsertします。URLが同じ行は上書きされます
func (w *PostgresWriter) Write(ctx context.Context, listings []*model.Listing) error {
	sql := `
	INSERT INTO listings (item_number, title, price, bid_count, change_date, url, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (url) DO UPDATE SET
		item_number = EXCLUDED.item_number,
		title = EXCLUDED.title,
		price = EXCLUDED.price,
		bid_count = EXCLUDED.bid_count,
		change_date = EXCLUDED.change_date,
		description = EXCLUDED.description
	`
	for _, l := range listings {
		if _, err := w.pool.Exec(ctx, sql,
			l.ItemNumber, l.Title, l.Price, l.BidCount, l.ChangeDate, l.URL, l.Description,
		); err != nil {
			return fmt.Errorf("failed to upsert listing %q: %w", l.URL, err)
		}
	}
	return nil
}
