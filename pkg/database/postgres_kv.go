package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/uptrace/bun/driver/pgdriver"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_create_kv",
			Up: []string{`
				CREATE TABLE IF NOT EXISTS kv (
					key TEXT PRIMARY KEY,
					payload JSONB NOT NULL
				)`,
			},
			Down: []string{`DROP TABLE kv`},
		},
	},
}

// PostgresKV stores collection payloads in a single key/payload table. Used
// when a connection endpoint is configured instead of a local data dir.
type PostgresKV struct {
	db *sql.DB
}

func NewPostgresKV(url string) (*PostgresKV, error) {
	db := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(url)))

	if _, err := migrate.Exec(db, "postgres", migrations, migrate.Up); err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return &PostgresKV{db: db}, nil
}

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT payload FROM kv WHERE key = $1`

	var payload []byte
	err := p.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("fetching %s: %w", key, err)
	}
	return payload, true, nil
}

func (p *PostgresKV) Set(ctx context.Context, key string, payload []byte) error {
	const query = `
		INSERT INTO kv (key, payload)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET payload = EXCLUDED.payload
	`

	if _, err := p.db.ExecContext(ctx, query, key, payload); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
