package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/migrations"
)

const (
	postgresMaxOpenConns = 10
	postgresMaxIdleConns = 4
)

// NewConnectPostgres opens a PostgreSQL database through the pgx stdlib
// driver. cfg.DSN is passed to pgx unchanged, so both URL and keyword/value
// forms work.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, dbOptions{
		driver:      "pgx",
		dsn:         cfg.DSN,
		dialect:     migrations.DialectPostgres,
		placeholder: sq.Dollar,
		classifier:  NewPostgresErrorClassifier(),
		pool: func(conn *sql.DB) {
			conn.SetMaxOpenConns(postgresMaxOpenConns)
			conn.SetMaxIdleConns(postgresMaxIdleConns)
		},
	}, log)
}
