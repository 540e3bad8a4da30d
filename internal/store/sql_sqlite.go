package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/migrations"
)

// NewConnectSQLite opens a SQLite database. The "sqlite://" prefix is
// stripped, so ":memory:", plain file paths and "file:" URIs are accepted.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return openDB(ctx, dbOptions{
		driver:      "sqlite3",
		dsn:         sqliteDSN(cfg.DSN),
		dialect:     migrations.DialectSQLite,
		placeholder: sq.Question,
		classifier:  NewSQLiteErrorClassifier(),
		// SQLite serialises writers; one connection also keeps ":memory:" a
		// single database instead of one per pooled connection.
		pool: func(conn *sql.DB) { conn.SetMaxOpenConns(1) },
	}, log)
}

func sqliteDSN(dsn string) string {
	return strings.TrimPrefix(dsn, "sqlite://")
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. NOT NULL and CHECK constraint
// failures map to [ErrHumanConstraintViolation].
func (c *SQLiteErrorClassifier) Classify(err error) error {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return nil
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return ErrHumanConstraintViolation
	}

	return nil
}
