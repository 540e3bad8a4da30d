package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-humans/internal/config"
	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/migrations"
)

// DB is the single database handle of the process. It is opened once at
// startup and injected into every repository; database/sql hands each
// statement a pooled connection and returns it when the statement is done.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB selects a driver from cfg.DSN and opens the connection.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, err := dialectFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// dbOptions describe how one driver is opened.
type dbOptions struct {
	driver      string
	dsn         string
	dialect     migrations.Dialect
	placeholder sq.PlaceholderFormat
	classifier  ErrorClassificator
	// pool adjusts connection pool limits for the driver.
	pool func(*sql.DB)
}

// openDB opens and pings the database described by opts. The connection is
// closed again when the ping fails.
func openDB(ctx context.Context, opts dbOptions, log *logger.Logger) (*DB, error) {
	log = log.With("driver", opts.driver)

	conn, err := sql.Open(opts.driver, opts.dsn)
	if err != nil {
		log.Err(err).Str("func", "openDB").Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", opts.driver, err)
	}

	if opts.pool != nil {
		opts.pool(conn)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "openDB").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting %s database: %w", opts.driver, err)
	}
	log.Info().Str("dialect", string(opts.dialect)).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            opts.dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(opts.placeholder),
		logger:             log,
		errorClassificator: opts.classifier,
	}, nil
}

// Migrate creates or upgrades the schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify maps err to a package sentinel, falling back to fallback.
func (db *DB) classify(err error, fallback error) error {
	if db.errorClassificator != nil {
		if domainErr := db.errorClassificator.Classify(err); domainErr != nil {
			return fmt.Errorf("%w: %w", domainErr, err)
		}
	}

	return fmt.Errorf("%w: %w", fallback, err)
}

func dialectFromDSN(dsn string) (migrations.Dialect, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"),
		strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname="):
		return migrations.DialectPostgres, nil
	case dsn == ":memory:",
		strings.HasPrefix(dsn, "file:"),
		strings.HasPrefix(dsn, "sqlite://"),
		strings.HasSuffix(dsn, ".db"),
		strings.HasSuffix(dsn, ".sqlite"):
		return migrations.DialectSQLite, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}
