package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-humans/internal/logger"
	"github.com/MKhiriev/go-humans/models"
)

// humanRepository is the SQL implementation of [HumanRepository] shared by
// the PostgreSQL and SQLite backends. Dialect differences (placeholders,
// error codes) live in the [DB] it was built with.
type humanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHumanRepository constructs a [HumanRepository] backed by db.
func NewHumanRepository(db *DB, logger *logger.Logger) HumanRepository {
	logger.Debug().Msg("creating human repository")
	return &humanRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all records ordered by id. An empty table yields an empty,
// non-nil slice.
func (r *humanRepository) List(ctx context.Context) ([]models.Human, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHumansQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.List").Msg("error executing query")
		return nil, r.db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	humans := make([]models.Human, 0)
	for rows.Next() {
		var human models.Human
		if err = rows.Scan(&human.ID, &human.Name, &human.Age, &human.Sex); err != nil {
			log.Err(err).Str("func", "*humanRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		humans = append(humans, human)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*humanRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return humans, nil
}

// Get returns the record with the given id or [ErrHumanNotFound].
func (r *humanRepository) Get(ctx context.Context, id int64) (models.Human, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetHumanQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Get").Msg("error building query")
		return models.Human{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	human, err := r.queryHuman(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Get").Int64("id", id).Msg("error getting human")
		return models.Human{}, err
	}

	return human, nil
}

// Create inserts a new record and returns it with the assigned id.
// NOT NULL or CHECK violations are reported as [ErrHumanConstraintViolation].
func (r *humanRepository) Create(ctx context.Context, human models.Human) (models.Human, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateHumanQuery(r.db.builder, human)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Create").Msg("error building query")
		return models.Human{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := r.queryHuman(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Create").Msg("error creating human")
		return models.Human{}, err
	}

	return created, nil
}

// Update overwrites name, age and sex of the record identified by human.ID.
func (r *humanRepository) Update(ctx context.Context, human models.Human) (models.Human, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateHumanQuery(r.db.builder, human)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Update").Msg("error building query")
		return models.Human{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := r.queryHuman(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Update").Int64("id", human.ID).Msg("error updating human")
		return models.Human{}, err
	}

	return updated, nil
}

// Delete removes the record with the given id. Zero affected rows means the
// record did not exist.
func (r *humanRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteHumanQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Delete").Int64("id", id).Msg("error executing statement")
		return r.db.classify(err, ErrExecutingStatement)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*humanRepository.Delete").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrHumanNotFound
	}

	return nil
}

// queryHuman runs a statement returning at most one human row.
func (r *humanRepository) queryHuman(ctx context.Context, query string, args ...any) (models.Human, error) {
	var human models.Human

	err := r.db.QueryRowContext(ctx, query, args...).Scan(&human.ID, &human.Name, &human.Age, &human.Sex)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Human{}, ErrHumanNotFound
	case err != nil:
		return models.Human{}, r.db.classify(err, ErrExecutingQuery)
	}

	return human, nil
}
