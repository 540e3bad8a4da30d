package store

import (
	"context"

	"github.com/MKhiriev/go-humans/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HumanRepository is the persistence contract for [models.Human] records.
//
// Every method is a single statement and therefore atomic over one row.
// Methods addressing a record by id return [ErrHumanNotFound] when it does
// not exist.
type HumanRepository interface {
	// List returns every stored record ordered by id. The result is never nil.
	List(ctx context.Context) ([]models.Human, error)

	// Get returns the record with the given id.
	Get(ctx context.Context, id int64) (models.Human, error)

	// Create inserts human (its ID is ignored) and returns the stored record
	// with the freshly assigned id.
	Create(ctx context.Context, human models.Human) (models.Human, error)

	// Update replaces name, age and sex of the record identified by human.ID
	// and returns the stored record.
	Update(ctx context.Context, human models.Human) (models.Human, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}

// ErrorClassificator translates driver-specific errors into the sentinel
// errors of this package. Classify returns nil when err carries no
// domain meaning and should be treated as an internal failure.
type ErrorClassificator interface {
	Classify(err error) error
}
