package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHumanNotFound is returned when a get, update or delete targets an id
	// that does not exist.
	ErrHumanNotFound = errors.New("human not found")

	// ErrHumanConstraintViolation is returned when the database rejects a
	// record because it violates a column constraint (e.g. NOT NULL).
	ErrHumanConstraintViolation = errors.New("human violates a storage constraint")

	// ErrUnsupportedDSN is returned when no driver can be selected for the
	// configured connection string.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a
	// row-returning DML statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// without a result set (DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan human row")

	// ErrScanningRows is returned when the driver reports an error during
	// multi-row iteration.
	ErrScanningRows = errors.New("failed to scan human rows")
)
