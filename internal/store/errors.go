package store

import "errors"

// Sentinel errors returned by store operations to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned by every local store operation when
	// the backing SQLite database could not be opened, migrated, or written
	// to. It marks a device-level problem (storage denied, disk full), not a
	// connectivity one, and is never swallowed inside the store.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrRecordNotFound is returned when a query or update targets a ledger
	// record (identified by owner scope, record type and record id) that does
	// not exist.
	ErrRecordNotFound = errors.New("ledger record was not found")

	// ErrRecordNotSaved is returned when an upsert completes without error
	// but the number of affected rows is zero, indicating that no data was
	// actually persisted.
	ErrRecordNotSaved = errors.New("ledger record was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrRetryableStorage wraps a database failure that the server's error
	// classifier judged transient (connection loss, serialization failure,
	// deadlock). Clients may safely replay the same request.
	ErrRetryableStorage = errors.New("retryable storage failure")
)
