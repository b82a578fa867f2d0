package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBatchNotSaved is returned when an upload transaction completes
	// without a driver error but one of its inserts affects zero rows, so
	// nothing was actually persisted.
	ErrBatchNotSaved = errors.New("upload batch was not saved")

	// ErrImageNotFound is returned when an annotation update targets an
	// image id that does not exist in the database.
	ErrImageNotFound = errors.New("image was not found")

	// ErrBugReportNotSaved is returned when a bug report INSERT affects
	// zero rows.
	ErrBugReportNotSaved = errors.New("bug report was not saved")

	// ErrImageFileNotFound is returned when a stored file path resolves
	// inside the image directory but the file itself is missing on disk.
	ErrImageFileNotFound = errors.New("image file was not found")

	// ErrPathOutsideImageDir is returned when a requested image path
	// escapes the configured image directory after resolution.
	ErrPathOutsideImageDir = errors.New("image path escapes storage directory")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
