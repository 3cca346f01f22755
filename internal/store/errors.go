package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create or update a
	// user fails because another user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set, or when an advert references
	// an owner that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAdvertNotFound is returned when a query or update targets an advert
	// that does not exist in the database.
	ErrAdvertNotFound = errors.New("advert not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. a partial update with no SET clauses).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
