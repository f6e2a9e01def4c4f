package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFoodNotFound is returned when no food item matches the requested
	// storage id or app-assigned foodId.
	ErrFoodNotFound = errors.New("food was not found")

	// ErrOrderNotFound is returned when no order matches the requested
	// storage id.
	ErrOrderNotFound = errors.New("order was not found")

	// ErrUserNotFound is returned when no user matches the requested email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNothingToUpdate is returned when a partial update carries no field.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN scheme matches no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
