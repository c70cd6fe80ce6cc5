package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a member cannot be inserted
	// because another member already uses the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMemberNotFound is returned when no member matches the email.
	ErrMemberNotFound = errors.New("member was not found")

	// ErrProdukNotFound is returned when a query, update or delete targets a
	// product ID that does not exist.
	ErrProdukNotFound = errors.New("produk was not found")

	// ErrEmptyUpdate is returned when an update carries no column to write.
	ErrEmptyUpdate = errors.New("update has no fields")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
