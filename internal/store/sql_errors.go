package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories which domain error a failed statement maps to.
type ErrorClassification int

const (
	// Unclassified is the default for unrecognised errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation indicates a duplicate value in a unique column.
	UniqueViolation

	// IntegrityViolation indicates any other constraint failure
	// (not null, check, foreign key).
	IntegrityViolation

	// ConnectionFailure indicates the database could not be reached.
	ConnectionFailure
)

// String implements [fmt.Stringer] for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case IntegrityViolation:
		return "integrity_violation"
	case ConnectionFailure:
		return "connection_failure"
	default:
		return "unclassified"
	}
}
