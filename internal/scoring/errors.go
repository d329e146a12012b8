// Package scoring implements the contest scoring and ranking core: entry
// validation against species/age/category constraints, score validation
// under the contest's scoring scheme, deterministic per-category ranking
// with tie-aware positions, champion aggregation across categories, and
// filtering of computed results for the public view.
//
// Everything in this package is a pure, synchronous computation over the
// snapshot it is handed. No I/O, no shared mutable state; callers own
// persistence and read-consistency.
package scoring

import "fmt"

// ErrorKind identifies a typed validation failure. All kinds are
// recoverable by the caller; the core never panics and never aborts a
// whole computation over a single bad record.
type ErrorKind string

const (
	// Entry/category compatibility failures.
	KindAgeBelowMinimum       ErrorKind = "AGE_BELOW_MINIMUM"
	KindAgeOutOfCategoryRange ErrorKind = "AGE_OUT_OF_CATEGORY_RANGE"
	KindSexMismatch           ErrorKind = "SEX_MISMATCH"
	KindProductTypeMismatch   ErrorKind = "PRODUCT_TYPE_MISMATCH"

	// Score payload failures.
	KindScoreOutOfBounds   ErrorKind = "SCORE_OUT_OF_BOUNDS"
	KindPositionOutOfRange ErrorKind = "POSITION_OUT_OF_RANGE"
	KindUnknownGrade       ErrorKind = "UNKNOWN_GRADE"

	// Configuration failure: the contest references a scheme the
	// validator doesn't recognize. Surfaced distinctly so the caller can
	// alert an organizer instead of the data-entry user.
	KindUnknownScoringScheme ErrorKind = "UNKNOWN_SCORING_SCHEME"
)

// ValidationError is a typed, recoverable validation failure. Field names
// the offending entry attribute where one applies.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsConfigError reports whether the failure points at contest
// configuration rather than at the entry being validated.
func (e *ValidationError) IsConfigError() bool {
	return e.Kind == KindUnknownScoringScheme
}

func newError(kind ErrorKind, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
