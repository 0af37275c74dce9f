package inequality

import (
	"errors"
	"fmt"
)

// ErrInvalidDiscriminant is returned for d = 0, where both closed-form
// bounds are undefined (the logarithm has no finite value).
var ErrInvalidDiscriminant = errors.New("discriminant must be nonzero")

// TableRangeError reports an arithmetic table that does not cover the
// requested truncation bound. Silently substituting a default chi or
// lambda value would corrupt the right-hand side without any signal, so
// this is surfaced as a hard failure rather than truncating or padding.
type TableRangeError struct {
	// Table names the under-populated table ("kronecker" or "von_mangoldt").
	Table string

	// K is the requested truncation bound.
	K int

	// Have is the highest index the table actually covers.
	Have int
}

// Error implements the error interface.
func (e *TableRangeError) Error() string {
	return fmt.Sprintf("%s table covers k <= %d, need k <= %d", e.Table, e.Have, e.K)
}

// IsTableRangeError returns true if the error is a table coverage failure.
// Uses errors.As to handle wrapped errors.
func IsTableRangeError(err error) bool {
	var tre *TableRangeError
	return errors.As(err, &tre)
}

// SequenceError reports an interval sequence that violates the ascending
// or disjointness preconditions. Detected only when the caller opts into
// validation via WithSequenceCheck; an unvalidated malformed sequence makes
// the minimal-prefix guarantee meaningless.
type SequenceError struct {
	// Index is the position of the offending interval.
	Index int

	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *SequenceError) Error() string {
	return fmt.Sprintf("interval %d: %s", e.Index, e.Message)
}

// IsSequenceError returns true if the error is an interval ordering failure.
// Uses errors.As to handle wrapped errors.
func IsSequenceError(err error) bool {
	var se *SequenceError
	return errors.As(err, &se)
}
