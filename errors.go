package strokeseg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyStroke is returned when a stroke without samples is segmented.
	ErrEmptyStroke = errors.New("strokeseg: empty stroke")

	// ErrIndexOutOfRange is returned when an index outside the stroke is
	// used for fitting or region growth.
	ErrIndexOutOfRange = errors.New("strokeseg: index out of range")

	// ErrNumericCorruption is returned when a fit error evaluates to NaN.
	ErrNumericCorruption = errors.New("strokeseg: fit error is not a number")

	// ErrInvariantViolation is returned when a region's fit history no
	// longer matches its claimed index set.
	ErrInvariantViolation = errors.New("strokeseg: region invariant violated")

	// ErrUnresolvableContention is returned when no index of an overlap
	// yields a finite combined fit error for both regions.
	ErrUnresolvableContention = errors.New("strokeseg: unresolvable contention")

	// ErrInvalidConfig is returned for out-of-range configuration values.
	ErrInvalidConfig = errors.New("strokeseg: invalid configuration")
)

// ContentionError describes a contention that could not be resolved.
// It carries the state of both regions for diagnosis.
type ContentionError struct {
	First   string // Dump of the first region.
	Second  string // Dump of the second region.
	Overlap []int  // The contended indices.
}

// Error implements the error interface.
func (e *ContentionError) Error() string {
	idx := make([]string, len(e.Overlap))
	for i, v := range e.Overlap {
		idx[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%v: %s vs %s over [%s]",
		ErrUnresolvableContention, e.First, e.Second, strings.Join(idx, " "))
}

// Unwrap returns ErrUnresolvableContention.
func (e *ContentionError) Unwrap() error {
	return ErrUnresolvableContention
}
