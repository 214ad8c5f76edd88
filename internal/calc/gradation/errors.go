package gradation

import "fmt"

// ValidationError reports a malformed request or sample shape.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// InsufficientDataError reports a sample with too few known points for the
// chosen interpolation method.
type InsufficientDataError struct {
	Sample string
	Points int
	Needed int
	Method Method
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%d known points, %s interpolation needs at least %d", e.Points, e.Method, e.Needed)
}

// OutOfRangeError reports a percentile the curve does not bracket. Non-fatal:
// the corresponding parameter is reported as undefined.
type OutOfRangeError struct {
	Percent float64
	Low     float64
	High    float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("percent passing %g outside curve range [%g, %g]", e.Percent, e.Low, e.High)
}
