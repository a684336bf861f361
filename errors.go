package bucketize

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBucketCount is returned when the requested bucket count is not positive.
	ErrInvalidBucketCount = errors.New("bucket count must be positive")

	// ErrNotFitted is returned when a model is requested from an unfitted bucketizer.
	ErrNotFitted = errors.New("bucketizer not fitted")

	// ErrUnknownStrategy is returned when restoring a model with an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("unknown bucketizer strategy")
)

// ErrInsufficientData indicates fewer scores than requested buckets.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInsufficientData struct {
	Buckets int
	Count   int
	cause   error
}

func (e *ErrInsufficientData) Error() string {
	return fmt.Sprintf("insufficient data: %d scores for %d buckets", e.Count, e.Buckets)
}

func (e *ErrInsufficientData) Unwrap() error { return e.cause }
