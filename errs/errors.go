// Package errs defines the errors returned by the resampler packages.
//
// Every error kind is a sentinel that callers match with errors.Is. Most
// call sites wrap the sentinel with extra context:
//
//	return fmt.Errorf("%w: n_out must be positive, got %d", errs.ErrInvalidArgument, nOut)
//
// Errors are structural: the same input always fails the same way, so
// retrying a failed reduction is never useful.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedDtype reports a y (or x) dtype outside an algorithm's declared set.
	ErrUnsupportedDtype = errors.New("unsupported dtype")

	// ErrInvalidArgument reports a malformed call such as a non-positive n_out.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLengthMismatch reports explicit x and y of different lengths.
	ErrLengthMismatch = fmt.Errorf("%w: x and y lengths differ", ErrInvalidArgument)

	// ErrNonMonotonicX reports x coordinates that decrease somewhere.
	ErrNonMonotonicX = fmt.Errorf("%w: x is not monotonically non-decreasing", ErrInvalidArgument)

	// ErrUnknownXKind reports an x value that is neither positional nor explicit.
	ErrUnknownXKind = fmt.Errorf("%w: unknown x kind", ErrInvalidArgument)

	// ErrUnknownCategory reports a label that is not among the declared categories.
	ErrUnknownCategory = errors.New("label not among declared categories")

	// ErrEmptyWindow is returned by stock reductions asked to reduce zero samples.
	ErrEmptyWindow = errors.New("empty window")

	// ErrUnknownAlgorithm reports an algorithm name the engine cannot construct.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrInvalidPayload reports a payload frame that cannot be decoded.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrChecksumMismatch reports a payload whose column checksum does not match.
	ErrChecksumMismatch = fmt.Errorf("%w: checksum mismatch", ErrInvalidPayload)
)

// DtypeError names the rejected dtype and the algorithm that rejected it.
//
// It matches ErrUnsupportedDtype with errors.Is.
type DtypeError struct {
	Algorithm string // Algorithm that rejected the input
	Axis      string // "x" or "y"
	Dtype     string // Rejected dtype
}

func (e *DtypeError) Error() string {
	return fmt.Sprintf("%s: %s does not accept %s dtype %s", ErrUnsupportedDtype, e.Algorithm, e.Axis, e.Dtype)
}

func (e *DtypeError) Unwrap() error {
	return ErrUnsupportedDtype
}
