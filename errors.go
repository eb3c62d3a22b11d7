package metis

import (
	"errors"
	"fmt"
)

// Solve errors, derived solely from the METIS return status. These are the
// only errors a terminal Part* call can return.
var (
	// ErrInput indicates METIS rejected its input. Validated construction
	// should catch these before the C call; see the structural sentinels
	// below for the precise kinds.
	ErrInput = errors.New("metis: invalid input")

	// ErrMemory indicates METIS could not allocate enough memory.
	ErrMemory = errors.New("metis: out of memory")

	// ErrSolver indicates METIS returned an error of unknown meaning.
	ErrSolver = errors.New("metis: solver error")
)

// Structural sentinels, returned only by validated construction
// (NewGraph, NewMesh, MeshToDual). Each wraps ErrInput, so callers that do
// not care about the exact violation can branch on
// errors.Is(err, metis.ErrInput) alone.
var (
	// ErrBadNcon indicates a constraint count that is not strictly positive.
	ErrBadNcon = fmt.Errorf("%w: constraint count must be strictly positive", ErrInput)

	// ErrBadNparts indicates a part count that is not strictly positive.
	ErrBadNparts = fmt.Errorf("%w: part count must be strictly positive", ErrInput)

	// ErrEmptyXadj indicates an empty offsets array; even a graph with zero
	// vertices needs the leading 0 offset.
	ErrEmptyXadj = fmt.Errorf("%w: offsets array is empty", ErrInput)

	// ErrTooLarge indicates an array whose length cannot be represented in
	// Idx, METIS' index type.
	ErrTooLarge = fmt.Errorf("%w: array length overflows Idx", ErrInput)

	// ErrXadjNotSorted indicates offsets that are not monotonically
	// non-decreasing.
	ErrXadjNotSorted = fmt.Errorf("%w: offsets array is not sorted", ErrInput)

	// ErrBadLastXadj indicates a negative final offset, which can never be
	// an adjacency length.
	ErrBadLastXadj = fmt.Errorf("%w: last offset is not a valid length", ErrInput)

	// ErrAdjncyLen indicates that the adjacency array length differs from
	// the final offset.
	ErrAdjncyLen = fmt.Errorf("%w: adjacency length does not match last offset", ErrInput)

	// ErrAdjncyOutOfBounds indicates an adjacency entry outside the valid
	// index range (outside [0, nvtxs) for graphs, negative for meshes).
	ErrAdjncyOutOfBounds = fmt.Errorf("%w: adjacency index out of bounds", ErrInput)
)

// wrapStatusErr attaches the METIS entry point name to a status error.
// Unknown status codes never reach here; they panic in the C boundary.
func wrapStatusErr(fn string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fn, err)
}
