package descriptor

import "errors"

var (
	// ErrInvalidJobs is returned when the configured worker count is not
	// positive.
	ErrInvalidJobs = errors.New("descriptor: jobs must be positive")

	// ErrUnknownMode is returned when the configured execution mode is not
	// one of the supported modes. It is raised before any work is
	// dispatched.
	ErrUnknownMode = errors.New("descriptor: unknown execution mode")

	// ErrInvalidFeatures is returned when the feature count is not
	// positive.
	ErrInvalidFeatures = errors.New("descriptor: feature count must be positive")

	// ErrInvalidRows is returned when the configured rows-per-item value is
	// negative.
	ErrInvalidRows = errors.New("descriptor: rows per item must be non-negative")

	// ErrNilCompute is returned when Create is called without a compute
	// function.
	ErrNilCompute = errors.New("descriptor: nil compute function")

	// ErrBlockType is returned when a compute function produces a dense
	// block for a sparse engine or vice versa.
	ErrBlockType = errors.New("descriptor: unexpected block type")

	// ErrColumnMismatch is returned when a block's column count differs
	// from the engine's configured feature count.
	ErrColumnMismatch = errors.New("descriptor: block column count does not match feature count")

	// ErrRowCountMismatch is returned when a chunk produces a different
	// number of rows than its preallocated size promised. It signals a
	// broken rows-per-item contract, never a transient condition.
	ErrRowCountMismatch = errors.New("descriptor: produced rows do not match expected row count")
)
