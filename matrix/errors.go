package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid, e.g. a
	// negative row or column count.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix bounds. Public indexers return this rather than panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands,
	// e.g. stacking blocks with different column counts.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
)
