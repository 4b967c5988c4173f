package matrix

// Block is a feature block produced for one item or one chunk of items:
// either a *Dense slab or a *COO coordinate list. The descriptor engine only
// needs the shape; everything else is type-specific.
type Block interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)
}

// Matrix is an assembled, order-correct output matrix: *Dense for dense
// accumulation or *CSR for sparse accumulation.
type Matrix interface {
	Block

	// At returns the element at (i, j). It returns ErrOutOfRange when the
	// indices are outside the matrix bounds.
	At(i, j int) (float32, error)

	// NNZ returns the number of explicitly stored entries.
	NNZ() int
}
