package matrix

import "fmt"

// Dense is a row-major two-dimensional float32 matrix. The zero value is an
// empty 0x0 matrix; use NewDense or FromRows for anything else.
type Dense struct {
	rows, cols int
	data       []float32
}

// NewDense allocates a zeroed rows x cols matrix. Either dimension may be
// zero; negative dimensions return ErrBadShape.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}, nil
}

// FromRows builds a Dense from a slice of equally sized rows. The row data
// is copied. Rows of differing lengths return ErrShapeMismatch.
func FromRows(rows [][]float32) (*Dense, error) {
	if len(rows) == 0 {
		return &Dense{}, nil
	}
	cols := len(rows[0])
	d, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, i, len(r), cols)
		}
		copy(d.data[i*cols:(i+1)*cols], r)
	}
	return d, nil
}

// Dims returns the number of rows and columns.
func (d *Dense) Dims() (rows, cols int) { return d.rows, d.cols }

// NNZ returns the number of stored entries, which for a dense matrix is
// simply rows*cols.
func (d *Dense) NNZ() int { return d.rows * d.cols }

// At returns the element at (i, j).
func (d *Dense) At(i, j int) (float32, error) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, i, j, d.rows, d.cols)
	}
	return d.data[i*d.cols+j], nil
}

// Set stores v at (i, j).
func (d *Dense) Set(i, j int, v float32) error {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, i, j, d.rows, d.cols)
	}
	d.data[i*d.cols+j] = v
	return nil
}

// Row returns row i as a slice sharing the matrix's backing storage.
// Mutating the returned slice mutates the matrix.
func (d *Dense) Row(i int) ([]float32, error) {
	if i < 0 || i >= d.rows {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, d.rows)
	}
	return d.data[i*d.cols : (i+1)*d.cols], nil
}

// Data returns the backing row-major storage. The slice is shared, not
// copied.
func (d *Dense) Data() []float32 { return d.data }

// SetRowsAt copies all rows of src into the receiver starting at row
// rowOffset. The column counts must match and src must fit entirely within
// the receiver; every worker writing into a preallocated output buffer uses
// a disjoint row range, so concurrent SetRowsAt calls never overlap.
func (d *Dense) SetRowsAt(rowOffset int, src *Dense) error {
	if src.cols != d.cols {
		return fmt.Errorf("%w: %d columns into %d", ErrShapeMismatch, src.cols, d.cols)
	}
	if rowOffset < 0 || rowOffset+src.rows > d.rows {
		return fmt.Errorf("%w: rows [%d, %d) in %d", ErrOutOfRange, rowOffset, rowOffset+src.rows, d.rows)
	}
	copy(d.data[rowOffset*d.cols:], src.data)
	return nil
}

// Clone returns a deep copy.
func (d *Dense) Clone() *Dense {
	out := &Dense{rows: d.rows, cols: d.cols, data: make([]float32, len(d.data))}
	copy(out.data, d.data)
	return out
}
