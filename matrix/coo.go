package matrix

import "fmt"

// COO is a sparse matrix in coordinate format: parallel slices of values,
// row indices and column indices, plus an explicit shape. Entries may appear
// in any order and duplicates are allowed; ToCSR canonicalizes both.
type COO struct {
	rows, cols int
	data       []float32
	row, col   []int
}

// NewCOO creates an empty COO matrix with the given shape. A zero row count
// is the usual starting point for vertical accumulation via AppendRows.
func NewCOO(rows, cols int) (*COO, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &COO{rows: rows, cols: cols}, nil
}

// Dims returns the number of rows and columns.
func (m *COO) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries, counting duplicates.
func (m *COO) NNZ() int { return len(m.data) }

// Append stores v at (i, j). Indices must lie within the current shape.
func (m *COO) Append(i, j int, v float32) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	m.data = append(m.data, v)
	m.row = append(m.row, i)
	m.col = append(m.col, j)
	return nil
}

// AppendRows stacks blk below the receiver: every entry of blk is appended
// with its row index shifted by the receiver's current row count, and the
// receiver grows by blk's rows. Column counts must match. This is the
// row-offset bookkeeping that keeps successive items' rows from colliding
// during chunk accumulation.
func (m *COO) AppendRows(blk *COO) error {
	if blk.cols != m.cols {
		return fmt.Errorf("%w: stacking %d columns onto %d", ErrShapeMismatch, blk.cols, m.cols)
	}
	offset := m.rows
	m.data = append(m.data, blk.data...)
	m.col = append(m.col, blk.col...)
	for _, r := range blk.row {
		m.row = append(m.row, r+offset)
	}
	m.rows += blk.rows
	return nil
}

// ToDense expands the matrix into dense form, summing duplicate entries.
func (m *COO) ToDense() *Dense {
	d := &Dense{rows: m.rows, cols: m.cols, data: make([]float32, m.rows*m.cols)}
	for k, v := range m.data {
		d.data[m.row[k]*m.cols+m.col[k]] += v
	}
	return d
}
