package matrix

import (
	"fmt"
	"sort"
)

// CSR is a sparse matrix in compressed sparse row form, the canonical output
// format for sparse descriptors: rowPtr[i]:rowPtr[i+1] delimits row i's
// entries in data/colIdx, column indices are sorted within each row, and no
// coordinate appears twice. Row-wise access is O(1) per row, which is what
// downstream row-oriented linear algebra wants.
//
// CSR values are built by COO.ToCSR; the zero value is an empty 0x0 matrix.
type CSR struct {
	rows, cols int
	data       []float32
	colIdx     []int
	rowPtr     []int // length rows+1
}

// ToCSR converts the matrix to canonical CSR form. Entries are bucketed by
// row, sorted by column within each row, and duplicate coordinates are
// summed, mirroring the canonicalization scipy performs on tocsr().
func (m *COO) ToCSR() *CSR {
	// Bucket entries by row.
	counts := make([]int, m.rows+1)
	for _, r := range m.row {
		counts[r+1]++
	}
	for i := 0; i < m.rows; i++ {
		counts[i+1] += counts[i]
	}

	nnz := len(m.data)
	data := make([]float32, nnz)
	colIdx := make([]int, nnz)
	next := make([]int, m.rows)
	for k := 0; k < nnz; k++ {
		r := m.row[k]
		p := counts[r] + next[r]
		next[r]++
		data[p] = m.data[k]
		colIdx[p] = m.col[k]
	}

	// Sort each row by column, then collapse duplicates in place.
	out := &CSR{
		rows:   m.rows,
		cols:   m.cols,
		data:   data[:0],
		colIdx: colIdx[:0],
		rowPtr: make([]int, m.rows+1),
	}
	w := 0
	for i := 0; i < m.rows; i++ {
		lo, hi := counts[i], counts[i+1]
		seg := &csrRowSeg{data: data[lo:hi], col: colIdx[lo:hi]}
		sort.Sort(seg)
		for k := lo; k < hi; k++ {
			if k > lo && colIdx[k] == colIdx[w-1] {
				data[w-1] += data[k]
				continue
			}
			data[w] = data[k]
			colIdx[w] = colIdx[k]
			w++
		}
		out.rowPtr[i+1] = w
	}
	out.data = data[:w]
	out.colIdx = colIdx[:w]
	return out
}

// csrRowSeg sorts one row's entries by column, carrying values along.
type csrRowSeg struct {
	data []float32
	col  []int
}

func (s *csrRowSeg) Len() int           { return len(s.col) }
func (s *csrRowSeg) Less(i, j int) bool { return s.col[i] < s.col[j] }
func (s *csrRowSeg) Swap(i, j int) {
	s.col[i], s.col[j] = s.col[j], s.col[i]
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

// Dims returns the number of rows and columns.
func (m *CSR) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// At returns the element at (i, j), zero when the coordinate is not stored.
func (m *CSR) At(i, j int) (float32, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfRange, i, j, m.rows, m.cols)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols := m.colIdx[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.data[lo+k], nil
	}
	return 0, nil
}

// RowNNZ returns the number of stored entries in row i.
func (m *CSR) RowNNZ(i int) (int, error) {
	if i < 0 || i >= m.rows {
		return 0, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, m.rows)
	}
	return m.rowPtr[i+1] - m.rowPtr[i], nil
}

// Row returns the stored column indices and values of row i. Both slices
// share the matrix's backing storage.
func (m *CSR) Row(i int) (cols []int, values []float32, err error) {
	if i < 0 || i >= m.rows {
		return nil, nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, i, m.rows)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	return m.colIdx[lo:hi], m.data[lo:hi], nil
}

// ToDense expands the matrix into dense form.
func (m *CSR) ToDense() *Dense {
	d := &Dense{rows: m.rows, cols: m.cols, data: make([]float32, m.rows*m.cols)}
	for i := 0; i < m.rows; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			d.data[i*m.cols+m.colIdx[k]] = m.data[k]
		}
	}
	return d
}
