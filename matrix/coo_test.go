package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCOO_AppendAndToDense(t *testing.T) {
	m, err := NewCOO(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Append(0, 1, 5))
	require.NoError(t, m.Append(1, 2, 7))
	assert.Equal(t, 2, m.NNZ())

	d := m.ToDense()
	assert.Equal(t, []float32{0, 5, 0, 0, 0, 7}, d.Data())
}

func TestCOO_AppendBounds(t *testing.T) {
	m, err := NewCOO(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, m.Append(2, 0, 1), ErrOutOfRange)
	assert.ErrorIs(t, m.Append(0, 2, 1), ErrOutOfRange)
	assert.ErrorIs(t, m.Append(-1, 0, 1), ErrOutOfRange)
}

func TestCOO_ToDenseSumsDuplicates(t *testing.T) {
	m, err := NewCOO(1, 2)
	require.NoError(t, err)

	require.NoError(t, m.Append(0, 0, 1))
	require.NoError(t, m.Append(0, 0, 2))

	d := m.ToDense()
	assert.Equal(t, []float32{3, 0}, d.Data())
}

func TestCOO_AppendRowsShiftsRowIndices(t *testing.T) {
	acc, err := NewCOO(0, 2)
	require.NoError(t, err)

	a, err := NewCOO(2, 2)
	require.NoError(t, err)
	require.NoError(t, a.Append(0, 0, 1))
	require.NoError(t, a.Append(1, 1, 2))

	b, err := NewCOO(1, 2)
	require.NoError(t, err)
	require.NoError(t, b.Append(0, 0, 3))

	require.NoError(t, acc.AppendRows(a))
	require.NoError(t, acc.AppendRows(b))

	rows, cols := acc.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)

	d := acc.ToDense()
	assert.Equal(t, []float32{
		1, 0,
		0, 2,
		3, 0,
	}, d.Data())
}

func TestCOO_AppendRowsColumnMismatch(t *testing.T) {
	acc, err := NewCOO(0, 2)
	require.NoError(t, err)
	blk, err := NewCOO(1, 3)
	require.NoError(t, err)

	assert.ErrorIs(t, acc.AppendRows(blk), ErrShapeMismatch)
}

func TestCOO_AppendRowsEmptyBlocks(t *testing.T) {
	acc, err := NewCOO(0, 4)
	require.NoError(t, err)

	empty, err := NewCOO(0, 4)
	require.NoError(t, err)
	require.NoError(t, acc.AppendRows(empty))

	blank, err := NewCOO(3, 4)
	require.NoError(t, err)
	require.NoError(t, acc.AppendRows(blank))

	rows, _ := acc.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 0, acc.NNZ())
}

func TestNewCOO_BadShape(t *testing.T) {
	_, err := NewCOO(-1, 2)
	assert.ErrorIs(t, err, ErrBadShape)
}
