package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense(t *testing.T) {
	d, err := NewDense(3, 4)
	require.NoError(t, err)

	rows, cols := d.Dims()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 12, d.NNZ())

	v, err := d.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(0), v)
}

func TestNewDense_EmptyShapes(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 0}, {0, 5}, {5, 0}} {
		d, err := NewDense(tc.r, tc.c)
		require.NoError(t, err)
		rows, cols := d.Dims()
		assert.Equal(t, tc.r, rows)
		assert.Equal(t, tc.c, cols)
	}
}

func TestNewDense_BadShape(t *testing.T) {
	_, err := NewDense(-1, 4)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = NewDense(2, -3)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestFromRows(t *testing.T) {
	d, err := FromRows([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	rows, cols := d.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, d.Data())
}

func TestFromRows_RaggedRows(t *testing.T) {
	_, err := FromRows([][]float32{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDense_AtSetBounds(t *testing.T) {
	d, err := NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 1, 7))
	v, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = d.At(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.ErrorIs(t, d.Set(-1, 0, 1), ErrOutOfRange)
}

func TestDense_SetRowsAt(t *testing.T) {
	dst, err := NewDense(4, 2)
	require.NoError(t, err)
	src, err := FromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	require.NoError(t, dst.SetRowsAt(1, src))
	assert.Equal(t, []float32{0, 0, 1, 2, 3, 4, 0, 0}, dst.Data())
}

func TestDense_SetRowsAt_Errors(t *testing.T) {
	dst, err := NewDense(2, 2)
	require.NoError(t, err)

	wide, err := NewDense(1, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, dst.SetRowsAt(0, wide), ErrShapeMismatch)

	tall, err := NewDense(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, dst.SetRowsAt(1, tall), ErrOutOfRange)
	assert.ErrorIs(t, dst.SetRowsAt(-1, tall), ErrOutOfRange)
}

func TestDense_RowSharesStorage(t *testing.T) {
	d, err := NewDense(2, 3)
	require.NoError(t, err)

	row, err := d.Row(1)
	require.NoError(t, err)
	row[2] = 9

	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(9), v)

	_, err = d.Row(5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDense_Clone(t *testing.T) {
	d, err := FromRows([][]float32{{1, 2}, {3, 4}})
	require.NoError(t, err)

	c := d.Clone()
	require.NoError(t, c.Set(0, 0, 99))

	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v, "clone must not alias the original")
}
