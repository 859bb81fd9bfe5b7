package featmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framesync/featmat"
)

// testMatrix returns the 2×6 fixture used across span tests:
// row 0 = [0 2 4 0 2 4], row 1 = [1 1 1 3 3 3].
func testMatrix(t *testing.T) *featmat.Matrix {
	t.Helper()
	m, err := featmat.FromRows([][]float64{
		{0, 2, 4, 0, 2, 4},
		{1, 1, 1, 3, 3, 3},
	})
	require.NoError(t, err)

	return m
}

// TestColumnSpan_Bounds verifies range validation of span construction.
func TestColumnSpan_Bounds(t *testing.T) {
	m := testMatrix(t)

	_, err := m.ColumnSpan(-1, 2)
	assert.ErrorIs(t, err, featmat.ErrOutOfRange, "negative lo must error")
	_, err = m.ColumnSpan(0, 7)
	assert.ErrorIs(t, err, featmat.ErrOutOfRange, "hi past t must error")
	_, err = m.ColumnSpan(3, 3)
	assert.ErrorIs(t, err, featmat.ErrOutOfRange, "empty span must error")
	_, err = m.ColumnSpan(4, 2)
	assert.ErrorIs(t, err, featmat.ErrOutOfRange, "inverted span must error")
}

// TestSpan_DimsAndBounds verifies the view reports its window correctly.
func TestSpan_DimsAndBounds(t *testing.T) {
	m := testMatrix(t)
	s, err := m.ColumnSpan(2, 5)
	require.NoError(t, err)

	d, k := s.Dims()
	assert.Equal(t, 2, d)
	assert.Equal(t, 3, k)

	lo, hi := s.Bounds()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 5, hi)
}

// TestSpan_RowIsParentSubslice verifies Row exposes the parent's data
// for the covered columns, relative to the span.
func TestSpan_RowIsParentSubslice(t *testing.T) {
	m := testMatrix(t)
	s, err := m.ColumnSpan(2, 5)
	require.NoError(t, err)

	row0, err := s.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 2}, row0)

	row1, err := s.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 3}, row1)

	_, err = s.Row(2)
	assert.ErrorIs(t, err, featmat.ErrOutOfRange)
}

// TestSpan_RowSeesParentMutation verifies the span is a live view, not
// a copy.
func TestSpan_RowSeesParentMutation(t *testing.T) {
	m := testMatrix(t)
	s, err := m.ColumnSpan(0, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 99))
	row, err := s.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 99, 4}, row)
}

// TestSpan_AtAndColumn verifies span-relative indexing.
func TestSpan_AtAndColumn(t *testing.T) {
	m := testMatrix(t)
	s, err := m.ColumnSpan(3, 6)
	require.NoError(t, err)

	v, err := s.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "span column 0 is parent column 3")

	col, err := s.Column(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 3}, col, "span column 2 is parent column 5")

	_, err = s.At(0, 3)
	assert.ErrorIs(t, err, featmat.ErrOutOfRange)
	_, err = s.Column(-1)
	assert.ErrorIs(t, err, featmat.ErrOutOfRange)
}
