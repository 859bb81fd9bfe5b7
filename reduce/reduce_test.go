package reduce_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/framesync/featmat"
	"github.com/katalvlaran/framesync/reduce"
)

// span builds a full-width span over a 2×4 fixture:
// row 0 = [1 2 3 4], row 1 = [4 4 4 4].
func span(t *testing.T) *featmat.Span {
	t.Helper()
	m, err := featmat.FromRows([][]float64{
		{1, 2, 3, 4},
		{4, 4, 4, 4},
	})
	require.NoError(t, err)
	s, err := m.ColumnSpan(0, 4)
	require.NoError(t, err)

	return s
}

// TestMean computes the per-row arithmetic mean.
func TestMean(t *testing.T) {
	out, err := reduce.Mean(span(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 4}, out)
}

// TestMedian_EvenCount averages the two middle values.
func TestMedian_EvenCount(t *testing.T) {
	out, err := reduce.Median(span(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 4}, out)
}

// TestMedian_OddIdentical returns the repeated value itself.
func TestMedian_OddIdentical(t *testing.T) {
	m, err := featmat.FromRows([][]float64{{7, 7, 7}})
	require.NoError(t, err)
	s, err := m.ColumnSpan(0, 3)
	require.NoError(t, err)

	out, err := reduce.Median(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, out)
}

// TestMedian_DoesNotReorderParent verifies the median's internal sort
// works on a copy, leaving span data untouched.
func TestMedian_DoesNotReorderParent(t *testing.T) {
	m, err := featmat.FromRows([][]float64{{3, 1, 2}})
	require.NoError(t, err)
	s, err := m.ColumnSpan(0, 3)
	require.NoError(t, err)

	out, err := reduce.Median(s)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, out)

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, row, "parent data must stay unsorted")
}

// TestMaxMin pick the per-row extrema.
func TestMaxMin(t *testing.T) {
	out, err := reduce.Max(span(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, out)

	out, err = reduce.Min(span(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, out)
}

// TestSum computes per-row totals.
func TestSum(t *testing.T) {
	out, err := reduce.Sum(span(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 16}, out)
}

// TestRMS computes the per-row root-mean-square.
func TestRMS(t *testing.T) {
	m, err := featmat.FromRows([][]float64{{3, 4, 0, 0}})
	require.NoError(t, err)
	s, err := m.ColumnSpan(0, 4)
	require.NoError(t, err)

	out, err := reduce.RMS(s)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, math.Sqrt(25.0/4.0), out[0], 1e-12)
}

// TestFirstLast pick the boundary columns of the segment.
func TestFirstLast(t *testing.T) {
	out, err := reduce.First(span(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, out)

	out, err = reduce.Last(span(t))
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4}, out)
}

// TestSingletonSegment verifies every built-in is the identity on a
// one-frame segment.
func TestSingletonSegment(t *testing.T) {
	m, err := featmat.FromRows([][]float64{{5}, {-2}})
	require.NoError(t, err)
	s, err := m.ColumnSpan(0, 1)
	require.NoError(t, err)

	for name, fn := range map[string]reduce.Func{
		"Mean":   reduce.Mean,
		"Median": reduce.Median,
		"Max":    reduce.Max,
		"Min":    reduce.Min,
		"Sum":    reduce.Sum,
		"First":  reduce.First,
		"Last":   reduce.Last,
	} {
		out, err := fn(s)
		require.NoError(t, err, name)
		assert.Equal(t, []float64{5, -2}, out, name)
	}
}
