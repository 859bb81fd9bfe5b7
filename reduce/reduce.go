package reduce

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/framesync/featmat"
)

// Func collapses a D×k segment into one D-vector, one entry per
// feature dimension. Implementations must be deterministic and must
// return exactly D values; the aggregator surfaces violations as
// ErrReducer. Row slices obtained from the span are live views and
// must not be modified.
type Func func(seg *featmat.Span) ([]float64, error)

// perRow builds a reducer that applies fn independently to each
// feature row of the segment. All built-ins are per-row statistics.
func perRow(fn func(row []float64) float64) Func {
	return func(seg *featmat.Span) ([]float64, error) {
		d, _ := seg.Dims()
		out := make([]float64, d)
		for i := 0; i < d; i++ {
			row, err := seg.Row(i)
			if err != nil {
				return nil, err
			}
			out[i] = fn(row)
		}

		return out, nil
	}
}

// Mean reduces each feature row to its arithmetic mean.
var Mean = perRow(func(row []float64) float64 {
	return stat.Mean(row, nil)
})

// Median reduces each feature row to its median: the middle value for
// odd k, the midpoint of the two middle values for even k.
var Median = perRow(func(row []float64) float64 {
	tmp := make([]float64, len(row))
	copy(tmp, row)
	sort.Float64s(tmp)
	mid := len(tmp) / 2
	if len(tmp)%2 == 1 {
		return tmp[mid]
	}

	return (tmp[mid-1] + tmp[mid]) / 2
})

// Max reduces each feature row to its maximum value.
var Max = perRow(func(row []float64) float64 {
	return floats.Max(row)
})

// Min reduces each feature row to its minimum value.
var Min = perRow(func(row []float64) float64 {
	return floats.Min(row)
})

// Sum reduces each feature row to its sum.
var Sum = perRow(func(row []float64) float64 {
	return floats.Sum(row)
})

// RMS reduces each feature row to its root-mean-square, a common
// energy summary for onset-strength style features.
var RMS = perRow(func(row []float64) float64 {
	return math.Sqrt(floats.Dot(row, row) / float64(len(row)))
})

// First picks the first column of the segment. On singleton segments
// this is the identity reduction.
func First(seg *featmat.Span) ([]float64, error) {
	return seg.Column(0)
}

// Last picks the last column of the segment.
func Last(seg *featmat.Span) ([]float64, error) {
	_, k := seg.Dims()

	return seg.Column(k - 1)
}
