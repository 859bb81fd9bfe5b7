package align

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/framesync/featmat"
)

// DTW computes the Dynamic Time Warping distance between the column
// sequences of a and b. Returns (distance, path, error); path is nil
// unless opts.ReturnPath is true.
//
// Algorithm outline (FullMatrix):
//  1. Let n, m be the frame counts of a and b. Allocate an
//     (n+1)×(m+1) DP matrix D.
//  2. Initialize D[0][0] = 0 and the first row/column to +∞.
//  3. For i = 1..n, j = 1..m (and |i−j| ≤ Window, if constrained):
//     cost    = dist(a[:,i−1], b[:,j−1])
//     D[i][j] = cost + min(D[i−1][j−1],
//     D[i−1][j] + SlopePenalty,
//     D[i][j−1] + SlopePenalty)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) following the
//     minimal predecessor, preferring the diagonal on ties.
//
// A strict window can make every path inadmissible; the distance is
// then +Inf and no path is returned.
//
// Errors:
//   - ErrEmptyInput          — a or b is nil.
//   - ErrDimensionMismatch   — feature dimensions differ.
//   - ErrBadOption           — Window < -1 or unknown Distance.
//   - ErrPathNeedsMatrix     — ReturnPath=true without FullMatrix.
//
// Complexity: O(n·m·D) time; O(n·m) memory for FullMatrix, O(m) for
// TwoRows.
func DTW(a, b *featmat.Matrix, opts *Options) (distance float64, path []Coord, err error) {
	if a == nil || b == nil {
		return 0, nil, ErrEmptyInput
	}
	da, n := a.Dims()
	db, m := b.Dims()
	if da != db {
		return 0, nil, ErrDimensionMismatch
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 {
		return 0, nil, ErrBadOption
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}
	dist, err := costFunc(o.Distance)
	if err != nil {
		return 0, nil, err
	}

	// Extract both column sequences once; matrix columns are strided,
	// and the DP loop touches each pair of columns up to min(n,m) times.
	ca := columnsOf(a)
	cb := columnsOf(b)

	window := o.Window
	if window < 0 {
		window = math.MaxInt32
	}
	inf := math.Inf(1)

	if o.MemoryMode == TwoRows {
		return dtwTwoRows(ca, cb, dist, window, o.SlopePenalty, inf)
	}

	// Full DP matrix with +Inf borders; D[0][0] anchors the recursion.
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				dp[i][j] = inf

				continue
			}
			cost := dist(ca[i-1], cb[j-1])
			best := min3(
				dp[i-1][j-1],
				dp[i-1][j]+o.SlopePenalty,
				dp[i][j-1]+o.SlopePenalty,
			)
			dp[i][j] = cost + best
		}
	}
	distance = dp[n][m]

	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrace(dp, n, m, o.SlopePenalty)
	}

	return distance, path, nil
}

// dtwTwoRows runs the same recurrence keeping only two DP rows.
func dtwTwoRows(ca, cb [][]float64, dist func(x, y []float64) float64, window int, penalty, inf float64) (float64, []Coord, error) {
	n, m := len(ca), len(cb)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if absInt(i-j) > window {
				curr[j] = inf

				continue
			}
			cost := dist(ca[i-1], cb[j-1])
			best := min3(prev[j-1], prev[j]+penalty, curr[j-1]+penalty)
			curr[j] = cost + best
		}
		prev, curr = curr, prev
	}

	// prev holds the last computed row after the final swap.
	return prev[m], nil, nil
}

// backtrace recovers the optimal warping path from a finite DP matrix,
// walking minimal predecessors from (n,m) down to (1,1). Ties prefer
// the diagonal step.
func backtrace(dp [][]float64, n, m int, penalty float64) []Coord {
	path := make([]Coord, 0, n+m)
	i, j := n, m
	path = append(path, Coord{I: i - 1, J: j - 1})
	for i > 1 || j > 1 {
		diag := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
		if i == 0 && j == 0 {
			break
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}

	// Reverse in place: the walk collected coordinates end-to-start.
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// costFunc maps a Distance selector to its column-distance kernel.
func costFunc(d Distance) (func(x, y []float64) float64, error) {
	switch d {
	case Euclidean:
		return func(x, y []float64) float64 { return floats.Distance(x, y, 2) }, nil
	case Manhattan:
		return func(x, y []float64) float64 { return floats.Distance(x, y, 1) }, nil
	case Cosine:
		return cosineCost, nil
	default:
		return nil, ErrBadOption
	}
}

// cosineCost is 1 − cosine similarity; zero-norm columns cost 1.
func cosineCost(x, y []float64) float64 {
	nx := floats.Norm(x, 2)
	ny := floats.Norm(y, 2)
	if nx == 0 || ny == 0 {
		return 1
	}

	return 1 - floats.Dot(x, y)/(nx*ny)
}

// columnsOf copies the matrix into a frame-major slice of columns.
func columnsOf(m *featmat.Matrix) [][]float64 {
	_, t := m.Dims()
	cols := make([][]float64, t)
	for j := 0; j < t; j++ {
		cols[j], _ = m.Column(j)
	}

	return cols
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
