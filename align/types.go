// Package align defines options, modes, and sentinel errors for
// feature-sequence alignment.
package align

import "errors"

var (
	// ErrEmptyInput indicates a nil input matrix.
	ErrEmptyInput = errors.New("align: input matrices must be non-nil")

	// ErrDimensionMismatch indicates the two inputs have different
	// feature dimensions.
	ErrDimensionMismatch = errors.New("align: feature dimensions differ")

	// ErrBadOption indicates an invalid option value (Window < -1 or an
	// unknown Distance).
	ErrBadOption = errors.New("align: invalid option value")

	// ErrPathNeedsMatrix indicates ReturnPath=true with a memory mode
	// that cannot backtrace.
	ErrPathNeedsMatrix = errors.New("align: ReturnPath requires MemoryMode=FullMatrix")
)

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)×(m+1) matrix. Allows distance
//     plus full backtrace of the optimal warping path. Memory: O(n·m).
//   - TwoRows — keep only the current and previous rows. Memory: O(m),
//     but no path recovery. Use when only the distance is needed.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: keep two rows, distance only.
	TwoRows
)

// Distance selects the local cost between two feature columns.
type Distance int

const (
	// Euclidean is the L2 distance between columns.
	Euclidean Distance = iota

	// Cosine is 1 − cosine similarity; zero-norm columns cost 1.
	Cosine

	// Manhattan is the L1 distance between columns.
	Manhattan
)

// Coord is one step of a warping path: frame I of the first sequence
// matched to frame J of the second (both 0-based).
type Coord struct {
	I, J int
}

// Options configures DTW.
//
// Fields:
//   - Window       — maximum deviation |i−j| allowed (Sakoe–Chiba
//     band). -1 means unconstrained; 0 permits only the diagonal.
//   - SlopePenalty — additive cost for insertion/deletion steps
//     (controls locality bias).
//   - ReturnPath   — if true, DTW backtracks and returns the optimal
//     warping path. Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix or TwoRows storage.
//   - Distance     — local column-distance: Euclidean, Cosine, or
//     Manhattan.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
	Distance     Distance
}

// DefaultOptions returns the canonical defaults: no window constraint,
// no slope penalty, distance only, full matrix, Euclidean cost.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
		Distance:     Euclidean,
	}
}
