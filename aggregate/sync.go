package aggregate

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/framesync/boundary"
	"github.com/katalvlaran/framesync/featmat"
	"github.com/katalvlaran/framesync/reduce"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("aggregate: matrix is nil")

	// ErrReducer indicates the reducer failed or returned a vector of
	// the wrong length. The wrapped message names the failing segment.
	ErrReducer = errors.New("aggregate: reducer failed")
)

// Boundary errors are owned by the boundary package; the aliases below
// let callers match them without importing it.

// ErrInvalidBoundary is returned for boundaries outside [0, T] or
// non-increasing sequences.
var ErrInvalidBoundary = boundary.ErrInvalidBoundary

// ErrInsufficientBoundaries is returned when the boundaries admit
// fewer than one segment.
var ErrInsufficientBoundaries = boundary.ErrInsufficientBoundaries

// Sync partitions the frame axis of m into half-open segments between
// consecutive boundaries and reduces each segment to one column of the
// result.
//
// Boundaries must be strictly increasing integers in [0, T]; T acts as
// the exclusive upper bound of the final segment. With WithPad, the
// synthetic endpoints 0 and T are inserted first, so the segments
// cover [0, T) exactly; otherwise the boundaries are used verbatim and
// at least two are required. Sync performs no other repair — run
// boundary.Fix upstream for clipping and deduplication.
//
// The result is a newly allocated D×S matrix, S = number of segments,
// with column s equal to the reduction of frames [bₛ, bₛ₊₁). The input
// is never mutated, and no partial result is returned on error.
//
// Errors: ErrNilMatrix; ErrInsufficientBoundaries and
// ErrInvalidBoundary from validation; ErrReducer when the reducer
// fails or is not dimension-preserving.
//
// Complexity: O(T·D) plus reducer cost per segment; memory O(D·S).
func Sync(m *featmat.Matrix, boundaries []int, opts ...Option) (*featmat.Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts...)
	d, t := m.Dims()

	bs := boundaries
	if o.pad {
		bs = padEndpoints(boundaries, t)
	}
	if err := boundary.Validate(bs, t); err != nil {
		return nil, err
	}

	segs := Segments(bs)
	out, err := featmat.New(d, len(segs))
	if err != nil {
		return nil, err
	}

	if o.workers > 1 {
		if err = reduceParallel(m, out, segs, o.reducer, o.workers); err != nil {
			return nil, err
		}

		return out, nil
	}

	for s, seg := range segs {
		if err = reduceSegment(m, out, s, seg, o.reducer); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Segments converts validated boundaries into half-open frame
// intervals: segment s spans [boundaries[s], boundaries[s+1]).
// Complexity: O(n).
func Segments(boundaries []int) [][2]int {
	if len(boundaries) < 2 {
		return nil
	}
	segs := make([][2]int, len(boundaries)-1)
	for i := 1; i < len(boundaries); i++ {
		segs[i-1] = [2]int{boundaries[i-1], boundaries[i]}
	}

	return segs
}

// padEndpoints returns boundaries with 0 prepended and t appended when
// missing. The input is never mutated.
func padEndpoints(boundaries []int, t int) []int {
	bs := make([]int, 0, len(boundaries)+2)
	if len(boundaries) == 0 || boundaries[0] != 0 {
		bs = append(bs, 0)
	}
	bs = append(bs, boundaries...)
	if len(boundaries) == 0 || boundaries[len(boundaries)-1] != t {
		bs = append(bs, t)
	}

	return bs
}

// reduceSegment reduces one segment and writes the result into column
// s of out. Validation of the segment bounds happened upstream, so a
// span error here is a programmer error surfaced as ErrReducer.
func reduceSegment(m, out *featmat.Matrix, s int, seg [2]int, r reduce.Func) error {
	span, err := m.ColumnSpan(seg[0], seg[1])
	if err != nil {
		return reducerErrorf(s, seg, err)
	}
	col, err := r(span)
	if err != nil {
		return reducerErrorf(s, seg, err)
	}
	d, _ := out.Dims()
	if len(col) != d {
		return reducerErrorf(s, seg, fmt.Errorf("got %d values, want %d", len(col), d))
	}

	return out.SetColumn(s, col)
}

// reduceParallel fans segment reductions out over at most workers
// goroutines. Segments are independent and each writes a distinct
// column of out, so no coordination beyond the group wait is needed.
func reduceParallel(m, out *featmat.Matrix, segs [][2]int, r reduce.Func, workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)
	for s, seg := range segs {
		s, seg := s, seg
		g.Go(func() error {
			return reduceSegment(m, out, s, seg, r)
		})
	}

	return g.Wait()
}

// reducerErrorf wraps a reduction failure with its segment context.
func reducerErrorf(s int, seg [2]int, cause error) error {
	return fmt.Errorf("segment %d [%d,%d): %w: %v", s, seg[0], seg[1], ErrReducer, cause)
}
