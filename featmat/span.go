package featmat

import "fmt"

// Span is a read-only view of a contiguous column range [lo, hi) of a
// Matrix. It shares the parent's backing storage: building a Span
// allocates nothing, and Row yields sub-slices of the parent data.
// Callers must treat every slice obtained from a Span as immutable.
type Span struct {
	m      *Matrix
	lo, hi int
}

// ColumnSpan returns a view of columns [lo, hi) of m.
// The range must satisfy 0 <= lo < hi <= t; otherwise ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) ColumnSpan(lo, hi int) (*Span, error) {
	if lo < 0 || hi > m.t || lo >= hi {
		return nil, fmt.Errorf("featmat: span [%d,%d) of %d columns: %w", lo, hi, m.t, ErrOutOfRange)
	}

	return &Span{m: m, lo: lo, hi: hi}, nil
}

// Dims returns the feature-dimension count d and the span width k.
// Complexity: O(1).
func (s *Span) Dims() (d, k int) {
	return s.m.d, s.hi - s.lo
}

// Bounds returns the half-open column interval [lo, hi) in the parent
// matrix's frame indexing.
// Complexity: O(1).
func (s *Span) Bounds() (lo, hi int) {
	return s.lo, s.hi
}

// At retrieves feature row at span-relative column col (0 <= col < k).
// Complexity: O(1).
func (s *Span) At(row, col int) (float64, error) {
	if col < 0 || col >= s.hi-s.lo {
		return 0, fmt.Errorf("featmat: span column %d of %d: %w", col, s.hi-s.lo, ErrOutOfRange)
	}

	return s.m.At(row, s.lo+col)
}

// Row returns feature row i restricted to the span, as a sub-slice of
// the parent's storage. The slice is live: it must not be modified.
// Complexity: O(1).
func (s *Span) Row(i int) ([]float64, error) {
	if i < 0 || i >= s.m.d {
		return nil, fmt.Errorf("featmat: row %d of %d: %w", i, s.m.d, ErrOutOfRange)
	}
	base := i * s.m.t

	return s.m.data[base+s.lo : base+s.hi], nil
}

// Column returns a copy of the feature vector at span-relative column j.
// Complexity: O(d).
func (s *Span) Column(j int) ([]float64, error) {
	if j < 0 || j >= s.hi-s.lo {
		return nil, fmt.Errorf("featmat: span column %d of %d: %w", j, s.hi-s.lo, ErrOutOfRange)
	}

	return s.m.Column(s.lo + j)
}
