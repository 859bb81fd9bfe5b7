// Package boundary normalizes and validates segment boundaries for
// frame aggregation.
//
// A boundary is a frame index marking the start of a new aggregation
// segment. Upstream detectors (beat trackers, novelty detectors) emit
// candidate boundaries that may be unsorted, duplicated, or outside
// the valid frame range; Fix turns such candidates into a canonical
// sequence, and Validate enforces the strict contract the aggregator
// requires. Keeping normalization out of the aggregator keeps the
// aggregator pure and total over well-formed inputs.
//
// Canonical form: strictly increasing integers in [0, t], where t (the
// total frame count) acts as the exclusive upper bound of the final
// segment. With padding enabled, 0 and t are inserted as synthetic
// endpoints so that segments cover [0, t) exactly.
package boundary

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidBoundary indicates a boundary outside [0, t] or a
	// non-increasing sequence.
	ErrInvalidBoundary = errors.New("boundary: invalid boundary frame")

	// ErrInsufficientBoundaries indicates fewer boundaries than needed
	// to form a single segment.
	ErrInsufficientBoundaries = errors.New("boundary: not enough boundaries for one segment")
)

// Option configures Fix. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	pad bool
}

// WithoutPad disables insertion of the synthetic 0 and t endpoints.
// Use when the caller wants leading/trailing frames outside the given
// boundaries dropped rather than aggregated into partial segments.
func WithoutPad() Option {
	return func(o *options) { o.pad = false }
}

// Fix normalizes candidate boundaries against a signal of t frames:
// values are clamped into [0, t], duplicates removed, and the result
// sorted ascending. By default the synthetic endpoints 0 and t are
// inserted; disable with WithoutPad.
//
// Returns ErrInvalidBoundary if t <= 0. The input slice is never
// mutated; the result is newly allocated.
// Complexity: O(n log n) time, O(n) memory.
func Fix(frames []int, t int, opts ...Option) ([]int, error) {
	if t <= 0 {
		return nil, fmt.Errorf("boundary: frame count %d: %w", t, ErrInvalidBoundary)
	}
	o := options{pad: true}
	for _, set := range opts {
		set(&o)
	}

	// Clamp into [0, t] on a private copy.
	fixed := make([]int, 0, len(frames)+2)
	for _, f := range frames {
		switch {
		case f < 0:
			f = 0
		case f > t:
			f = t
		}
		fixed = append(fixed, f)
	}
	if o.pad {
		fixed = append(fixed, 0, t)
	}
	sort.Ints(fixed)

	// Deduplicate in place; fixed is sorted, so equal values are adjacent.
	out := fixed[:0]
	for i, f := range fixed {
		if i == 0 || f != fixed[i-1] {
			out = append(out, f)
		}
	}

	return out, nil
}

// Validate enforces the strict aggregator contract: at least two
// boundaries (one segment), strictly increasing, every value within
// [0, t]. It performs no repair; run Fix first if the input may be
// unsorted or out of range.
//
// Returns ErrInsufficientBoundaries when fewer than two boundaries are
// given, ErrInvalidBoundary on range or monotonicity violations.
// Complexity: O(n).
func Validate(frames []int, t int) error {
	if t <= 0 {
		return fmt.Errorf("boundary: frame count %d: %w", t, ErrInvalidBoundary)
	}
	if len(frames) < 2 {
		return fmt.Errorf("boundary: %d boundaries: %w", len(frames), ErrInsufficientBoundaries)
	}
	for i, f := range frames {
		if f < 0 || f > t {
			return fmt.Errorf("boundary: frame %d at position %d outside [0,%d]: %w", f, i, t, ErrInvalidBoundary)
		}
		if i > 0 && f <= frames[i-1] {
			return fmt.Errorf("boundary: frame %d at position %d not increasing: %w", f, i, ErrInvalidBoundary)
		}
	}

	return nil
}
