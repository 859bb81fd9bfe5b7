// Package featmat provides the dense feature-matrix primitive shared
// by the framesync pipeline.
//
// A Matrix holds D feature dimensions (rows) by T analysis frames
// (columns) of float64 values in a flat, row-major slice. One column is
// one frame: the feature vector observed in a fixed-duration analysis
// window. Matrices are dumb containers — values (including NaN/Inf)
// pass through untouched; numeric policy belongs to the reducers that
// consume them.
//
// A Span is a zero-copy, read-only view of a contiguous column range
// [lo, hi). Spans are the unit handed to reducers during aggregation,
// so segmenting a matrix allocates nothing beyond the final output.
//
// ⚙️ Usage:
//
//	m, err := featmat.FromRows([][]float64{
//	  {0, 2, 4, 0, 2, 4}, // feature 0 over 6 frames
//	  {1, 1, 1, 3, 3, 3}, // feature 1 over 6 frames
//	})
//	seg, err := m.ColumnSpan(2, 5) // frames 2,3,4
//
// See aggregate for the consumer of these types.
package featmat
