// Package align compares two feature-matrix sequences with Dynamic
// Time Warping (DTW), warping the frame axis to minimize cumulative
// column-distance.
//
// The intended input is beat-synchronous data from aggregate.Sync: two
// performances of the same piece rarely have the same number of beats
// played at the same pace, and DTW recovers the correspondence between
// their segment columns. Raw frame-level matrices work just as well,
// only slower.
//
// ✨ Key features:
//   - column distances: Euclidean (default), Cosine, Manhattan
//   - optional Sakoe–Chiba window (|i−j| ≤ w) for speed & constraint
//   - slope penalty to discourage excessive stretching
//   - on-demand alignment path (ReturnPath=true)
//   - TwoRows memory mode: O(m) memory when only the distance matters
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//
//	dist, path, err := align.DTW(a, b, &opts)
//
// Performance: O(n·m·D) time; O(n·m) memory (FullMatrix) or O(m)
// (TwoRows).
package align
