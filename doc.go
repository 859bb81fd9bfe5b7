// Package framesync is an in-memory toolkit for beat-synchronous
// feature aggregation — collapsing frame-level feature matrices into
// segment-level summaries along detected boundaries.
//
// 🚀 What is framesync?
//
//	A small, deterministic library that takes the output of upstream
//	audio analysis (a D×T feature matrix and a list of boundary frame
//	indices, e.g. beat positions) and produces one summary column per
//	segment:
//	  • featmat/   — dense D×T feature-matrix primitive + column views
//	  • boundary/  — boundary normalization (clip, dedupe, pad) and
//	                 strict validation
//	  • reduce/    — column reducers: mean, median, max, min, sum, RMS
//	  • aggregate/ — the frame aggregator: partition [0,T) into
//	                 segments and reduce each to a single column
//	  • align/     — Dynamic Time Warping over feature-matrix columns,
//	                 for comparing two beat-synchronous sequences
//
// ✨ Why choose framesync?
//
//   - Strict contracts — sentinel errors, no silent clipping inside
//     the aggregator; normalization is an explicit, separate step
//   - Pure functions — no global state, deterministic output,
//     inputs are never mutated
//   - Optional parallelism — segment reductions are independent and
//     can run across workers with identical results
//
// Quick sketch:
//
//	frames:     0 1 2 3 4 5 6 7 8
//	boundaries:   │     │     │
//	segments:   [0,2) [2,5) [5,8)   →  3 output columns
//
// Upstream producers (beat trackers, constant-Q transforms, onset
// detectors) and downstream consumers (plotting, storage) are out of
// scope; framesync is the pure aggregation core between them.
//
//	go get github.com/katalvlaran/framesync
package framesync
