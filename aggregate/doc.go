// Package aggregate implements beat-synchronous frame aggregation:
// partitioning the time axis of a feature matrix into contiguous
// segments between successive boundaries and reducing each segment to
// a single output column.
//
// 🚀 What is frame aggregation?
//
//	Upstream analysis produces features at a fixed frame rate (tens of
//	columns per second) while musically meaningful events (beats,
//	section boundaries) are sparse. Aggregation collapses every
//	half-open segment [bᵢ, bᵢ₊₁) of frames into one summary column,
//	turning a D×T frame-level matrix into a D×S segment-level one.
//
// ✨ Key properties:
//   - true partition: segments never overlap, and with padding they
//     cover [0, T) exactly — no sliding windows, no gaps
//   - strict validation: malformed boundaries fail with sentinel
//     errors before any output is allocated; no partial results
//   - pluggable reduction: any reduce.Func (mean, median, max, or a
//     caller-supplied statistic)
//   - optional parallelism: segment reductions are independent and can
//     run across workers with bit-identical output
//
// ⚙️ Usage:
//
//	cqt, _ := featmat.FromRows(spectra)          // D×T constant-Q frames
//	beats, _ := boundary.Fix(rawBeats, t)        // clip, dedupe, pad
//	avg, err := aggregate.Sync(cqt, beats)       // mean per beat segment
//	med, err := aggregate.Sync(cqt, beats,
//	  aggregate.WithReducer(reduce.Median))
//
// Performance: O(T·D) for the slicing plus reducer cost per segment;
// the only allocation is the D×S output.
package aggregate
