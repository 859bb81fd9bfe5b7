package aggregate

import "github.com/katalvlaran/framesync/reduce"

// Defaults for Sync. These constants are the single source of truth
// for zero-option behavior.
const (
	// DefaultWorkers runs segment reductions sequentially.
	DefaultWorkers = 1

	// DefaultPad keeps the strict contract: boundaries are used
	// verbatim and must already include the desired endpoints.
	DefaultPad = false
)

const (
	panicNilReducer = "aggregate: WithReducer: reducer must be non-nil"
	panicBadWorkers = "aggregate: WithWorkers: worker count must be > 0"
)

// Option mutates aggregation options. Constructors panic only on
// nonsensical values (programmer error); user-data problems surface
// as errors from Sync.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Public entry points accept ...Option and resolve them via
// gatherOptions.
type Options struct {
	reducer reduce.Func
	pad     bool
	workers int
}

// WithReducer selects the reduction applied to each segment.
// Default: reduce.Mean. Panics if r is nil.
func WithReducer(r reduce.Func) Option {
	if r == nil {
		panic(panicNilReducer)
	}

	return func(o *Options) { o.reducer = r }
}

// WithPad inserts the synthetic endpoints 0 and T before segmentation,
// so the segments cover [0, T) exactly even when the detected
// boundaries start late or end early. Without padding, frames outside
// [boundaries[0], boundaries[len-1]) are dropped.
func WithPad() Option {
	return func(o *Options) { o.pad = true }
}

// WithWorkers reduces segments concurrently across n goroutines.
// Output is bit-identical to the sequential result: each segment's
// column lands at its segment index regardless of scheduling.
// Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicBadWorkers)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user setters on top of defaults;
// last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		reducer: reduce.Mean,
		pad:     DefaultPad,
		workers: DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
