// Package reduce provides column reducers for frame aggregation.
//
// A reducer collapses a D×k segment of feature columns into a single
// D-vector — one summary value per feature dimension. Reducers must be
// deterministic and dimension-preserving; the aggregator rejects any
// reducer output whose length differs from D.
//
// Built-ins cover the usual statistics (Mean, Median, Max, Min, Sum),
// an energy summary (RMS), and positional picks (First, Last). Custom
// reducers are plain functions of the same signature:
//
//	loudest := func(seg *featmat.Span) ([]float64, error) {
//	  // pick the column with the highest total energy
//	  ...
//	}
//	out, err := aggregate.Sync(m, beats, aggregate.WithReducer(loudest))
//
// Segments handed to reducers are never empty (k >= 1).
package reduce
