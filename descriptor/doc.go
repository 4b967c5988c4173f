// Package descriptor provides a generic parallel batch-computation engine
// for fixed-width feature matrices.
//
// The primary type is Engine[T], which splits a batch of items into
// contiguous chunks, fans the chunks out to parallel workers that invoke a
// caller-supplied compute function per item, and reassembles the per-chunk
// partial results into one output matrix that preserves the original item
// order. Output is either a dense matrix or a sparse matrix in compressed
// row form, depending on configuration.
//
// # Basic Usage
//
//	eng, err := descriptor.New[Molecule](nFeatures,
//	    descriptor.WithJobs(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := eng.Create(ctx, molecules, computeFn)
//
// The compute function receives one item and returns one feature block; it
// must be safe to call concurrently and must not mutate shared state. The
// engine guarantees that row i of the output corresponds to item i of the
// batch (or, when items expand to several rows, that row blocks appear in
// item order) no matter how many workers run or in which order they finish.
//
// # Execution Modes
//
// Two strategies are supported:
//
//   - ModeShared: a pool of workers pulls chunks from one shared channel.
//     Lowest overhead; completion order is arbitrary.
//   - ModeIsolated: one dedicated worker per chunk, operating on a private
//     copy of its items, so workers share no input memory.
//
// Every partial result carries its chunk index and assembly always sorts by
// it, so both modes produce identical output.
//
// # Preallocation
//
// When every item produces the same number of output rows, declare it:
//
//	eng, _ := descriptor.New[Molecule](nFeatures,
//	    descriptor.WithRowsPerItem(1),
//	    descriptor.WithJobs(8),
//	)
//
// Workers then write into one preallocated buffer per chunk instead of
// growing intermediate slices, and a chunk producing a different row count
// than promised fails with ErrRowCountMismatch.
//
// # Sparse Output
//
// With WithSparse, compute functions return coordinate-format blocks with
// group-local row indices. Workers and the assembler maintain running row
// offsets so rows never collide, and the final matrix is converted once to
// canonical CSR form for fast row-wise access.
//
// # Error Handling
//
// The engine is fail-fast: the first compute error cancels all workers and
// surfaces to the caller wrapped with the offending item's batch index. No
// partial or degraded result is ever returned and no retry is attempted,
// since substituting or dropping a failed item's rows would corrupt the
// row-order guarantee. Configuration problems (invalid worker count,
// unknown mode, bad feature count) fail at construction, before any work
// is dispatched.
package descriptor
