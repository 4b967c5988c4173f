// Package matrix provides the numeric containers used by descriptor
// computation: a row-major dense matrix, a coordinate-format (COO) sparse
// matrix for accumulation, and a compressed sparse row (CSR) matrix as the
// canonical sparse output form.
//
// All three types store float32 data. Dense and COO implement the Block
// interface and are the two shapes a compute function may return; Dense and
// CSR implement the Matrix interface and are the two shapes the engine
// returns after assembly.
//
// # Accumulation
//
// COO is append-only and grows by vertical stacking, which is exactly what
// chunked accumulation needs:
//
//	acc, _ := matrix.NewCOO(0, nFeatures)
//	for _, blk := range blocks {
//	    _ = acc.AppendRows(blk) // shifts blk's local row indices past acc's rows
//	}
//	out := acc.ToCSR()
//
// ToCSR produces canonical CSR: column indices sorted within each row and
// duplicate coordinates summed.
//
// # Errors
//
// The package returns sentinel errors (ErrBadShape, ErrOutOfRange,
// ErrShapeMismatch); callers match them with errors.Is. Methods never panic
// on user-triggered conditions.
package matrix
