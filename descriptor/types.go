package descriptor

import (
	"context"

	"github.com/utkarsh5026/featurize/matrix"
)

// ComputeFunc maps one item to its feature block: a *matrix.Dense of shape
// (rows, nFeatures) for dense engines or a *matrix.COO of the same shape,
// with group-local row indices, for sparse engines.
//
// The function must be pure with respect to shared state: it is invoked
// concurrently from independent workers and must not mutate anything outside
// its own call. If processing fails it returns an error, which aborts the
// whole batch.
//
// Type parameter T is the item type; the engine never inspects items, it
// only hands them to the compute function.
type ComputeFunc[T any] func(ctx context.Context, item T) (matrix.Block, error)

// ProgressFunc receives advisory progress notifications from workers:
// the chunk index and the percentage of that chunk's items completed.
// Notifications arrive at most once per whole percentage point and never
// affect correctness.
type ProgressFunc func(chunk int, percent float64)

// Mode selects the execution strategy used to run chunk workers.
type Mode int

const (
	// ModeShared runs chunks on a pool of workers pulling from one shared
	// task channel. It has the lowest dispatch overhead; results complete
	// in arbitrary order.
	ModeShared Mode = iota

	// ModeIsolated runs every chunk on its own dedicated worker over a
	// private copy of the chunk's item slice, so workers share no input
	// memory. Setup cost is higher; prefer it when compute functions are
	// allocation-heavy pure computation.
	ModeIsolated
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModeShared:
		return "shared"
	case ModeIsolated:
		return "isolated"
	default:
		return "unknown"
	}
}

func (m Mode) valid() bool {
	return m == ModeShared || m == ModeIsolated
}
