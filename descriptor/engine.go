package descriptor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/utkarsh5026/featurize/internal/split"
	"github.com/utkarsh5026/featurize/matrix"
)

// Engine computes fixed-width feature matrices for batches of items by
// fanning item chunks out to parallel workers and reassembling the partial
// results in original batch order.
//
// An Engine is immutable after construction and safe for concurrent use;
// each Create call carries its own chunks and partial results and no state
// survives between calls.
//
// Type parameter T is the item type handed to the compute function.
type Engine[T any] struct {
	nFeatures int
	conf      config
}

// New creates an Engine producing nFeatures columns per output row.
// The feature count comes from the descriptor's configuration, never from
// inspecting results.
//
// Configuration errors (non-positive feature count or worker count, an
// unrecognized execution mode, a negative rows-per-item value) are reported
// here, before any batch is accepted.
//
// Example:
//
//	eng, err := descriptor.New[Molecule](64,
//	    descriptor.WithJobs(4),
//	    descriptor.WithMode(descriptor.ModeShared),
//	)
func New[T any](nFeatures int, opts ...Option) (*Engine[T], error) {
	cfg := config{
		jobs: 1,
		mode: ModeShared,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if nFeatures <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFeatures, nFeatures)
	}
	if cfg.jobs <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidJobs, cfg.jobs)
	}
	if !cfg.mode.valid() {
		return nil, fmt.Errorf("%w: %d (use ModeShared or ModeIsolated)", ErrUnknownMode, cfg.mode)
	}
	if cfg.rowsPerItem < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRows, cfg.rowsPerItem)
	}

	return &Engine[T]{
		nFeatures: nFeatures,
		conf:      cfg,
	}, nil
}

// NFeatures returns the configured output column count.
func (e *Engine[T]) NFeatures() int { return e.nFeatures }

// Sparse reports whether the engine accumulates sparse blocks.
func (e *Engine[T]) Sparse() bool { return e.conf.sparse }

// Create computes the feature matrix for a batch of items. The returned
// matrix has one block of rows per item, in item order: *matrix.Dense for
// dense engines, *matrix.CSR for sparse engines, always with NFeatures
// columns. An empty batch yields a matrix with zero rows, not an error.
//
// Create blocks until every chunk has completed or one has failed. On
// failure the first error is returned, wrapped with the offending item's
// batch index, and no partial result is produced.
func (e *Engine[T]) Create(ctx context.Context, items []T, fn ComputeFunc[T]) (matrix.Matrix, error) {
	if fn == nil {
		return nil, ErrNilCompute
	}
	if len(items) == 0 {
		return e.assemble(nil)
	}

	chunks, err := e.chunkItems(items)
	if err != nil {
		return nil, err
	}

	onItem, finish := e.itemProgress(len(items))
	defer finish()

	var partials []partial
	switch e.conf.mode {
	case ModeIsolated:
		partials, err = e.runIsolated(ctx, chunks, fn, onItem)
	default:
		partials, err = e.runShared(ctx, chunks, fn, onItem)
	}
	if err != nil {
		return nil, err
	}

	return e.assemble(partials)
}

// CreateSingle computes the feature matrix for one item, bypassing
// partitioning and parallel dispatch entirely. The compute function is
// invoked exactly once; its block is validated and returned in the same
// canonical form Create uses.
func (e *Engine[T]) CreateSingle(ctx context.Context, item T, fn ComputeFunc[T]) (matrix.Matrix, error) {
	if fn == nil {
		return nil, ErrNilCompute
	}

	blk, err := fn(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("descriptor: item 0: %w", err)
	}
	if _, cols := blk.Dims(); cols != e.nFeatures {
		return nil, fmt.Errorf("%w: item 0 produced %d columns, want %d", ErrColumnMismatch, cols, e.nFeatures)
	}

	if e.conf.sparse {
		coo, ok := blk.(*matrix.COO)
		if !ok {
			return nil, fmt.Errorf("%w: item 0 returned %T, want *matrix.COO", ErrBlockType, blk)
		}
		return coo.ToCSR(), nil
	}

	d, ok := blk.(*matrix.Dense)
	if !ok {
		return nil, fmt.Errorf("%w: item 0 returned %T, want *matrix.Dense", ErrBlockType, blk)
	}
	return d, nil
}

// itemProgress wires the verbose progress bar, returning a per-item tick
// callback (nil when quiet) and a cleanup function.
func (e *Engine[T]) itemProgress(total int) (onItem func(), finish func()) {
	if !e.conf.verbose {
		return nil, func() {}
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("computing descriptors"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return func() { _ = bar.Add(1) }, func() { _ = bar.Finish() }
}

// chunkItems splits the batch into exactly conf.jobs contiguous chunks and
// attaches each chunk's expected output row count when rows per item are
// known.
func (e *Engine[T]) chunkItems(items []T) ([]chunk[T], error) {
	ranges, err := split.Even(len(items), e.conf.jobs)
	if err != nil {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidJobs, e.conf.jobs)
	}

	chunks := make([]chunk[T], len(ranges))
	for i, r := range ranges {
		c := chunk[T]{
			items: items[r.Start:r.End],
			index: i,
			start: r.Start,
			nDesc: -1,
		}
		if e.conf.rowsPerItem > 0 {
			c.nDesc = e.conf.rowsPerItem * r.Len()
		}
		chunks[i] = c
	}
	return chunks, nil
}
