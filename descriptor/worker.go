package descriptor

import (
	"context"
	"fmt"

	"github.com/utkarsh5026/featurize/matrix"
)

// chunk is one worker's contiguous share of the batch. The index travels
// with the chunk and its result so that correctness never depends on the
// order in which the execution strategy returns results.
type chunk[T any] struct {
	items []T
	index int // position among chunks, restored during assembly
	start int // batch index of items[0], for error context
	nDesc int // expected output rows, -1 when unknown
}

// partial is the merged feature block produced for one chunk, tagged with
// the chunk's position index. Exactly one of dense, blocks or sparse is
// populated, depending on the engine's accumulation path.
type partial struct {
	index  int
	dense  *matrix.Dense   // dense with preallocated buffer
	blocks []*matrix.Dense // dense with unknown row counts
	sparse *matrix.COO     // sparse accumulation
	rows   int
}

// runChunk invokes the compute function for every item in the chunk and
// accumulates the blocks into one partial result.
//
// Sparse chunks stack each item's coordinate block with a running row
// offset. Dense chunks with a known row count write into one preallocated
// buffer at running offsets; with unknown counts they collect blocks and
// leave concatenation to the assembler. Any failure aborts the chunk with
// the offending item's batch index attached.
func (e *Engine[T]) runChunk(ctx context.Context, c chunk[T], fn ComputeFunc[T], onItem func()) (partial, error) {
	p := partial{index: c.index}

	var buf *matrix.Dense
	if !e.conf.sparse && c.nDesc >= 0 {
		var err error
		if buf, err = matrix.NewDense(c.nDesc, e.nFeatures); err != nil {
			return partial{}, err
		}
	}

	var acc *matrix.COO
	if e.conf.sparse {
		var err error
		if acc, err = matrix.NewCOO(0, e.nFeatures); err != nil {
			return partial{}, err
		}
	}

	offset := 0
	lastPercent := 0.0
	for i, item := range c.items {
		if err := ctx.Err(); err != nil {
			return partial{}, err
		}
		if e.conf.rateLimiter != nil {
			if err := e.conf.rateLimiter.Wait(ctx); err != nil {
				return partial{}, err
			}
		}

		blk, err := fn(ctx, item)
		if err != nil {
			return partial{}, fmt.Errorf("descriptor: item %d: %w", c.start+i, err)
		}
		rows, cols := blk.Dims()
		if cols != e.nFeatures {
			return partial{}, fmt.Errorf("%w: item %d produced %d columns, want %d",
				ErrColumnMismatch, c.start+i, cols, e.nFeatures)
		}

		switch {
		case e.conf.sparse:
			coo, ok := blk.(*matrix.COO)
			if !ok {
				return partial{}, fmt.Errorf("%w: item %d returned %T, want *matrix.COO",
					ErrBlockType, c.start+i, blk)
			}
			if err := acc.AppendRows(coo); err != nil {
				return partial{}, err
			}

		case buf != nil:
			d, ok := blk.(*matrix.Dense)
			if !ok {
				return partial{}, fmt.Errorf("%w: item %d returned %T, want *matrix.Dense",
					ErrBlockType, c.start+i, blk)
			}
			if offset+rows > c.nDesc {
				return partial{}, fmt.Errorf("%w: chunk %d writing rows [%d, %d) into %d preallocated",
					ErrRowCountMismatch, c.index, offset, offset+rows, c.nDesc)
			}
			if err := buf.SetRowsAt(offset, d); err != nil {
				return partial{}, err
			}

		default:
			d, ok := blk.(*matrix.Dense)
			if !ok {
				return partial{}, fmt.Errorf("%w: item %d returned %T, want *matrix.Dense",
					ErrBlockType, c.start+i, blk)
			}
			p.blocks = append(p.blocks, d)
		}
		offset += rows

		if onItem != nil {
			onItem()
		}
		if e.conf.progress != nil {
			percent := float64(i+1) / float64(len(c.items)) * 100
			if percent >= lastPercent+1 {
				lastPercent = percent
				e.conf.progress(c.index, percent)
			}
		}
	}

	if c.nDesc >= 0 && offset != c.nDesc {
		return partial{}, fmt.Errorf("%w: chunk %d produced %d rows, expected %d",
			ErrRowCountMismatch, c.index, offset, c.nDesc)
	}

	p.rows = offset
	p.dense = buf
	p.sparse = acc
	return p, nil
}
