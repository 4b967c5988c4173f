package descriptor

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// runShared executes chunks on a pool of workers pulling from one shared
// task channel. Partial results are collected in completion order; the
// assembler's index sort restores batch order. The first worker error
// cancels the group and surfaces to the caller with no partial output.
func (e *Engine[T]) runShared(ctx context.Context, chunks []chunk[T], fn ComputeFunc[T], onItem func()) ([]partial, error) {
	g, ctx := errgroup.WithContext(ctx)

	taskChan := make(chan chunk[T])
	resultChan := make(chan partial, len(chunks))

	numWorkers := min(e.conf.jobs, len(chunks))
	for range numWorkers {
		g.Go(func() error {
			for {
				select {
				case c, ok := <-taskChan:
					if !ok {
						return nil
					}
					p, err := e.runChunk(ctx, c, fn, onItem)
					if err != nil {
						return err
					}
					select {
					case resultChan <- p:
					case <-ctx.Done():
						return ctx.Err()
					}
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}

	g.Go(func() error {
		defer close(taskChan)
		for _, c := range chunks {
			select {
			case taskChan <- c:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(resultChan)

	partials := make([]partial, 0, len(chunks))
	for p := range resultChan {
		partials = append(partials, p)
	}
	return partials, nil
}

// runIsolated executes every chunk on its own dedicated worker over a
// private copy of the chunk's item slice, so no input memory is shared
// between workers. Results land in per-chunk slots and therefore come back
// in submission order, but the assembler does not rely on that.
func (e *Engine[T]) runIsolated(ctx context.Context, chunks []chunk[T], fn ComputeFunc[T], onItem func()) ([]partial, error) {
	g, ctx := errgroup.WithContext(ctx)

	partials := make([]partial, len(chunks))
	for i, c := range chunks {
		items := make([]T, len(c.items))
		copy(items, c.items)
		c.items = items

		g.Go(func() error {
			p, err := e.runChunk(ctx, c, fn, onItem)
			if err != nil {
				return err
			}
			partials[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}
