package descriptor

import (
	"sort"

	"github.com/utkarsh5026/featurize/matrix"
)

// assemble reorders partial results by chunk index and concatenates them
// into the final output matrix. The sort is applied regardless of execution
// mode so that correctness never depends on strategy internals. A nil or
// empty partial set yields a matrix with zero rows and the configured
// number of feature columns.
func (e *Engine[T]) assemble(partials []partial) (matrix.Matrix, error) {
	sort.Slice(partials, func(i, j int) bool {
		return partials[i].index < partials[j].index
	})

	if e.conf.sparse {
		return e.assembleSparse(partials)
	}
	return e.assembleDense(partials)
}

// assembleDense concatenates dense partials along the row axis into one
// buffer, allocated once from the known total.
func (e *Engine[T]) assembleDense(partials []partial) (*matrix.Dense, error) {
	total := 0
	for _, p := range partials {
		total += p.rows
	}

	out, err := matrix.NewDense(total, e.nFeatures)
	if err != nil {
		return nil, err
	}

	offset := 0
	for _, p := range partials {
		if p.dense != nil {
			if err := out.SetRowsAt(offset, p.dense); err != nil {
				return nil, err
			}
			offset += p.rows
			continue
		}
		for _, blk := range p.blocks {
			if err := out.SetRowsAt(offset, blk); err != nil {
				return nil, err
			}
			rows, _ := blk.Dims()
			offset += rows
		}
	}
	return out, nil
}

// assembleSparse walks the ordered partials with a running row offset,
// stacking each chunk's coordinate block, and converts the merged result to
// row-compressed canonical form. Blocks stay in coordinate form throughout;
// nothing is zero-padded.
func (e *Engine[T]) assembleSparse(partials []partial) (*matrix.CSR, error) {
	acc, err := matrix.NewCOO(0, e.nFeatures)
	if err != nil {
		return nil, err
	}
	for _, p := range partials {
		if p.sparse == nil {
			continue
		}
		if err := acc.AppendRows(p.sparse); err != nil {
			return nil, err
		}
	}
	return acc.ToCSR(), nil
}
