// Package coulomb implements the zero-padded Coulomb matrix descriptor, a
// fixed-shape numeric fingerprint of an atomic structure:
//
//	C_ij = 0.5 * Zi^2.4        when i == j
//	     = Zi * Zj / |Ri - Rj| when i != j
//
// The matrix is padded with zero rows and columns up to a configured
// maximum atom count so every system in a batch produces the same feature
// width, and flattened to a single output row. Batches are computed through
// the descriptor engine, which parallelizes across systems.
//
// For reference, see Rupp et al., Phys. Rev. Lett. 108, 058301 (2012).
package coulomb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/utkarsh5026/featurize/descriptor"
	"github.com/utkarsh5026/featurize/matrix"
)

const diagExponent = 2.4

var (
	// ErrTooManyAtoms is returned when a system has more atoms than the
	// descriptor's configured maximum.
	ErrTooManyAtoms = errors.New("coulomb: system exceeds configured maximum atom count")

	// ErrMalformedSystem is returned when a system's atomic numbers and
	// positions disagree in length.
	ErrMalformedSystem = errors.New("coulomb: malformed system")

	// ErrInvalidMaxAtoms is returned when the configured maximum atom
	// count is not positive.
	ErrInvalidMaxAtoms = errors.New("coulomb: maximum atom count must be positive")
)

// Option is a functional option for configuring a CoulombMatrix.
type Option func(*CoulombMatrix)

// WithSortedRows sorts the matrix rows and columns by descending row norm
// before flattening, making the output invariant to atom ordering.
func WithSortedRows() Option {
	return func(c *CoulombMatrix) {
		c.sortRows = true
	}
}

// WithSparse makes Describe emit coordinate-format blocks and Create
// return a CSR matrix. Zero entries from padding are never stored.
func WithSparse() Option {
	return func(c *CoulombMatrix) {
		c.sparse = true
	}
}

// CoulombMatrix computes Coulomb-matrix descriptors for systems of at most
// nMax atoms. The value is immutable and safe for concurrent use.
type CoulombMatrix struct {
	nMax     int
	sortRows bool
	sparse   bool
}

// New creates a CoulombMatrix descriptor padded to nMaxAtoms.
func New(nMaxAtoms int, opts ...Option) (*CoulombMatrix, error) {
	if nMaxAtoms <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxAtoms, nMaxAtoms)
	}
	c := &CoulombMatrix{nMax: nMaxAtoms}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NFeatures returns the flattened output width, nMaxAtoms squared. This is
// the column count of every matrix the descriptor produces.
func (c *CoulombMatrix) NFeatures() int { return c.nMax * c.nMax }

// Describe computes the flattened Coulomb matrix for one system as a
// 1 x NFeatures block. It is the compute function handed to the descriptor
// engine and is safe to invoke concurrently.
func (c *CoulombMatrix) Describe(_ context.Context, s System) (matrix.Block, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	n := s.NAtoms()
	if n > c.nMax {
		return nil, fmt.Errorf("%w: %d atoms, maximum %d", ErrTooManyAtoms, n, c.nMax)
	}

	cm := c.rawMatrix(s)
	if c.sortRows {
		cm = sortByRowNorm(cm, n)
	}

	if c.sparse {
		blk, err := matrix.NewCOO(1, c.NFeatures())
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := cm[i*n+j]
				if v == 0 {
					continue
				}
				if err := blk.Append(0, i*c.nMax+j, float32(v)); err != nil {
					return nil, err
				}
			}
		}
		return blk, nil
	}

	blk, err := matrix.NewDense(1, c.NFeatures())
	if err != nil {
		return nil, err
	}
	row, _ := blk.Row(0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			row[i*c.nMax+j] = float32(cm[i*n+j])
		}
	}
	return blk, nil
}

// Create computes descriptors for a batch of systems through the engine.
// Extra options (worker count, execution mode, verbosity) are passed
// through; every system contributes exactly one output row, so chunk
// buffers are preallocated.
func (c *CoulombMatrix) Create(ctx context.Context, systems []System, opts ...descriptor.Option) (matrix.Matrix, error) {
	eng, err := c.engine(opts...)
	if err != nil {
		return nil, err
	}
	return eng.Create(ctx, systems, c.Describe)
}

// CreateSingle computes the descriptor for one system without any
// partitioning or parallelism.
func (c *CoulombMatrix) CreateSingle(ctx context.Context, s System) (matrix.Matrix, error) {
	eng, err := c.engine()
	if err != nil {
		return nil, err
	}
	return eng.CreateSingle(ctx, s, c.Describe)
}

func (c *CoulombMatrix) engine(opts ...descriptor.Option) (*descriptor.Engine[System], error) {
	base := []descriptor.Option{descriptor.WithRowsPerItem(1)}
	if c.sparse {
		base = append(base, descriptor.WithSparse())
	}
	return descriptor.New[System](c.NFeatures(), append(base, opts...)...)
}

// rawMatrix computes the unpadded n x n Coulomb matrix as a row-major
// float64 slice.
func (c *CoulombMatrix) rawMatrix(s System) []float64 {
	n := s.NAtoms()
	cm := make([]float64, n*n)
	for i := 0; i < n; i++ {
		zi := float64(s.Numbers[i])
		cm[i*n+i] = 0.5 * math.Pow(zi, diagExponent)
		for j := i + 1; j < n; j++ {
			v := zi * float64(s.Numbers[j]) / s.distance(i, j)
			cm[i*n+j] = v
			cm[j*n+i] = v
		}
	}
	return cm
}

// sortByRowNorm permutes rows and columns of the n x n matrix cm so that
// rows appear in descending Euclidean norm order. The same permutation is
// applied to rows and columns, preserving symmetry.
func sortByRowNorm(cm []float64, n int) []float64 {
	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			v := cm[i*n+j]
			sum += v * v
		}
		norms[i] = sum
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return norms[perm[a]] > norms[perm[b]]
	})

	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = cm[perm[i]*n+perm[j]]
		}
	}
	return out
}
