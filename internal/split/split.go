// Package split partitions an index range into contiguous, near-equal
// pieces for fan-out across workers.
package split

import (
	"errors"
	"fmt"
)

// ErrInvalidParts is returned when the requested number of parts is not
// positive.
var ErrInvalidParts = errors.New("split: parts must be positive")

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Even splits [0, n) into exactly parts contiguous ranges whose lengths
// differ by at most one. With k, m = n/parts, n%parts, the first m ranges
// have length k+1 and the rest have length k. The split is deterministic for
// a given (n, parts) pair; when n < parts the trailing ranges are empty.
func Even(n, parts int) ([]Range, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidParts, parts)
	}
	if n < 0 {
		return nil, fmt.Errorf("split: negative length %d", n)
	}

	k, m := n/parts, n%parts
	out := make([]Range, parts)
	start := 0
	for i := range out {
		size := k
		if i < m {
			size++
		}
		out[i] = Range{Start: start, End: start + size}
		start += size
	}
	return out, nil
}
