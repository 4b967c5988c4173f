package descriptor

import (
	"context"
	"fmt"
	"testing"

	"github.com/utkarsh5026/featurize/matrix"
)

func benchItems(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func BenchmarkCreate_Dense(b *testing.B) {
	items := benchItems(1024)

	for _, mode := range []Mode{ModeShared, ModeIsolated} {
		for _, jobs := range []int{1, 4, 8} {
			b.Run(fmt.Sprintf("%s_jobs%d", mode, jobs), func(b *testing.B) {
				eng, err := New[int](testFeatures,
					WithRowsPerItem(1), WithJobs(jobs), WithMode(mode))
				if err != nil {
					b.Fatal(err)
				}
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := eng.Create(context.Background(), items, rowFn); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCreate_Sparse(b *testing.B) {
	items := benchItems(1024)

	eng, err := New[int](testFeatures, WithSparse(), WithJobs(4))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Create(context.Background(), items, sparseRowFn); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkToCSR(b *testing.B) {
	acc, err := matrix.NewCOO(0, testFeatures)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < 4096; i++ {
		blk, err := sparseRowFn(context.Background(), i)
		if err != nil {
			b.Fatal(err)
		}
		if err := acc.AppendRows(blk.(*matrix.COO)); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = acc.ToCSR()
	}
}
