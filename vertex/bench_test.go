// SPDX-License-Identifier: MIT
package vertex_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/vertex"
)

// BenchmarkAmputateSample measures one sample: two 12×12 inversions and the
// sixteen sandwiches.
func BenchmarkAmputateSample(b *testing.B) {
	out, in := randomProp(1), randomProp(2)
	verts := treeVertices()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vertex.AmputateSample(out, in, verts); err != nil {
			b.Fatalf("AmputateSample failed: %v", err)
		}
	}
}

// BenchmarkProjectAll measures every bilinear projection of a 64-sample
// jackknife distribution.
func BenchmarkProjectAll(b *testing.B) {
	ctx := context.Background()
	vals := make([]vertex.Vertices, 64)
	for i := range vals {
		vals[i] = treeVertices()
	}
	raw, err := distribution.New(vals)
	if err != nil {
		b.Fatal(err)
	}
	amp, err := raw.Jackknife()
	if err != nil {
		b.Fatal(err)
	}
	q := vertex.LatticeMomentum([]int{0, 2, 2, 0}, []float64{0, 0, 0, 0}, []int{16, 16, 16, 32})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vertex.ProjectAll(ctx, amp, q); err != nil {
			b.Fatalf("ProjectAll failed: %v", err)
		}
	}
}
