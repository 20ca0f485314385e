// SPDX-License-Identifier: MIT

package vertex

import (
	"context"
	"math"

	"github.com/katalvlaran/npr/distribution"
	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/vecops"
)

// Lambdas are the projected bilinear vertices of one momentum point.
// Axial and tensor projections carry the -1 that makes their tree-level
// value +1 in the gamma convention of package spincolour.
type Lambdas struct {
	S, P, V, A, T *distribution.Distribution[vecops.Real] // gamma scheme
	Vq, Aq        *distribution.Distribution[vecops.Real] // q-slash scheme
}

// Named returns the projections and the S-P and V-A differences keyed by
// their dataset names.
func (l *Lambdas) Named() (map[string]*distribution.Distribution[vecops.Real], error) {
	smp, err := distribution.Sub(l.S, l.P)
	if err != nil {
		return nil, err
	}
	vma, err := distribution.Sub(l.V, l.A)
	if err != nil {
		return nil, err
	}
	vmaq, err := distribution.Sub(l.Vq, l.Aq)
	if err != nil {
		return nil, err
	}

	return map[string]*distribution.Distribution[vecops.Real]{
		"LambdaSg":   l.S,
		"LambdaPg":   l.P,
		"LambdaVg":   l.V,
		"LambdaAg":   l.A,
		"LambdaTg":   l.T,
		"LambdaVq":   l.Vq,
		"LambdaAq":   l.Aq,
		"LambdaSmPg": smp,
		"LambdaVmAg": vma,
		"LambdaVmAq": vmaq,
	}, nil
}

// ProjectAll computes every bilinear projection of amp at momentum q
// (X, Y, Z, T order).
func ProjectAll(ctx context.Context, amp *distribution.Distribution[Vertices], q []float64, opts ...Option) (*Lambdas, error) {
	var (
		l   Lambdas
		err error
	)
	gamma := []struct {
		dst    **distribution.Distribution[vecops.Real]
		labels []sc.Gamma
		sign   float64
	}{
		{&l.S, sc.ScalarSet(), 1},
		{&l.P, sc.PseudoscalarSet(), 1},
		{&l.V, sc.VectorSet(), 1},
		{&l.A, sc.AxialSet(), -1},
		{&l.T, sc.TensorSet(), -1},
	}
	for _, p := range gamma {
		if *p.dst, err = ProjectGamma(ctx, amp, p.labels, opts...); err != nil {
			return nil, err
		}
		*p.dst = distribution.Scale(*p.dst, p.sign)
	}
	if l.Vq, err = ProjectQSlash(ctx, amp, q, sc.VectorSet(), opts...); err != nil {
		return nil, err
	}
	if l.Aq, err = ProjectQSlash(ctx, amp, q, sc.AxialSet(), opts...); err != nil {
		return nil, err
	}
	l.Aq = distribution.Scale(l.Aq, -1)

	return &l, nil
}

// LatticeMomentum returns q_μ = 2π(n_μ + θ_μ)/L_μ for integer mode n, twist
// θ and lattice extent L, all in X, Y, Z, T order.
func LatticeMomentum(n []int, twist []float64, size []int) []float64 {
	q := make([]float64, len(n))
	for mu := range n {
		var th float64
		if mu < len(twist) {
			th = twist[mu]
		}
		q[mu] = 2 * math.Pi * (float64(n[mu]) + th) / float64(size[mu])
	}

	return q
}

// Norm returns |q|.
func Norm(q []float64) float64 {
	var s float64
	for _, v := range q {
		s += v * v
	}

	return math.Sqrt(s)
}
