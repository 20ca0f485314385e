// SPDX-License-Identifier: MIT

package vertex

import (
	"context"
	"fmt"

	"github.com/katalvlaran/npr/distribution"
	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/vecops"
)

func lookup(tag string, amp Vertices, g sc.Gamma) (sc.Matrix, error) {
	if !g.Valid() || int(g) >= len(amp) {
		return sc.Matrix{}, fmt.Errorf("%s: %s of %d vertices: %w", tag, g, len(amp), ErrMissingVertex)
	}

	return amp[g], nil
}

// ProjectGammaSample returns Re Σ_{g∈labels} Tr[Λ_g Γ_g] / (12·|labels|).
func ProjectGammaSample(amp Vertices, labels []sc.Gamma) (float64, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("%s: %w", opProjectGamma, ErrNoGammas)
	}
	var tr complex128
	for _, g := range labels {
		lam, err := lookup(opProjectGamma, amp, g)
		if err != nil {
			return 0, err
		}
		tr += lam.Times(g.Matrix()).Trace()
	}

	return real(tr) / float64(sc.Dim*len(labels)), nil
}

// ProjectQSlashSample returns
//
//	Re Σ_μ Σ_ν Tr[q_μ Λ_{labels[μ]} Γ_{labels[ν]} q_ν] / (12·q²)
//
// with q² = Σ_μ q_μ². q is given in the order of labels (X, Y, Z, T for the
// standard vector and axial sets).
func ProjectQSlashSample(amp Vertices, q []float64, labels []sc.Gamma) (float64, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("%s: %w", opProjectQSlash, ErrNoGammas)
	}
	if len(q) != len(labels) {
		return 0, fmt.Errorf("%s: %d momenta for %d gammas: %w", opProjectQSlash, len(q), len(labels), ErrMomentumLength)
	}
	var qsq float64
	for _, v := range q {
		qsq += v * v
	}
	if qsq == 0 {
		return 0, fmt.Errorf("%s: %w", opProjectQSlash, ErrZeroMomentum)
	}

	var tr complex128
	for mu, gmu := range labels {
		if q[mu] == 0 {
			continue
		}
		lam, err := lookup(opProjectQSlash, amp, gmu)
		if err != nil {
			return 0, err
		}
		for nu, gnu := range labels {
			if q[nu] == 0 {
				continue
			}
			tr += complex(q[mu]*q[nu], 0) * lam.Times(gnu.Matrix()).Trace()
		}
	}

	return real(tr) / (float64(sc.Dim) * qsq), nil
}

// ProjectGamma applies ProjectGammaSample to every sample.
func ProjectGamma(ctx context.Context, amp *distribution.Distribution[Vertices], labels []sc.Gamma, opts ...Option) (*distribution.Distribution[vecops.Real], error) {
	o := gatherOptions(opts)

	return distribution.MapSamples(ctx, amp, o.workers, func(v Vertices) (vecops.Real, error) {
		p, err := ProjectGammaSample(v, labels)
		return vecops.Real(p), err
	})
}

// ProjectQSlash applies ProjectQSlashSample to every sample.
func ProjectQSlash(ctx context.Context, amp *distribution.Distribution[Vertices], q []float64, labels []sc.Gamma, opts ...Option) (*distribution.Distribution[vecops.Real], error) {
	o := gatherOptions(opts)

	return distribution.MapSamples(ctx, amp, o.workers, func(v Vertices) (vecops.Real, error) {
		p, err := ProjectQSlashSample(v, q, labels)
		return vecops.Real(p), err
	})
}
