// SPDX-License-Identifier: MIT

package vertex

import (
	"context"
	"fmt"

	"github.com/katalvlaran/npr/distribution"
	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/vecops"
)

// Vertices holds one spin-colour matrix per gamma label, indexed by
// spincolour.Gamma.
type Vertices = vecops.Seq[sc.Matrix]

// Invert returns the inverse of a propagator sample.
// Errors: spincolour.ErrSingular.
func Invert(prop sc.Matrix) (sc.Matrix, error) {
	inv, err := prop.Inverse()
	if err != nil {
		return sc.Matrix{}, fmt.Errorf("%s: %w", opInvert, err)
	}

	return inv, nil
}

// InvertDistribution inverts every value of a propagator distribution.
func InvertDistribution(ctx context.Context, props *distribution.Distribution[sc.Matrix], opts ...Option) (*distribution.Distribution[sc.Matrix], error) {
	o := gatherOptions(opts)

	return distribution.MapSamples(ctx, props, o.workers, Invert)
}

// AmputateSample returns S_out⁻¹ · V_g · S_in⁻¹ for every vertex V_g.
func AmputateSample(propOut, propIn sc.Matrix, vertices Vertices) (Vertices, error) {
	outInv, err := Invert(propOut)
	if err != nil {
		return nil, fmt.Errorf("%s: outgoing propagator: %w", opAmputate, err)
	}
	inInv, err := Invert(propIn)
	if err != nil {
		return nil, fmt.Errorf("%s: incoming propagator: %w", opAmputate, err)
	}

	return amputateInverted(outInv, inInv, vertices), nil
}

func amputateInverted(outInv, inInv sc.Matrix, vertices Vertices) Vertices {
	amp := make(Vertices, len(vertices))
	for g, v := range vertices {
		amp[g] = outInv.Times(v).Times(inInv)
	}

	return amp
}

// Amputate applies AmputateSample sample-by-sample. The three inputs must
// share length and resampling kind (distribution.ErrDimensionMismatch,
// distribution.ErrKindMismatch); a singular propagator sample fails the call.
func Amputate(
	ctx context.Context,
	propOut, propIn *distribution.Distribution[sc.Matrix],
	vertices *distribution.Distribution[Vertices],
	opts ...Option,
) (*distribution.Distribution[Vertices], error) {
	o := gatherOptions(opts)

	return distribution.Zip3Samples(ctx, propOut, propIn, vertices, o.workers, AmputateSample)
}
