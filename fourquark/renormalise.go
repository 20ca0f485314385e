// SPDX-License-Identifier: MIT

package fourquark

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/matrix"
	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/vecops"
)

// Input is everything the four-quark renormalization of one kinematic point
// consumes. PropIn, PropOut and Vertices must already be resampled;
// LambdaV and LambdaA are the matching bilinear projections (same length and
// kind) in the scheme used to normalise.
type Input struct {
	PropIn, PropOut *distribution.Distribution[sc.Matrix]
	Vertices        *distribution.Distribution[Vertices]
	LambdaV         *distribution.Distribution[vecops.Real]
	LambdaA         *distribution.Distribution[vecops.Real]
	Scheme          Scheme
	P1, P2          []float64 // external momenta, used by SchemeQSlash
}

// Result collects the Nop×Nop distributions of one kinematic point.
type Result struct {
	Tree      *matrix.Dense
	Lambda    *distribution.Distribution[*matrix.Dense] // Λ · tree⁻¹
	LambdaVsq *distribution.Distribution[*matrix.Dense] // Λ · tree⁻¹ / Λ_V²
	LambdaAsq *distribution.Distribution[*matrix.Dense] // Λ · tree⁻¹ / Λ_A²
	LambdaAve *distribution.Distribution[*matrix.Dense]
	ZVsq      *distribution.Distribution[*matrix.Dense] // Z_ij / Z_V²
	ZAsq      *distribution.Distribution[*matrix.Dense] // Z_ij / Z_A²
	ZAve      *distribution.Distribution[*matrix.Dense]
}

// Renormalise runs the full four-quark chain:
//
//   - Stage 1: tree matrix of the gamma vertex basis against the scheme's
//     projectors, and its inverse;
//   - Stage 2: per-sample projection Λ, normalised as Λ·tree⁻¹;
//   - Stage 3: division by Λ_V² and Λ_A² sample by sample, inversion to
//     Z_ij/Z_V² and Z_ij/Z_A², and the averages of the two.
func Renormalise(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	vb := GammaBasis()
	pb, mix, err := Projectors(in.Scheme, in.P1, in.P2)
	if err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}

	tree, err := TreeMatrix(vb, pb, mix)
	if err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}
	treeInv, err := matrix.Inverse(tree)
	if err != nil {
		return nil, fqErrorf(opRenormalis, fmt.Errorf("tree matrix: %w", err))
	}
	o.logger.Debug("tree matrix", zap.Stringer("scheme", in.Scheme), zap.Stringer("tree", tree))

	raw, err := ProjectFourQuarkDistribution(ctx, in.PropIn, in.PropOut, in.Vertices, vb, pb, mix, opts...)
	if err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}
	o.logger.Debug("vertices projected", zap.Int("samples", raw.Len()))

	res := &Result{Tree: tree}
	if res.Lambda, err = Normalise(raw, treeInv); err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}
	if res.LambdaVsq, err = DivideBySquare(res.Lambda, in.LambdaV); err != nil {
		return nil, fqErrorf(opRenormalis, fmt.Errorf("Λ_V: %w", err))
	}
	if res.LambdaAsq, err = DivideBySquare(res.Lambda, in.LambdaA); err != nil {
		return nil, fqErrorf(opRenormalis, fmt.Errorf("Λ_A: %w", err))
	}
	if res.ZVsq, err = InvertSamples(ctx, res.LambdaVsq, o.workers); err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}
	if res.ZAsq, err = InvertSamples(ctx, res.LambdaAsq, o.workers); err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}
	if res.LambdaAve, err = Average(res.LambdaVsq, res.LambdaAsq); err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}
	if res.ZAve, err = Average(res.ZVsq, res.ZAsq); err != nil {
		return nil, fqErrorf(opRenormalis, err)
	}

	return res, nil
}

// Normalise returns Λ·tree⁻¹ sample by sample.
func Normalise(lambda *distribution.Distribution[*matrix.Dense], treeInv *matrix.Dense) (*distribution.Distribution[*matrix.Dense], error) {
	return distribution.Map(lambda, func(m *matrix.Dense) (*matrix.Dense, error) {
		return matrix.MatMul(m, treeInv)
	})
}

// DivideBySquare returns Λ_ij / b² sample by sample.
func DivideBySquare(lambda *distribution.Distribution[*matrix.Dense], b *distribution.Distribution[vecops.Real]) (*distribution.Distribution[*matrix.Dense], error) {
	return distribution.ZipWith(lambda, b, func(m *matrix.Dense, x vecops.Real) (*matrix.Dense, error) {
		return m.Scale(1 / float64(x*x)), nil
	})
}

// InvertSamples inverts every matrix of d.
func InvertSamples(ctx context.Context, d *distribution.Distribution[*matrix.Dense], workers int) (*distribution.Distribution[*matrix.Dense], error) {
	return distribution.MapSamples(ctx, d, workers, func(m *matrix.Dense) (*matrix.Dense, error) {
		return matrix.Inverse(m)
	})
}

// Average returns (a+b)/2.
func Average[T vecops.Element[T]](a, b *distribution.Distribution[T]) (*distribution.Distribution[T], error) {
	sum, err := distribution.Add(a, b)
	if err != nil {
		return nil, err
	}

	return distribution.Scale(sum, 0.5), nil
}

// Entries splits a distribution of r×c matrices into an r×c grid of scalar
// distributions, entry (i, j) of every sample going to grid[i][j].
func Entries(d *distribution.Distribution[*matrix.Dense]) ([][]*distribution.Distribution[vecops.Real], error) {
	first := d.Value(0)
	rows, cols := first.Rows(), first.Cols()
	grid := make([][]*distribution.Distribution[vecops.Real], rows)
	for i := range grid {
		grid[i] = make([]*distribution.Distribution[vecops.Real], cols)
		for j := range grid[i] {
			e, err := distribution.Map(d, func(m *matrix.Dense) (vecops.Real, error) {
				v, err := m.At(i, j)
				return vecops.Real(v), err
			})
			if err != nil {
				return nil, err
			}
			grid[i][j] = e
		}
	}

	return grid, nil
}
