// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/npr/config"
	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
)

func (a *app) newZFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zfactors [params.yaml]",
		Short: "Assemble Z_S, Z_P, Z_T, Z_V and Z_m from projected vertices",
		Long: `Reads the bootstrap distributions LambdaA<scheme>, LambdaV<scheme>,
LambdaSg, LambdaPg and LambdaTg from LambdaDir, draws Z_A from a normal
distribution of mean ZA and width ZAerror, and writes

  Z_X = Λ_A·Z_A/Λ_X  for X = S, P, T, V
  Z_m = 1/Z_S

as ZS<scheme>, ZP<scheme>, ZT<scheme>, ZV<scheme>, Zm<scheme> and ZA
to outputDir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runE(a, a.runZFactors),
	}
}

func (a *app) runZFactors(cmd *cobra.Command, p *config.ZFactors) (*outputs, error) {
	ctx := cmd.Context()
	read := func(name string) (*distribution.Distribution[vecops.Real], error) {
		values, err := store.LoadResult(ctx, p.LambdaDir, name)
		if err != nil {
			return nil, err
		}
		return distribution.NewResampled(vecops.Reals(values), distribution.Bootstrap)
	}
	lambdaA, err := read("LambdaA" + p.Scheme)
	if err != nil {
		return nil, err
	}

	za, err := normalBootstrap(p.ZA, p.ZAError, lambdaA.EffectiveCount(), p.Seed)
	if err != nil {
		return nil, err
	}
	// Λ_A·Z_A is the numerator of every Z_X.
	num, err := distribution.Mul(lambdaA, za)
	if err != nil {
		return nil, err
	}

	out := &outputs{}
	for _, x := range []struct{ z, lambda string }{
		{"ZS" + p.Scheme, "LambdaSg"},
		{"ZP" + p.Scheme, "LambdaPg"},
		{"ZT" + p.Scheme, "LambdaTg"},
		{"ZV" + p.Scheme, "LambdaV" + p.Scheme},
	} {
		l, err := read(x.lambda)
		if err != nil {
			return nil, err
		}
		z, err := distribution.Div(num, l)
		if err != nil {
			return nil, err
		}
		out.add(a.log, p.OutputDir, x.z, z)

		if x.lambda == "LambdaSg" {
			zm, err := distribution.Map(z, func(v vecops.Real) (vecops.Real, error) { return 1 / v, nil })
			if err != nil {
				return nil, err
			}
			out.add(a.log, p.OutputDir, "Zm"+p.Scheme, zm)
		}
	}
	out.add(a.log, p.OutputDir, "ZA", za)
	a.log.Debug("Z_A sampled", zap.Float64("mean", p.ZA), zap.Float64("width", p.ZAError), zap.Int64("seed", p.Seed))

	return out, nil
}

// normalBootstrap draws n samples of Normal(mean, width) and appends mean as
// the central value.
func normalBootstrap(mean, width float64, n int, seed int64) (*distribution.Distribution[vecops.Real], error) {
	rng := distribution.NewRand(seed)
	values := make([]vecops.Real, n+1)
	for i := 0; i < n; i++ {
		values[i] = vecops.Real(mean + width*rng.NormFloat64())
	}
	values[n] = vecops.Real(mean)

	return distribution.NewResampled(values, distribution.Bootstrap)
}
