// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/npr/config"
	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
	"github.com/katalvlaran/npr/vertex"
)

func (a *app) newBilinearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bilinear [params.yaml]",
		Short: "Amputate and project the quark bilinear vertices of one momentum",
		Long: `Reads SinAve from prop1_file, SoutAve from prop2_file and the 16
bilinear vertices from vertex_file for every configuration, resamples them
(bootstrap when bootstraps > 0, jackknife otherwise), amputates and writes
LambdaSg, LambdaPg, LambdaVg, LambdaAg, LambdaTg, LambdaVq, LambdaAq,
LambdaSmPg, LambdaVmAg and LambdaVmAq to output_dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runE(a, a.runBilinear),
	}
}

func (a *app) runBilinear(cmd *cobra.Command, p *config.Bilinear) (*outputs, error) {
	ctx := cmd.Context()
	cfgs, err := p.Configs()
	if err != nil {
		return nil, err
	}
	a.log.Info("loading configurations", zap.Int("count", len(cfgs)), zap.Int("first", cfgs[0]))

	propIn, err := store.LoadPropagators(ctx, p.Prop1File, "SinAve", cfgs, a.workers)
	if err != nil {
		return nil, err
	}
	propOut, err := store.LoadPropagators(ctx, p.Prop2File, "SoutAve", cfgs, a.workers)
	if err != nil {
		return nil, err
	}
	bil, err := store.LoadBilinears(ctx, p.VertexFile, "bilinear", cfgs, a.workers)
	if err != nil {
		return nil, err
	}

	kind := resampleKind(p.Bootstraps)
	rIn, err := resample(propIn, kind, p.Ensemble)
	if err != nil {
		return nil, fmt.Errorf("SinAve: %w", err)
	}
	rOut, err := resample(propOut, kind, p.Ensemble)
	if err != nil {
		return nil, fmt.Errorf("SoutAve: %w", err)
	}
	rBil, err := resample(bil, kind, p.Ensemble)
	if err != nil {
		return nil, fmt.Errorf("bilinear: %w", err)
	}
	a.log.Debug("resampled", zap.Stringer("kind", kind), zap.Int("samples", rBil.EffectiveCount()))

	opt := vertex.WithWorkers(a.workers)
	amp, err := vertex.Amputate(ctx, rOut, rIn, rBil, opt)
	if err != nil {
		return nil, err
	}
	q := vertex.LatticeMomentum(p.Momentum, p.Twist, p.LatticeSize)
	a.log.Info("projecting", zap.Float64s("q", q), zap.Float64("qnorm", vertex.Norm(q)))

	lambdas, err := vertex.ProjectAll(ctx, amp, q, opt)
	if err != nil {
		return nil, err
	}
	named, err := lambdas.Named()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)

	out := &outputs{}
	for _, name := range names {
		out.add(a.log, p.OutputDir, name, named[name])
	}

	return out, nil
}

// resample turns per-configuration values into a resampled distribution.
// Every input of one run gets a generator with the same seed, so bootstrap
// draws pick the same configurations for propagators and vertices alike.
func resample[T vecops.Element[T]](values []T, kind distribution.Kind, e config.Ensemble) (*distribution.Distribution[T], error) {
	d, err := distribution.New(values)
	if err != nil {
		return nil, err
	}

	return d.Resample(kind, e.Bootstraps, distribution.NewRand(e.Seed))
}
