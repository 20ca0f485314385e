// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/npr/config"
	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/fourquark"
	"github.com/katalvlaran/npr/matrix"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
	"github.com/katalvlaran/npr/vertex"
)

func (a *app) newFourQuarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fourquark [params.yaml]",
		Short: "Renormalize the ΔS=2 four-quark operators at one momentum",
		Long: `Projects the 5×5 four-quark vertex matrix in the gamma scheme, or the
q-slash scheme when qslash_4q is set, normalises it by the tree matrix,
divides by Λ_V² and Λ_A² read from LambdaV_file and LambdaA_file, and
inverts to Z_ij/Z_V² and Z_ij/Z_A².

Every matrix entry i,j is written as its own dataset, for example
Lambda01_gq_Vsq: projector scheme g, Λ_V/Λ_A scheme q.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runE(a, a.runFourQuark),
	}
}

func (a *app) runFourQuark(cmd *cobra.Command, p *config.FourQuark) (*outputs, error) {
	ctx := cmd.Context()
	zv, err := lambdaScheme(p.LambdaVFile, p.LambdaAFile)
	if err != nil {
		return nil, err
	}
	scheme := fourquark.SchemeGamma
	if p.QSlash {
		scheme = fourquark.SchemeQSlash
	}

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
	fq, err := store.LoadFourQuark(ctx, p.VertexFile, "fourquark", cfgs, a.workers)
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
	rFQ, err := resample(fq, kind, p.Ensemble)
	if err != nil {
		return nil, fmt.Errorf("fourquark: %w", err)
	}

	lambdaV, err := readLambda(ctx, p.LambdaVFile, "LambdaV"+zv.Suffix(), kind)
	if err != nil {
		return nil, err
	}
	lambdaA, err := readLambda(ctx, p.LambdaAFile, "LambdaA"+zv.Suffix(), kind)
	if err != nil {
		return nil, err
	}

	in := fourquark.Input{
		PropIn:   rIn,
		PropOut:  rOut,
		Vertices: rFQ,
		LambdaV:  lambdaV,
		LambdaA:  lambdaA,
		Scheme:   scheme,
		P1:       vertex.LatticeMomentum(p.Momentum1, p.Twist1, p.LatticeSize),
		P2:       vertex.LatticeMomentum(p.Momentum2, p.Twist2, p.LatticeSize),
	}
	a.log.Info("renormalising",
		zap.Stringer("scheme", scheme),
		zap.Stringer("normalisation", zv),
		zap.Float64s("p1", in.P1),
		zap.Float64s("p2", in.P2),
	)
	res, err := fourquark.Renormalise(ctx, in, fourquark.WithWorkers(a.workers), fourquark.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	out := &outputs{}
	tag := scheme.Suffix() + zv.Suffix()
	for _, set := range []struct {
		prefix, suffix string
		d              *distribution.Distribution[*matrix.Dense]
	}{
		{"Lambda", "", res.Lambda},
		{"Lambda", "_Vsq", res.LambdaVsq},
		{"Lambda", "_Asq", res.LambdaAsq},
		{"Lambda", "_aveVAsq", res.LambdaAve},
		{"Z", "_Vsq", res.ZVsq},
		{"Z", "_Asq", res.ZAsq},
		{"Z", "_aveVAsq", res.ZAve},
	} {
		grid, err := fourquark.Entries(set.d)
		if err != nil {
			return nil, err
		}
		for i, row := range grid {
			for j, e := range row {
				out.add(a.log, p.OutputDir, fmt.Sprintf("%s%d%d_%s%s", set.prefix, i, j, tag, set.suffix), e)
			}
		}
	}

	return out, nil
}

// lambdaScheme reads the normalisation scheme off the Λ_V and Λ_A file
// names, LambdaVg.db or LambdaVq.db, and requires the two to agree.
func lambdaScheme(vFile, aFile string) (fourquark.Scheme, error) {
	suffix := func(path string) string {
		stem := strings.TrimSuffix(filepath.Base(path), ".db")
		if stem == "" {
			return ""
		}
		return stem[len(stem)-1:]
	}
	v, err := fourquark.ParseScheme(suffix(vFile))
	if err != nil {
		return 0, fmt.Errorf("%w: LambdaV_file %s must end in g or q", config.ErrInvalidParameter, vFile)
	}
	if a, err := fourquark.ParseScheme(suffix(aFile)); err != nil || a != v {
		return 0, fmt.Errorf("%w: LambdaA_file %s must be in the %s scheme of LambdaV_file", config.ErrInvalidParameter, aFile, v)
	}

	return v, nil
}

func readLambda(ctx context.Context, path, name string, kind distribution.Kind) (*distribution.Distribution[vecops.Real], error) {
	if filepath.Ext(path) != ".db" {
		path += ".db"
	}
	values, err := store.ReadResult(ctx, path, name)
	if err != nil {
		return nil, err
	}

	return distribution.NewResampled(vecops.Reals(values), kind)
}
