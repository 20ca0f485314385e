// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/npr/config"
	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/fitter"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
)

// fitCurvePoints is the number of points of the fit curve section.
const fitCurvePoints = 1001

func (a *app) newExtrapolateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extrapolate [params.yaml]",
		Short: "Fit a projected vertex across momenta and extrapolate",
		Long: `Reads dataset vertex of <file_name>.db in every momentum directory,
fits the momenta inside p_range sample by sample with fitfunction and
evaluates the fit at each p_extrap.

Writes <output_dir>/<file_name>.txt with three sections (data, extrapolated,
fit) of "p central std" rows, and each extrapolated distribution as
<output_dir>/<file_name>_p<p>GeV.db. Models: ` + fmt.Sprint(fitter.Names()),
		Args: cobra.MaximumNArgs(1),
		RunE: runE(a, a.runExtrapolate),
	}
}

func (a *app) runExtrapolate(cmd *cobra.Command, p *config.Extrapolate) (*outputs, error) {
	ctx := cmd.Context()
	kind, err := distribution.ParseKind(p.Resampling)
	if err != nil {
		return nil, err
	}
	model, err := fitter.Lookup(p.FitFunction)
	if err != nil {
		return nil, fmt.Errorf("%w: fitfunction: %w", config.ErrInvalidParameter, err)
	}
	policy := fitter.Strict
	if p.Failure == "drop" {
		policy = fitter.DropFailed
	}

	var (
		text bytes.Buffer
		xs   []float64
		ys   []*distribution.Distribution[vecops.Real]
	)
	text.WriteString("data\n")
	for i := 0; i < p.Len(); i++ {
		pi, err := p.P(i)
		if err != nil {
			return nil, err
		}
		values, err := store.ReadResult(ctx, filepath.Join(p.Dir(i), p.FileName+".db"), p.Vertex)
		if err != nil {
			return nil, err
		}
		d, err := distribution.NewResampled(vecops.Reals(values), kind)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Dir(i), err)
		}
		writeRow(&text, pi, d)
		a.log.Debug("momentum read", zap.Float64("p", pi), zap.String("dir", p.Dir(i)))

		if pi > p.PRange[0] && pi < p.PRange[1] {
			xs = append(xs, pi)
			ys = append(ys, d)
		}
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: no momentum inside p_range %v", config.ErrInvalidParameter, p.PRange)
	}

	y, err := distribution.JoinReal(ys)
	if err != nil {
		return nil, err
	}
	f, err := fitter.New(y, xs,
		fitter.WithLogger(a.log),
		fitter.WithWorkers(a.workers),
		fitter.WithFailurePolicy(policy),
	)
	if err != nil {
		return nil, err
	}
	if err := f.AssignModel(model, nil); err != nil {
		return nil, err
	}
	if err := f.FitAll(ctx); err != nil {
		return nil, err
	}

	chi, err := f.ChiSqDistribution()
	if err != nil {
		return nil, err
	}
	params, err := f.ParamsDistribution()
	if err != nil {
		return nil, err
	}
	paramStd, err := distribution.Std(params)
	if err != nil {
		return nil, err
	}
	cs := distribution.Summarize(chi)
	a.log.Info("fit",
		zap.String("model", model.Name()),
		zap.Int("points", len(xs)),
		zap.Float64("chisq", cs.Central),
		zap.Float64("chisq_std", cs.Std),
		zap.Float64s("params", params.Central()),
		zap.Float64s("params_std", paramStd),
	)

	out := &outputs{}
	text.WriteString("extrapolated\n")
	for _, pe := range p.PExtrap {
		ext, err := f.ExtrapolateDistribution(pe)
		if err != nil {
			return nil, err
		}
		writeRow(&text, pe, ext)
		file := p.FileName + "_p" + strconv.FormatFloat(pe, 'f', 6, 64) + "GeV"
		out.addAs(a.log, store.ResultPath(p.OutputDir, file), p.Vertex, ext)
	}

	text.WriteString("fit\n")
	lo, hi := min(slices.Min(xs), p.PRange[0]), max(slices.Max(xs), p.PRange[1])
	skipped := 0
	for i := 0; i < fitCurvePoints; i++ {
		x := lo + float64(i)/float64(fitCurvePoints-1)*(hi-lo)
		d, err := f.ExtrapolateDistribution(x)
		if err != nil {
			return nil, err
		}
		// Inverse-power models diverge at p = 0.
		if s := distribution.Summarize(d); !finite(s.Central) || !finite(s.Std) {
			skipped++
			continue
		}
		writeRow(&text, x, d)
	}
	if skipped > 0 {
		a.log.Debug("non-finite fit curve points skipped", zap.Int("points", skipped))
	}
	out.addText(filepath.Join(p.OutputDir, p.FileName+".txt"), text.Bytes())

	return out, nil
}

func writeRow(buf *bytes.Buffer, x float64, d *distribution.Distribution[vecops.Real]) {
	s := distribution.Summarize(d)
	fmt.Fprintf(buf, "%g\t%g\t%g\n", x, s.Central, s.Std)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
