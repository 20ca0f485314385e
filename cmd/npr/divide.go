// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/npr/config"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
)

func (a *app) newDivideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divide [params.yaml]",
		Short: "Form num/(den1·den2) value by value in every momentum directory",
		Long: `For every momentum directory <dir>/Lambda_m<mass>_m<mass>_p0nn0_pnn00_tw<twist>
reads numName from numDir, den1Name from den1Dir and den2Name from den2Dir and
writes num/(den1·den2) as outputName under outputDir. A second denominator
naming the same dataset as the first is read once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runE(a, a.runDivide),
	}
}

func (a *app) runDivide(cmd *cobra.Command, p *config.Divide) (*outputs, error) {
	ctx := cmd.Context()
	out := &outputs{}
	for i := range p.MomentumList {
		sub := config.MomentumDir("", p.Mass, p.MomentumList[i], p.TwistList[i])
		read := func(dir, name string) (vecops.Vector, error) {
			v, err := store.LoadResult(ctx, filepath.Join(dir, sub), name)
			return vecops.Vector(v), err
		}

		num, err := read(p.NumDir, p.NumName)
		if err != nil {
			return nil, err
		}
		den1, err := read(p.Den1Dir, p.Den1Name)
		if err != nil {
			return nil, err
		}
		den2 := den1
		if p.Den2Name != p.Den1Name || p.Den2Dir != p.Den1Dir {
			if den2, err = read(p.Den2Dir, p.Den2Name); err != nil {
				return nil, err
			}
		}

		den, err := den1.Mul(den2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sub, err)
		}
		ratio, err := num.Div(den)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sub, err)
		}
		path := store.ResultPath(filepath.Join(p.OutputDir, sub), p.OutputName)
		out.addValues(path, p.OutputName, ratio)
		a.log.Info("ratio", zap.String("momentum", sub), zap.Int("values", len(ratio)))
	}

	return out, nil
}
