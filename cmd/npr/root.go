// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/npr/config"
	"github.com/katalvlaran/npr/distribution"
)

// errNoParams is returned after a subcommand ran without a parameter file
// and wrote the template instead.
var errNoParams = errors.New("no parameter file given")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	verbose     bool
	workers     int
	templateDir string

	// logger is built in PersistentPreRunE unless already set.
	logger *zap.Logger
	log    *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "npr",
		Short: "Non-perturbative renormalization of lattice QCD vertex functions",
		Long: `npr turns per-configuration propagators and vertex functions into
renormalization constants with statistical errors.

  bilinear     amputate and project quark bilinears at one momentum
  fourquark    renormalize the ΔS=2 four-quark operators at one momentum
  extrapolate  fit a projected vertex across momenta and extrapolate
  zfactors     assemble Z_S, Z_P, Z_T, Z_V and Z_m from projected vertices
  table        print central values and errors across momenta
  divide       form num/(den1·den2) per momentum`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				cfg := zap.NewProductionConfig()
				if a.verbose {
					cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				l, err := cfg.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				a.logger = l
			}
			a.log = a.logger.With(zap.String("run", uuid.NewString()), zap.String("command", cmd.Name()))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0, "per-sample parallelism (0 = GOMAXPROCS)")

	root.AddCommand(
		a.newBilinearCmd(),
		a.newFourQuarkCmd(),
		a.newExtrapolateCmd(),
		a.newZFactorsCmd(),
		a.newTableCmd(),
		a.newDivideCmd(),
	)

	return root
}

// loadParams decodes args[0] into params. Without an argument it writes
// template.yaml with the keys params needs and returns errNoParams.
func (a *app) loadParams(cmd *cobra.Command, args []string, params any) error {
	if len(args) > 0 {
		return config.Load(args[0], params)
	}
	keys, err := config.Keys(params)
	if err != nil {
		return err
	}
	path := filepath.Join(a.templateDir, config.TemplateName)
	if err := config.WriteTemplate(path, keys); err != nil {
		return err
	}
	a.log.Warn("wrote parameter template", zap.String("path", path))

	return fmt.Errorf("usage: %s <params.yaml>; fill in %s: %w", cmd.CommandPath(), path, errNoParams)
}

// runE adapts a driver to cobra: parameters are loaded, the driver runs,
// and only then are its outputs written.
func runE[P any](a *app, run func(*cobra.Command, *P) (*outputs, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		params := new(P)
		if err := a.loadParams(cmd, args, params); err != nil {
			return err
		}
		out, err := run(cmd, params)
		if err != nil {
			a.log.Error("run failed", zap.Error(err))
			return err
		}

		return out.flush(cmd.Context(), a.log)
	}
}

// resampleKind is bootstrap when nBoot > 0, jackknife otherwise.
func resampleKind(nBoot int) distribution.Kind {
	if nBoot > 0 {
		return distribution.Bootstrap
	}

	return distribution.Jackknife
}
