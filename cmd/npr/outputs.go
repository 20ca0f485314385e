// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
)

type dataset struct {
	path, name string
	values     []float64
}

type textFile struct {
	path string
	data []byte
}

// outputs stages everything a run writes. Nothing touches the disk until
// flush, so a failing run leaves no partial results behind.
type outputs struct {
	datasets []dataset
	texts    []textFile
}

// add stages d as result dataset name of <dir>/<name>.db.
func (o *outputs) add(log *zap.Logger, dir, name string, d *distribution.Distribution[vecops.Real]) {
	o.addAs(log, store.ResultPath(dir, name), name, d)
}

// addAs stages d as result dataset name of the file at path and logs its
// central value and error.
func (o *outputs) addAs(log *zap.Logger, path, name string, d *distribution.Distribution[vecops.Real]) {
	s := distribution.Summarize(d)
	log.Info("result",
		zap.String("name", name),
		zap.Float64("central", s.Central),
		zap.Float64("std", s.Std),
		zap.Int("samples", s.N),
		zap.Stringer("kind", s.Kind),
	)
	o.addValues(path, name, vecops.Floats(d.Values()))
}

// addValues stages raw values, central value included when resampled.
func (o *outputs) addValues(path, name string, values []float64) {
	o.datasets = append(o.datasets, dataset{path: path, name: name, values: values})
}

func (o *outputs) addText(path string, data []byte) {
	o.texts = append(o.texts, textFile{path: path, data: data})
}

func (o *outputs) flush(ctx context.Context, log *zap.Logger) error {
	if o == nil {
		return nil
	}
	for _, d := range o.datasets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := store.WriteResult(ctx, d.path, d.name, d.values); err != nil {
			return fmt.Errorf("write %s: %w", d.name, err)
		}
		log.Debug("dataset written", zap.String("path", d.path), zap.String("name", d.name))
	}
	for _, t := range o.texts {
		if err := os.MkdirAll(filepath.Dir(t.path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(t.path, t.data, 0o644); err != nil {
			return err
		}
		log.Debug("table written", zap.String("path", t.path))
	}
	log.Info("outputs written", zap.Int("datasets", len(o.datasets)), zap.Int("tables", len(o.texts)))

	return nil
}
