// SPDX-License-Identifier: MIT

package fitter

import (
	"fmt"
	"math"
	"sort"
)

// Model is a scalar function of one abscissa with a parameter vector.
type Model interface {
	// Name identifies the model in logs and output.
	Name() string
	// NumParams is the length of the parameter vector.
	NumParams() int
	// Eval returns f(x; p).
	Eval(p []float64, x float64) float64
	// Grad writes ∂f/∂p_k (x; p) into grad, which has NumParams entries.
	Grad(p []float64, x float64, grad []float64)
}

// powerModel is f(x) = p0 + Σ_k p_{k+1} x^{e_k}.
type powerModel struct {
	name string
	exps []float64
}

func (m powerModel) Name() string   { return m.name }
func (m powerModel) NumParams() int { return len(m.exps) + 1 }

func (m powerModel) Eval(p []float64, x float64) float64 {
	f := p[0]
	for k, e := range m.exps {
		f += p[k+1] * math.Pow(x, e)
	}

	return f
}

func (m powerModel) Grad(_ []float64, x float64, grad []float64) {
	grad[0] = 1
	for k, e := range m.exps {
		grad[k+1] = math.Pow(x, e)
	}
}

// registry holds the named extrapolation families in momentum p.
var registry = map[string]powerModel{
	"inv_p2":        {"inv_p2", []float64{-2}},
	"inv_p6":        {"inv_p6", []float64{-6}},
	"inv_p2_inv_p6": {"inv_p2_inv_p6", []float64{-2, -6}},
	"p2_inv_p2":     {"p2_inv_p2", []float64{2, -2}},
	"p2":            {"p2", []float64{2}},
	"p6":            {"p6", []float64{6}},
	"p2_p6":         {"p2_p6", []float64{2, 6}},
	"polysq":        {"polysq", []float64{2, 4, 6}},
	"inv_polysq":    {"inv_polysq", []float64{-2, -4, -6}},
}

// Lookup returns the named model family.
func Lookup(name string) (Model, error) {
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownModel)
	}

	return m, nil
}

// Names lists the registered model names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// FuncModel adapts user-supplied functions to Model. When DF is nil the
// gradient is taken by forward differences.
type FuncModel struct {
	ModelName string
	N         int
	F         func(p []float64, x float64) float64
	DF        func(p []float64, x float64, grad []float64)
}

func (m FuncModel) Name() string                        { return m.ModelName }
func (m FuncModel) NumParams() int                      { return m.N }
func (m FuncModel) Eval(p []float64, x float64) float64 { return m.F(p, x) }

func (m FuncModel) Grad(p []float64, x float64, grad []float64) {
	if m.DF != nil {
		m.DF(p, x, grad)
		return
	}
	f0 := m.F(p, x)
	q := make([]float64, len(p))
	copy(q, p)
	for k := range p {
		h := math.Sqrt(2.220446049250313e-16) * math.Max(math.Abs(p[k]), 1)
		q[k] = p[k] + h
		grad[k] = (m.F(q, x) - f0) / h
		q[k] = p[k]
	}
}
