// SPDX-License-Identifier: MIT

package fitter

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Default solver settings.
const (
	DefaultMaxIterations = 20
	DefaultXTol          = 1e-8
	DefaultGTol          = 1e-8
	DefaultFTol          = 1e-10

	initialLambda = 1e-3
	maxLambda     = 1e16
	minDiag       = 1e-300
)

// Status reports why Solve stopped.
type Status int

const (
	// StatusRunning is the zero value; Solve never returns it.
	StatusRunning Status = iota
	// StatusSmallStep: every parameter moved by less than xtol relative.
	StatusSmallStep
	// StatusSmallGradient: the scaled gradient fell below gtol.
	StatusSmallGradient
	// StatusSmallReduction: χ² changed by less than ftol relative.
	StatusSmallReduction
	// StatusMaxIterations: the iteration cap was reached.
	StatusMaxIterations
	// StatusStalled: no damping could reduce χ².
	StatusStalled
)

// String returns a short human-readable reason.
func (s Status) String() string {
	switch s {
	case StatusSmallStep:
		return "small step size"
	case StatusSmallGradient:
		return "small gradient"
	case StatusSmallReduction:
		return "small chi-square reduction"
	case StatusMaxIterations:
		return "iteration cap reached"
	case StatusStalled:
		return "stalled"
	default:
		return "running"
	}
}

// Converged reports whether the status is a convergence test.
func (s Status) Converged() bool {
	switch s {
	case StatusSmallStep, StatusSmallGradient, StatusSmallReduction:
		return true
	default:
		return false
	}
}

// Settings bounds a single Solve. A zero FTol means DefaultFTol.
type Settings struct {
	MaxIterations int
	XTol          float64
	GTol          float64
	FTol          float64
}

// DefaultSettings returns the 20-step configuration with xtol and gtol 1e-8
// and ftol 1e-10.
func DefaultSettings() Settings {
	return Settings{MaxIterations: DefaultMaxIterations, XTol: DefaultXTol, GTol: DefaultGTol, FTol: DefaultFTol}
}

// Result is the outcome of fitting one sample.
type Result struct {
	Params     []float64
	Errors     []float64 // sqrt(diag((JᵀWJ)⁻¹)); nil when the normal matrix is singular
	ChiSq      float64
	Iterations int
	Status     Status
	Err        error // ErrNotConverged unless Status.Converged()
}

// problem is the weighted least-squares objective for one sample.
type problem struct {
	model Model
	x, y  []float64
	sqrtW []float64
}

// residuals fills r_i = sqrt(w_i)·(f(x_i; p) − y_i) and returns Σ r_i².
func (pr *problem) residuals(p, r []float64) float64 {
	var chi float64
	for i, xi := range pr.x {
		r[i] = pr.sqrtW[i] * (pr.model.Eval(p, xi) - pr.y[i])
		chi += r[i] * r[i]
	}

	return chi
}

// jacobian fills J_ik = sqrt(w_i)·∂f/∂p_k at x_i.
func (pr *problem) jacobian(p []float64, J *mat.Dense) {
	grad := make([]float64, len(p))
	for i, xi := range pr.x {
		pr.model.Grad(p, xi, grad)
		for k, g := range grad {
			J.Set(i, k, pr.sqrtW[i]*g)
		}
	}
}

// Solve minimises Σ w_i (f(x_i; p) − y_i)² over p by Levenberg–Marquardt,
// starting from p0. Invalid input is reported as an error; non-convergence
// is reported through Result.Err so the caller can aggregate it.
//
// Each iteration forms the normal equations (JᵀJ + λ·diag(JᵀJ))·δ = −Jᵀr.
// An accepted step divides λ by 10. A rejected trial multiplies λ by 10 and
// retries within the same iteration; when λ overflows the fit has stalled.
// Reaching the minimum ends the fit as converged: an accepted or rejected
// trial whose χ² differs from the current one by at most ftol·χ², or a
// rejected step already below the xtol bound.
//
// Complexity: O(iter · n·m²) for n points and m parameters.
func Solve(model Model, x, y, w, p0 []float64, s Settings) (Result, error) {
	n, m := len(x), model.NumParams()
	switch {
	case len(y) != n || len(w) != n:
		return Result{}, fitErrorf(opSolve, fmt.Errorf("x %d, y %d, w %d: %w", n, len(y), len(w), ErrDimensionMismatch))
	case len(p0) != m:
		return Result{}, fitErrorf(opSolve, fmt.Errorf("params %d, model wants %d: %w", len(p0), m, ErrDimensionMismatch))
	case n < m:
		return Result{}, fitErrorf(opSolve, fmt.Errorf("%d points, %d params: %w", n, m, ErrTooFewPoints))
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = DefaultMaxIterations
	}
	if s.FTol <= 0 {
		s.FTol = DefaultFTol
	}

	pr := &problem{model: model, x: x, y: y, sqrtW: make([]float64, n)}
	for i, wi := range w {
		pr.sqrtW[i] = math.Sqrt(wi)
	}

	p := append([]float64(nil), p0...)
	trial := make([]float64, m)
	r := make([]float64, n)
	rTrial := make([]float64, n)
	chi := pr.residuals(p, r)
	if math.IsNaN(chi) || math.IsInf(chi, 0) {
		return Result{
			Params: p,
			ChiSq:  chi,
			Status: StatusStalled,
			Err:    fmt.Errorf("non-finite residuals at the starting point: %w", ErrNotConverged),
		}, nil
	}

	J := mat.NewDense(n, m, nil)
	var (
		jtj   mat.Dense
		jtr   mat.VecDense
		delta mat.VecDense
	)
	aug := mat.NewDense(m, m, nil)
	lambda := initialLambda

	res := Result{Status: StatusMaxIterations}
	for iter := 1; iter <= s.MaxIterations; iter++ {
		res.Iterations = iter
		pr.jacobian(p, J)
		jtj.Mul(J.T(), J)
		jtr.MulVec(J.T(), mat.NewVecDense(n, r))

		if gradientSmall(&jtr, p, chi, s.GTol) {
			res.Status = StatusSmallGradient
			res.Iterations = iter - 1
			break
		}

		accepted, done := false, false
		for !accepted && !done && lambda <= maxLambda {
			aug.Copy(&jtj)
			for k := 0; k < m; k++ {
				aug.Set(k, k, jtj.At(k, k)+lambda*math.Max(jtj.At(k, k), minDiag))
			}
			if err := delta.SolveVec(aug, &jtr); err != nil {
				lambda *= 10
				continue
			}
			for k := range p {
				trial[k] = p[k] - delta.AtVec(k)
			}
			chiTrial := pr.residuals(trial, rTrial)
			small := stepSmall(&delta, p, s.XTol)
			switch {
			case chiTrial < chi:
				accepted = true
				lambda /= 10
				flat := chi-chiTrial <= s.FTol*chi
				copy(p, trial)
				copy(r, rTrial)
				chi = chiTrial
				if small {
					res.Status = StatusSmallStep
					done = true
				} else if flat {
					res.Status = StatusSmallReduction
					done = true
				}
			case small:
				res.Status = StatusSmallStep
				done = true
			case chiTrial-chi <= s.FTol*chi:
				res.Status = StatusSmallReduction
				done = true
			default:
				lambda *= 10
			}
		}
		if done {
			break
		}
		if !accepted {
			res.Status = StatusStalled
			break
		}
	}

	res.Params = p
	res.ChiSq = chi
	res.Errors = paramErrors(pr, p, J)
	if !res.Status.Converged() {
		res.Err = fmt.Errorf("%s after %d iterations: %w", res.Status, res.Iterations, ErrNotConverged)
	}

	return res, nil
}

// gradientSmall is the scaled gradient test max_k |g_k|·max(|p_k|,1) / max(½χ²,1) ≤ gtol.
func gradientSmall(g *mat.VecDense, p []float64, chi, gtol float64) bool {
	norm := math.Max(0.5*chi, 1)
	for k := range p {
		if !(math.Abs(g.AtVec(k))*math.Max(math.Abs(p[k]), 1)/norm <= gtol) {
			return false
		}
	}

	return true
}

// stepSmall is the relative step test |δ_k| ≤ xtol·(|p_k| + xtol).
func stepSmall(delta *mat.VecDense, p []float64, xtol float64) bool {
	for k := range p {
		if !(math.Abs(delta.AtVec(k)) <= xtol*(math.Abs(p[k])+xtol)) {
			return false
		}
	}

	return true
}

// paramErrors returns sqrt(diag((JᵀJ)⁻¹)) at p, or nil if JᵀJ is singular.
func paramErrors(pr *problem, p []float64, J *mat.Dense) []float64 {
	pr.jacobian(p, J)
	var jtj, cov mat.Dense
	jtj.Mul(J.T(), J)
	if err := cov.Inverse(&jtj); err != nil {
		return nil
	}
	_, m := J.Dims()
	out := make([]float64, m)
	for k := range out {
		out[k] = math.Sqrt(math.Abs(cov.At(k, k)))
	}

	return out
}
