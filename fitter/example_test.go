// SPDX-License-Identifier: MIT
package fitter_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/fitter"
	"github.com/katalvlaran/npr/vecops"
)

// ExampleFitter fits p0 + p1/x² to every jackknife sample and extrapolates
// to large x, where only p0 survives.
func ExampleFitter() {
	x := []float64{1, 2, 3, 4}
	y := make(vecops.Vector, len(x))
	for i, xi := range x {
		y[i] = 0.5 + 2/(xi*xi)
	}
	raw, _ := distribution.New([]vecops.Vector{y, y, y})
	jk, _ := raw.Jackknife()

	model, err := fitter.Lookup("inv_p2")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	f, _ := fitter.New(jk, x)
	if err := f.AssignModel(model, nil); err != nil {
		fmt.Println("error:", err)

		return
	}
	if err := f.FitAll(context.Background()); err != nil {
		fmt.Println("error:", err)

		return
	}
	params, _ := f.ParamsDistribution()
	at, _ := f.ExtrapolateDistribution(1e6)
	p := params.Central()
	fmt.Printf("p0=%.3f p1=%.3f f(∞)=%.3f\n", p[0], p[1], float64(at.Central()))
	// Output:
	// p0=0.500 p1=2.000 f(∞)=0.500
}
