// SPDX-License-Identifier: MIT
package distribution_test

import (
	"fmt"

	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/vecops"
)

// ExampleDistribution_Jackknife resamples four measurements and reports the
// central value with its jackknife error, the standard error of the mean.
func ExampleDistribution_Jackknife() {
	raw, err := distribution.New(vecops.Reals([]float64{1, 2, 3, 4}))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	jk, err := raw.Jackknife()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s := distribution.Summarize(jk)
	fmt.Printf("%s: %.4f ± %.4f from %d samples\n", s.Kind, s.Central, s.Std, s.N)
	// Output:
	// jackknife: 2.5000 ± 0.6455 from 4 samples
}

// ExampleDiv divides two correlated distributions sample by sample; the
// ratio of fully correlated data carries no error.
func ExampleDiv() {
	num, _ := distribution.New(vecops.Reals([]float64{2, 4, 6}))
	den, _ := distribution.New(vecops.Reals([]float64{1, 2, 3}))
	jn, _ := num.Jackknife()
	jd, _ := den.Jackknife()

	ratio, err := distribution.Div(jn, jd)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s := distribution.Summarize(ratio)
	fmt.Printf("%.4f ± %.4f\n", s.Central, s.Std)
	// Output:
	// 2.0000 ± 0.0000
}
