// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/npr/matrix"
)

// ExampleInverse inverts a small tree-level projection matrix.
func ExampleInverse() {
	tree, _ := matrix.NewFromRows([][]float64{{4, 0}, {0, 2}})
	inv, _ := matrix.Inverse(tree)
	fmt.Print(inv)
	// Output:
	// [0.25, 0]
	// [0, 0.5]
}
