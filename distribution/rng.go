// SPDX-License-Identifier: MIT

package distribution

import "math/rand"

// DefaultSeed is used whenever a caller passes seed 0 or a nil generator.
const DefaultSeed int64 = 1

// NewRand returns a deterministic generator for bootstrap resampling.
// seed == 0 selects DefaultSeed. A *rand.Rand is not safe for concurrent use;
// create one per goroutine.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
