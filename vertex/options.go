// SPDX-License-Identifier: MIT

package vertex

// Option tunes the distribution-level operations.
type Option func(*options)

type options struct {
	workers int
}

// WithWorkers caps the number of goroutines used per call; n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
