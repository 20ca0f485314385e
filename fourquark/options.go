// SPDX-License-Identifier: MIT

package fourquark

import "go.uber.org/zap"

// Option tunes the distribution-level operations.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers caps the number of goroutines; n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger attaches a logger for progress and diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
