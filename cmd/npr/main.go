// SPDX-License-Identifier: MIT

// Command npr runs the non-perturbative renormalization analysis: bilinear
// and four-quark vertex renormalization per momentum point, chiral
// extrapolation fits across momenta, Z-factor assembly and summary tables.
//
// Every subcommand takes one YAML parameter file. Run without it, a
// subcommand writes template.yaml listing the keys it needs and exits
// non-zero.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd(&app{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "npr:", err)
		os.Exit(1)
	}
}
