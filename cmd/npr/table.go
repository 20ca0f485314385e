// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/npr/config"
	"github.com/katalvlaran/npr/distribution"
	"github.com/katalvlaran/npr/fourquark"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
)

var bilinearVertices = []string{"Sg", "Pg", "Vg", "Ag", "Vq", "Aq"}

func (a *app) newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table [params.yaml]",
		Short: "Print central values and errors across momenta",
		Long: `Prints one row per momentum: p followed by central value and error of
<data_prefix><vertex><data_suffix> for every vertex. Bilinear tables use the
vertices Sg Pg Vg Ag Vq Aq, four-quark tables the matrix entries 00 to 44.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runE(a, a.runTable),
	}
}

func (a *app) runTable(cmd *cobra.Command, p *config.Table) (*outputs, error) {
	ctx := cmd.Context()
	kind := distribution.Jackknife
	if p.Resampling != "" {
		k, err := distribution.ParseKind(p.Resampling)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	vertices := bilinearVertices
	if p.DataType == "fourquark" {
		vertices = nil
		for i := 0; i < fourquark.Nop; i++ {
			for j := 0; j < fourquark.Nop; j++ {
				vertices = append(vertices, strconv.Itoa(i)+strconv.Itoa(j))
			}
		}
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	fmt.Fprintf(w, "# p\t%s\n", strings.Join(vertices, "\terr\t")+"\terr")
	for i := 0; i < p.Len(); i++ {
		pi, err := p.P(i)
		if err != nil {
			return nil, err
		}
		row := make([]string, 0, 2*len(vertices)+1)
		row = append(row, strconv.FormatFloat(pi, 'f', 6, 64))
		for _, v := range vertices {
			name := p.DataPrefix + v + p.DataSuffix
			values, err := store.LoadResult(ctx, p.Dir(i), name)
			if err != nil {
				return nil, err
			}
			d, err := distribution.NewResampled(vecops.Reals(values), kind)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			s := distribution.Summarize(d)
			row = append(row, strconv.FormatFloat(s.Central, 'f', 6, 64), strconv.FormatFloat(s.Std, 'f', 6, 64))
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return &outputs{}, w.Flush()
}
