// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/npr/config"
	sc "github.com/katalvlaran/npr/spincolour"
	"github.com/katalvlaran/npr/store"
	"github.com/katalvlaran/npr/vecops"
)

const tol = 1e-9

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{logger: zaptest.NewLogger(t), templateDir: t.TempDir()}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeParams(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestSubcommandsWriteTemplateWithoutParams(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"bilinear", "fourquark", "extrapolate", "zfactors", "table", "divide"} {
		t.Run(name, func(t *testing.T) {
			a := &app{logger: zaptest.NewLogger(t), templateDir: t.TempDir()}
			cmd := newRootCmd(a)
			cmd.SetArgs([]string{name})
			err := cmd.ExecuteContext(context.Background())
			require.ErrorIs(t, err, errNoParams)

			data, err := os.ReadFile(filepath.Join(a.templateDir, config.TemplateName))
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestTemplateListsRequiredKeys(t *testing.T) {
	t.Parallel()
	a := &app{logger: zaptest.NewLogger(t), templateDir: t.TempDir()}
	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"zfactors"})
	require.Error(t, cmd.ExecuteContext(context.Background()))

	data, err := os.ReadFile(filepath.Join(a.templateDir, config.TemplateName))
	require.NoError(t, err)
	for _, key := range []string{"LambdaDir", "ZA", "ZAerror", "scheme", "outputDir"} {
		assert.Contains(t, string(data), key+":")
	}
	assert.NotContains(t, string(data), "seed")
}

// writeEnsemble stores identity propagators and tree-level vertices for
// every configuration.
func writeEnsemble(t *testing.T, dir string, cfgs []int, fourQuark bool) {
	t.Helper()
	ctx := context.Background()
	bil := make(vecops.Seq[sc.Matrix], sc.NumGammas)
	fq := make(vecops.Seq[sc.Tensor4], sc.NumGammas)
	for g := range bil {
		bil[g] = sc.Gamma(g).Matrix()
		if fourQuark {
			fq[g] = sc.Outer(bil[g], bil[g])
		}
	}
	for _, cfg := range cfgs {
		require.NoError(t, store.SavePropagator(ctx, store.ConfigPath(filepath.Join(dir, "prop1"), cfg), "SinAve", sc.Identity()))
		require.NoError(t, store.SavePropagator(ctx, store.ConfigPath(filepath.Join(dir, "prop2"), cfg), "SoutAve", sc.Identity()))
		if fourQuark {
			require.NoError(t, store.SaveFourQuark(ctx, store.ConfigPath(filepath.Join(dir, "fourquark"), cfg), "fourquark", fq))
		} else {
			require.NoError(t, store.SaveBilinears(ctx, store.ConfigPath(filepath.Join(dir, "bilinear"), cfg), "bilinear", bil))
		}
	}
}

func TestBilinear_TreeLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		bootstraps int
		wantLen    int
	}{
		{"jackknife", 0, 3},
		{"bootstrap", 5, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeEnsemble(t, dir, []int{100, 140}, false)
			out := filepath.Join(dir, "out")
			params := writeParams(t, dir, fmt.Sprintf(`
latt_size: [16, 16, 16, 32]
momentum: [0, 2, 2, 0]
twist: [0, 0.5, 0.5, 0]
conf_start: 100
conf_inc: 40
conf_end: 180
bootstraps: %d
prop1_file: %s
prop2_file: %s
vertex_file: %s
output_dir: %s
`, tc.bootstraps, filepath.Join(dir, "prop1"), filepath.Join(dir, "prop2"), filepath.Join(dir, "bilinear"), out))

			_, err := execute(t, "--workers", "2", "bilinear", params)
			require.NoError(t, err)

			ctx := context.Background()
			for _, name := range []string{"LambdaSg", "LambdaPg", "LambdaVg", "LambdaAg", "LambdaTg", "LambdaVq", "LambdaAq"} {
				got, err := store.LoadResult(ctx, out, name)
				require.NoError(t, err, name)
				require.Len(t, got, tc.wantLen, name)
				for _, v := range got {
					assert.InDelta(t, 1, v, tol, name)
				}
			}
			for _, name := range []string{"LambdaSmPg", "LambdaVmAg", "LambdaVmAq"} {
				got, err := store.LoadResult(ctx, out, name)
				require.NoError(t, err, name)
				assert.InDelta(t, 0, got[len(got)-1], tol, name)
			}
		})
	}
}

func TestBilinear_FailedRunWritesNothing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeEnsemble(t, dir, []int{100}, false)
	out := filepath.Join(dir, "out")
	params := writeParams(t, dir, fmt.Sprintf(`
latt_size: [16, 16, 16, 32]
momentum: [0, 2, 2, 0]
twist: [0, 0, 0, 0]
conf_start: 100
conf_inc: 40
conf_end: 180
bootstraps: 0
prop1_file: %s
prop2_file: %s
vertex_file: %s
output_dir: %s
`, filepath.Join(dir, "prop1"), filepath.Join(dir, "prop2"), filepath.Join(dir, "bilinear"), out))

	_, err := execute(t, "bilinear", params)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFourQuark_TreeLevel(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	writeEnsemble(t, dir, []int{1, 2}, true)
	lambdaDir := filepath.Join(dir, "bilinear_out")
	require.NoError(t, store.SaveResult(ctx, lambdaDir, "LambdaVg", constant(3, 1)))
	require.NoError(t, store.SaveResult(ctx, lambdaDir, "LambdaAg", constant(3, 2)))
	out := filepath.Join(dir, "out")
	params := writeParams(t, dir, fmt.Sprintf(`
latt_size: [16, 16, 16, 32]
momentum1: [0, 2, 2, 0]
twist1: [0, 0, 0, 0]
momentum2: [2, 2, 0, 0]
twist2: [0, 0, 0, 0]
qslash_4q: false
conf_start: 1
conf_inc: 1
conf_end: 3
bootstraps: 0
prop1_file: %s
prop2_file: %s
vertex_file: %s
LambdaV_file: %s
LambdaA_file: %s
output_dir: %s
`, filepath.Join(dir, "prop1"), filepath.Join(dir, "prop2"), filepath.Join(dir, "fourquark"),
		store.ResultPath(lambdaDir, "LambdaVg"), filepath.Join(lambdaDir, "LambdaAg"), out))

	_, err := execute(t, "fourquark", params)
	require.NoError(t, err)

	read := func(name string) float64 {
		got, err := store.LoadResult(ctx, out, name)
		require.NoError(t, err, name)
		require.Len(t, got, 3, name)
		return got[len(got)-1]
	}
	assert.InDelta(t, 1, read("Lambda00_gg"), tol)
	assert.InDelta(t, 0, read("Lambda12_gg"), tol)
	assert.InDelta(t, 0.25, read("Lambda33_gg_Asq"), tol)
	assert.InDelta(t, 4, read("Z44_gg_Asq"), tol)
	assert.InDelta(t, 1, read("Z11_gg_Vsq"), tol)
	assert.InDelta(t, 2.5, read("Z22_gg_aveVAsq"), tol)
}

func TestLambdaScheme(t *testing.T) {
	t.Parallel()
	s, err := lambdaScheme("/a/LambdaVq.db", "/b/LambdaAq")
	require.NoError(t, err)
	assert.Equal(t, "q", s.Suffix())

	_, err = lambdaScheme("/a/LambdaVg.db", "/b/LambdaAq.db")
	assert.ErrorIs(t, err, config.ErrInvalidParameter)
	_, err = lambdaScheme("/a/LambdaV.db", "/b/LambdaAg.db")
	assert.ErrorIs(t, err, config.ErrInvalidParameter)
}

// momentumLayout writes values(p) as dataset name of <name>.db in the
// directory of every momentum n = 2, 3, 4 at L = 16, ainv = 1.
func momentumLayout(t *testing.T, base, name string, values func(p float64) []float64) []float64 {
	t.Helper()
	var ps []float64
	for _, n := range []int{2, 3, 4} {
		p := math.Sqrt2 * 2 * math.Pi / 16 * float64(n)
		dir := config.MomentumDir(base, "0.01", config.Label(fmt.Sprint(n)), "0.00")
		require.NoError(t, store.SaveResult(context.Background(), dir, name, values(p)))
		ps = append(ps, p)
	}
	return ps
}

const momentaYAML = `
latt_size: [16, 16, 16, 32]
ainv: 1.0
mass: 0.01
momentum_list: [2, 3, 4]
twist_list: [0.00, 0.00, 0.00]
data_directory: %s
`

func TestExtrapolate_InverseSquare(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	momentumLayout(t, data, "LambdaSg", func(p float64) []float64 {
		return constant(4, 0.7+1.3/(p*p))
	})
	out := filepath.Join(dir, "out")
	params := writeParams(t, dir, fmt.Sprintf(momentaYAML, data)+fmt.Sprintf(`
file_name: LambdaSg
vertex: LambdaSg
resamplingType: jackknife
fitfunction: inv_p2
p_extrap: [2.0, 100.0]
p_range: [0.5, 3.0]
output_dir: %s
`, out))

	_, err := execute(t, "extrapolate", params)
	require.NoError(t, err)

	ext, err := store.ReadResult(context.Background(), store.ResultPath(out, "LambdaSg_p2.000000GeV"), "LambdaSg")
	require.NoError(t, err)
	require.Len(t, ext, 4)
	assert.InDelta(t, 0.7+1.3/4, ext[3], 1e-6)

	text, err := os.ReadFile(filepath.Join(out, "LambdaSg.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(text)), "\n")
	require.Len(t, lines, 1+3+1+2+1+fitCurvePoints)
	assert.Equal(t, "data", lines[0])
	assert.Equal(t, "extrapolated", lines[4])
	assert.Equal(t, "fit", lines[7])
	assert.True(t, strings.HasPrefix(lines[8], "0.5\t"), lines[8])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "3\t"), lines[len(lines)-1])

	var x, central, std float64
	_, err = fmt.Sscanf(lines[6], "%g\t%g\t%g", &x, &central, &std)
	require.NoError(t, err)
	assert.InDelta(t, 0.7+1.3/1e4, central, 1e-6)
}

func TestExtrapolate_FitCurveSkipsDivergentPoint(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	momentumLayout(t, data, "LambdaSg", func(p float64) []float64 {
		return constant(4, 0.7+1.3/(p*p))
	})
	out := filepath.Join(dir, "out")
	params := writeParams(t, dir, fmt.Sprintf(momentaYAML, data)+fmt.Sprintf(`
file_name: LambdaSg
vertex: LambdaSg
resamplingType: jackknife
fitfunction: inv_p2
p_extrap: [2.0]
p_range: [0.0, 3.0]
output_dir: %s
`, out))

	_, err := execute(t, "extrapolate", params)
	require.NoError(t, err)

	text, err := os.ReadFile(filepath.Join(out, "LambdaSg.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(text)), "\n")
	fit := slices.Index(lines, "fit")
	require.Positive(t, fit)
	curve := lines[fit+1:]
	require.Len(t, curve, fitCurvePoints-1)
	for _, l := range curve {
		var x, central, std float64
		_, err := fmt.Sscanf(l, "%g\t%g\t%g", &x, &central, &std)
		require.NoError(t, err, l)
		assert.Positive(t, x, l)
		assert.False(t, math.IsInf(central, 0) || math.IsNaN(central), l)
		assert.False(t, math.IsInf(std, 0) || math.IsNaN(std), l)
	}
}

func TestExtrapolate_EmptyRange(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	momentumLayout(t, data, "LambdaSg", func(float64) []float64 { return constant(3, 1) })
	params := writeParams(t, dir, fmt.Sprintf(momentaYAML, data)+fmt.Sprintf(`
file_name: LambdaSg
vertex: LambdaSg
resamplingType: jackknife
fitfunction: p2
p_extrap: [2.0]
p_range: [5.0, 6.0]
output_dir: %s
`, filepath.Join(dir, "out")))

	_, err := execute(t, "extrapolate", params)
	assert.ErrorIs(t, err, config.ErrInvalidParameter)
}

func TestZFactors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	lambdas := filepath.Join(dir, "lambdas")
	for name, v := range map[string]float64{
		"LambdaAq": 2, "LambdaVq": 1.6, "LambdaSg": 4, "LambdaPg": 5, "LambdaTg": 0.8,
	} {
		require.NoError(t, store.SaveResult(ctx, lambdas, name, constant(9, v)))
	}
	out := filepath.Join(dir, "z")
	params := writeParams(t, dir, fmt.Sprintf(`
LambdaDir: %s
ZA: 0.7
ZAerror: 0.01
scheme: q
outputDir: %s
seed: 7
`, lambdas, out))

	_, err := execute(t, "zfactors", params)
	require.NoError(t, err)

	central := func(name string) float64 {
		got, err := store.LoadResult(ctx, out, name)
		require.NoError(t, err, name)
		require.Len(t, got, 9, name)
		return got[len(got)-1]
	}
	assert.InDelta(t, 0.7, central("ZA"), tol)
	assert.InDelta(t, 2*0.7/4, central("ZSq"), tol)
	assert.InDelta(t, 4/(2*0.7), central("Zmq"), tol)
	assert.InDelta(t, 2*0.7/5, central("ZPq"), tol)
	assert.InDelta(t, 2*0.7/0.8, central("ZTq"), tol)
	assert.InDelta(t, 2*0.7/1.6, central("ZVq"), tol)

	za, err := store.LoadResult(ctx, out, "ZA")
	require.NoError(t, err)
	assert.NotEqual(t, za[0], za[1])
}

func TestTable_Bilinear(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	data := filepath.Join(dir, "data")
	for _, v := range bilinearVertices {
		momentumLayout(t, data, "Lambda"+v, func(p float64) []float64 {
			return []float64{p - 0.1, p + 0.1, p}
		})
	}
	params := writeParams(t, dir, fmt.Sprintf(momentaYAML, data)+`
data_type: bilinear
data_prefix: Lambda
`)

	stdout, err := execute(t, "table", params)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "# p\tSg\terr\tPg"), lines[0])

	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 1+2*len(bilinearVertices))
	assert.Equal(t, fields[0], fields[1])
	// Jackknife error of ±0.1 around the mean: sqrt((N-1)/N · Σ δ²) = 0.1.
	assert.Equal(t, "0.100000", fields[2])
}

func TestDivide(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()
	num, den := filepath.Join(dir, "num"), filepath.Join(dir, "den")
	momentumLayout(t, num, "ZSq", func(float64) []float64 { return []float64{4, 6} })
	momentumLayout(t, den, "ZVq", func(float64) []float64 { return []float64{2, 3} })
	out := filepath.Join(dir, "ratio")
	params := writeParams(t, dir, fmt.Sprintf(`
mass: 0.01
momentum_list: [2, 3, 4]
twist_list: [0.00, 0.00, 0.00]
numName: ZSq
numDir: %s
den1Name: ZVq
den1Dir: %s
den2Name: ZVq
den2Dir: %s
outputName: ZSoverZVsq
outputDir: %s
`, num, den, den, out))

	_, err := execute(t, "divide", params)
	require.NoError(t, err)

	got, err := store.LoadResult(ctx, config.MomentumDir(out, "0.01", "3", "0.00"), "ZSoverZVsq")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2.0 / 3}, got, tol)
}
