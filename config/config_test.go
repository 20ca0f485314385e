// SPDX-License-Identifier: MIT
package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npr/config"
)

const bilinearYAML = `
latt_size: [16, 16, 16, 32]
momentum: [0, 2, 2, 0]
twist: [0, 0.5, 0.5, 0]
conf_start: 1000
conf_inc: 40
conf_end: 1200
bootstraps: 0
prop1_file: data/prop1
prop2_file: data/prop2
vertex_file: data/bilinear
output_dir: out
`

func TestDecode_Bilinear(t *testing.T) {
	t.Parallel()
	var p config.Bilinear
	require.NoError(t, config.Decode([]byte(bilinearYAML), &p))

	assert.Equal(t, []int{16, 16, 16, 32}, p.LatticeSize)
	assert.Equal(t, []float64{0, 0.5, 0.5, 0}, p.Twist)
	assert.Equal(t, 0, p.Bootstraps)
	assert.Zero(t, p.Seed)
	cfgs, err := p.Configs()
	require.NoError(t, err)
	assert.Equal(t, []int{1000, 1040, 1080, 1120, 1160}, cfgs)
}

func TestDecode_ReportsEveryMissingKey(t *testing.T) {
	t.Parallel()
	var p config.Bilinear
	err := config.Decode([]byte("latt_size: [4, 4, 4, 8]\nmomentum:\nprop1_file: \"\"\n"), &p)

	var missing *config.MissingError
	require.ErrorAs(t, err, &missing)
	assert.ErrorIs(t, err, config.ErrMissingParameter)
	assert.Equal(t, []string{
		"momentum", "twist", "conf_start", "conf_inc", "conf_end", "bootstraps",
		"prop1_file", "prop2_file", "vertex_file", "output_dir",
	}, missing.Keys)

	err = config.Decode(nil, &p)
	require.ErrorAs(t, err, &missing)
	assert.Len(t, missing.Keys, 11)
}

func TestDecode_Constraints(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		edit func(string) string
	}{
		{"short lattice", func(s string) string { return replace(s, "[16, 16, 16, 32]", "[16, 16]") }},
		{"zero increment", func(s string) string { return replace(s, "conf_inc: 40", "conf_inc: 0") }},
		{"end before start", func(s string) string { return replace(s, "conf_end: 1200", "conf_end: 900") }},
		{"negative bootstraps", func(s string) string { return replace(s, "bootstraps: 0", "bootstraps: -3") }},
		{"wrong type", func(s string) string { return replace(s, "conf_inc: 40", "conf_inc: forty") }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var p config.Bilinear
			err := config.Decode([]byte(tc.edit(bilinearYAML)), &p)
			assert.ErrorIs(t, err, config.ErrInvalidParameter)
		})
	}
}

func replace(s, old, new string) string {
	if !strings.Contains(s, old) {
		panic("pattern not found: " + old)
	}
	return strings.Replace(s, old, new, 1)
}

func TestExtrapolate_MomentaAndLayout(t *testing.T) {
	t.Parallel()
	src := `
latt_size: [24, 24, 24, 64]
ainv: 1.785
mass: 0.005
momentum_list: [3, 4]
twist_list: [0.00, 0.50]
data_directory: /data/npr
file_name: LambdaVg
vertex: LambdaVg
resamplingType: jackknife
fitfunction: inv_p2
p_extrap: [2.0]
p_range: [1.0, 3.0]
output_dir: out
`
	var p config.Extrapolate
	require.NoError(t, config.Decode([]byte(src), &p))
	assert.Equal(t, config.Label("0.00"), p.TwistList[0])
	assert.Equal(t, 2, p.Len())

	assert.Equal(t, filepath.Join("/data/npr", "Lambda_m0.005_m0.005_p0330_p3300_tw0.00"), p.Dir(0))
	got, err := p.P(1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2*2*math.Pi/24*4.5*1.785, got, 1e-12)

	for _, bad := range []string{
		replace(src, "p_range: [1.0, 3.0]", "p_range: [3.0, 1.0]"),
		replace(src, "twist_list: [0.00, 0.50]", "twist_list: [0.00]"),
		replace(src, "resamplingType: jackknife", "resamplingType: bootstrapped"),
		replace(src, "momentum_list: [3, 4]", "momentum_list: [3, x]"),
	} {
		var q config.Extrapolate
		assert.ErrorIs(t, config.Decode([]byte(bad), &q), config.ErrInvalidParameter)
	}
}

func TestTemplate_RoundTripsAsAllMissing(t *testing.T) {
	t.Parallel()
	keys, err := config.Keys(&config.ZFactors{})
	require.NoError(t, err)
	assert.Equal(t, []string{"LambdaDir", "ZA", "ZAerror", "scheme", "outputDir"}, keys)

	path := filepath.Join(t.TempDir(), config.TemplateName)
	require.NoError(t, config.WriteTemplate(path, keys))

	var z config.ZFactors
	err = config.Load(path, &z)
	var missing *config.MissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, keys, missing.Keys)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `ZAerror: ""`)
}

func TestKeys_InlineAndOptional(t *testing.T) {
	t.Parallel()
	keys, err := config.Keys(&config.Table{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"latt_size", "ainv", "mass", "momentum_list", "twist_list", "data_directory",
		"data_type", "data_prefix",
	}, keys)

	_, err = config.Keys(config.Table{})
	assert.ErrorIs(t, err, config.ErrInvalidParameter)
}

func TestConfigs(t *testing.T) {
	t.Parallel()
	got, err := config.Configs(10, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 13, 16, 19}, got)

	_, err = config.Configs(10, 20, 0)
	assert.ErrorIs(t, err, config.ErrInvalidParameter)
	_, err = config.Configs(10, 10, 1)
	assert.ErrorIs(t, err, config.ErrInvalidParameter)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	var p config.Bilinear
	err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), &p)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
