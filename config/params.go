// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Label is a scalar kept verbatim as written, for values that name files
// as well as carry numbers (mass 0.01, momentum 3, twist 0.00).
type Label string

// UnmarshalYAML accepts any scalar.
func (l *Label) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}
	*l = Label(value.Value)

	return nil
}

// Float parses the label as a number.
func (l Label) Float() (float64, error) {
	f, err := strconv.ParseFloat(string(l), 64)
	if err != nil {
		return 0, invalidf("%q is not a number", string(l))
	}

	return f, nil
}

// Ensemble selects configurations and resampling for the per-configuration
// drivers.
type Ensemble struct {
	ConfStart  int   `yaml:"conf_start" validate:"gte=0"`
	ConfInc    int   `yaml:"conf_inc" validate:"gt=0"`
	ConfEnd    int   `yaml:"conf_end" validate:"gtfield=ConfStart"`
	Bootstraps int   `yaml:"bootstraps" validate:"gte=0"`
	Seed       int64 `yaml:"seed,omitempty"`
}

// Configs lists the configuration numbers, end exclusive.
func (e Ensemble) Configs() ([]int, error) { return Configs(e.ConfStart, e.ConfEnd, e.ConfInc) }

// Bilinear parameterises the bilinear driver.
type Bilinear struct {
	LatticeSize []int     `yaml:"latt_size" validate:"len=4,dive,gt=0"`
	Momentum    []int     `yaml:"momentum" validate:"len=4"`
	Twist       []float64 `yaml:"twist" validate:"len=4"`
	Ensemble    `yaml:",inline"`
	Prop1File   string `yaml:"prop1_file" validate:"required"`
	Prop2File   string `yaml:"prop2_file" validate:"required"`
	VertexFile  string `yaml:"vertex_file" validate:"required"`
	OutputDir   string `yaml:"output_dir" validate:"required"`
}

// FourQuark parameterises the four-quark driver.
type FourQuark struct {
	LatticeSize []int     `yaml:"latt_size" validate:"len=4,dive,gt=0"`
	Momentum1   []int     `yaml:"momentum1" validate:"len=4"`
	Twist1      []float64 `yaml:"twist1" validate:"len=4"`
	Momentum2   []int     `yaml:"momentum2" validate:"len=4"`
	Twist2      []float64 `yaml:"twist2" validate:"len=4"`
	QSlash      bool      `yaml:"qslash_4q"`
	Ensemble    `yaml:",inline"`
	Prop1File   string `yaml:"prop1_file" validate:"required"`
	Prop2File   string `yaml:"prop2_file" validate:"required"`
	VertexFile  string `yaml:"vertex_file" validate:"required"`
	LambdaVFile string `yaml:"LambdaV_file" validate:"required"`
	LambdaAFile string `yaml:"LambdaA_file" validate:"required"`
	OutputDir   string `yaml:"output_dir" validate:"required"`
}

// Momenta is the per-momentum directory layout shared by the
// cross-momentum drivers.
type Momenta struct {
	LatticeSize   []int   `yaml:"latt_size" validate:"min=1,dive,gt=0"`
	Ainv          float64 `yaml:"ainv" validate:"gt=0"`
	Mass          Label   `yaml:"mass" validate:"required"`
	MomentumList  []Label `yaml:"momentum_list" validate:"min=1,dive,required"`
	TwistList     []Label `yaml:"twist_list" validate:"min=1,dive,required"`
	DataDirectory string  `yaml:"data_directory" validate:"required"`
}

// Validate checks that momenta and twists pair up and parse.
func (m *Momenta) Validate() error {
	if len(m.MomentumList) != len(m.TwistList) {
		return fmt.Errorf("momentum_list has %d entries, twist_list %d", len(m.MomentumList), len(m.TwistList))
	}
	for i := range m.MomentumList {
		if _, err := m.P(i); err != nil {
			return err
		}
	}

	return nil
}

// Len is the number of momenta.
func (m *Momenta) Len() int { return len(m.MomentumList) }

// Dir is the directory of the i-th momentum's results.
func (m *Momenta) Dir(i int) string {
	return MomentumDir(m.DataDirectory, m.Mass, m.MomentumList[i], m.TwistList[i])
}

// P is the physical momentum of the i-th entry in the units of ainv,
// √2·(2π/L₀)·(n + θ)·a⁻¹, for the (0,n,n,0)/(n,n,0,0) kinematics.
func (m *Momenta) P(i int) (float64, error) {
	n, err := m.MomentumList[i].Float()
	if err != nil {
		return 0, err
	}
	tw, err := m.TwistList[i].Float()
	if err != nil {
		return 0, err
	}

	return math.Sqrt2 * 2 * math.Pi / float64(m.LatticeSize[0]) * (n + tw) * m.Ainv, nil
}

// MomentumDir is base/Lambda_m<mass>_m<mass>_p0<n><n>0_p<n><n>00_tw<twist>.
func MomentumDir(base string, mass, mom, twist Label) string {
	m, n := string(mass), string(mom)
	name := "Lambda_m" + m + "_m" + m + "_p0" + n + n + "0_p" + n + n + "00_tw" + string(twist)

	return filepath.Join(base, name)
}

// Extrapolate parameterises the fit-and-extrapolate driver.
type Extrapolate struct {
	Momenta     `yaml:",inline"`
	FileName    string    `yaml:"file_name" validate:"required"`
	Vertex      string    `yaml:"vertex" validate:"required"`
	Resampling  string    `yaml:"resamplingType" validate:"oneof=jackknife bootstrap"`
	FitFunction string    `yaml:"fitfunction" validate:"required"`
	PExtrap     []float64 `yaml:"p_extrap" validate:"min=1"`
	PRange      []float64 `yaml:"p_range" validate:"len=2"`
	OutputDir   string    `yaml:"output_dir" validate:"required"`
	Failure     string    `yaml:"failure_policy,omitempty" validate:"omitempty,oneof=strict drop"`
}

// Validate adds the range ordering to the shared momentum checks.
func (e *Extrapolate) Validate() error {
	if err := e.Momenta.Validate(); err != nil {
		return err
	}
	if e.PRange[0] >= e.PRange[1] {
		return fmt.Errorf("p_range [%g, %g] is empty", e.PRange[0], e.PRange[1])
	}

	return nil
}

// ZFactors parameterises the Z-factor driver.
type ZFactors struct {
	LambdaDir string  `yaml:"LambdaDir" validate:"required"`
	ZA        float64 `yaml:"ZA" validate:"gt=0"`
	ZAError   float64 `yaml:"ZAerror" validate:"gte=0"`
	Scheme    string  `yaml:"scheme" validate:"oneof=g q"`
	OutputDir string  `yaml:"outputDir" validate:"required"`
	Seed      int64   `yaml:"seed,omitempty"`
}

// Table parameterises the summary-table driver.
type Table struct {
	Momenta    `yaml:",inline"`
	DataType   string `yaml:"data_type" validate:"oneof=bilinear fourquark"`
	DataPrefix string `yaml:"data_prefix"`
	DataSuffix string `yaml:"data_suffix,omitempty"`
	Resampling string `yaml:"resamplingType,omitempty" validate:"omitempty,oneof=jackknife bootstrap"`
}

// Divide parameterises the ratio driver num/(den1·den2) per momentum.
type Divide struct {
	Mass         Label   `yaml:"mass" validate:"required"`
	MomentumList []Label `yaml:"momentum_list" validate:"min=1,dive,required"`
	TwistList    []Label `yaml:"twist_list" validate:"min=1,dive,required"`
	NumName      string  `yaml:"numName" validate:"required"`
	NumDir       string  `yaml:"numDir" validate:"required"`
	Den1Name     string  `yaml:"den1Name" validate:"required"`
	Den1Dir      string  `yaml:"den1Dir" validate:"required"`
	Den2Name     string  `yaml:"den2Name" validate:"required"`
	Den2Dir      string  `yaml:"den2Dir" validate:"required"`
	OutputName   string  `yaml:"outputName" validate:"required"`
	OutputDir    string  `yaml:"outputDir" validate:"required"`
}

// Validate checks that momenta and twists pair up.
func (d *Divide) Validate() error {
	if len(d.MomentumList) != len(d.TwistList) {
		return fmt.Errorf("momentum_list has %d entries, twist_list %d", len(d.MomentumList), len(d.TwistList))
	}

	return nil
}
