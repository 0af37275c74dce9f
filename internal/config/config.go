// Package config loads and validates the run configuration.
//
// Configuration is a YAML file decoded into Config and then unified with
// the embedded CUE schema, so type and range violations are reported with
// field-level messages before any verification work starts.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config holds every knob a verification run needs. Zero values are filled
// in from Default before validation, so files only state what they change.
type Config struct {
	LCalcPath      string  `yaml:"lcalc_path" json:"lcalc_path"`
	Database       string  `yaml:"database" json:"database"`
	OutputDir      string  `yaml:"output_dir" json:"output_dir"`
	K              int     `yaml:"k" json:"k"`
	Epsilon        float64 `yaml:"epsilon" json:"epsilon"`
	Eta            float64 `yaml:"eta" json:"eta"`
	Chunk          int     `yaml:"chunk" json:"chunk"`
	MaxZeros       int     `yaml:"max_zeros" json:"max_zeros"`
	Workers        int     `yaml:"workers" json:"workers"`
	RemainderBound bool    `yaml:"remainder_bound" json:"remainder_bound"`
}

// Default returns the configuration used when no file is given.
// The truncation bound matches the scale the summary tables were produced
// with; epsilon stays far below typical zero spacing so intervals built
// around consecutive ordinates cannot overlap.
func Default() Config {
	return Config{
		Database:  "grhverify.db",
		OutputDir: "results",
		K:         100000,
		Epsilon:   1e-6,
		Eta:       0,
		Chunk:     10,
		MaxZeros:  500,
		Workers:   4,
	}
}

// ValidationError reports a configuration value rejected by the schema.
type ValidationError struct {
	// Details is the full CUE error listing, one line per violation.
	Details string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration:\n%s", e.Details)
}

// Load reads a YAML configuration file, overlays it on Default, and
// validates the result. An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate unifies cfg with the embedded #Config schema.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
func Validate(cfg Config) error {
	cctx := cuecontext.New()

	schema := cctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup config schema: %w", err)
	}

	val := cctx.Encode(cfg)
	if err := val.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	unified := def.Unify(val)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Details: cueerrors.Details(err, nil)}
	}
	return nil
}
