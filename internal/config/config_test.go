package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"lcalc_path: /opt/lcalc/bin/lcalc\nk: 5000\nworkers: 8\nremainder_bound: true\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/lcalc/bin/lcalc", cfg.LCalcPath)
	assert.Equal(t, 5000, cfg.K)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.RemainderBound)

	// Unset keys keep their defaults.
	assert.Equal(t, Default().Database, cfg.Database)
	assert.Equal(t, Default().Epsilon, cfg.Epsilon)
	assert.Equal(t, Default().Chunk, cfg.Chunk)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k: [unclosed\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero k", func(c *Config) { c.K = 0 }},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1e-6 }},
		{"zero epsilon", func(c *Config) { c.Epsilon = 0 }},
		{"negative eta", func(c *Config) { c.Eta = -0.5 }},
		{"zero chunk", func(c *Config) { c.Chunk = 0 }},
		{"negative max zeros", func(c *Config) { c.MaxZeros = -1 }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"empty database", func(c *Config) { c.Database = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(cfg)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Details)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Details: "k: invalid value 0 (out of bound >=1)"}
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "k: invalid value")
}
