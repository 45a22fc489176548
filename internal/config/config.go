// Package config loads the pyimplib.yaml batch configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pyimplib/pyimplib/internal/errors"
	"github.com/pyimplib/pyimplib/internal/schema"
	"github.com/pyimplib/pyimplib/internal/target"
)

// DefaultFileName is the configuration file looked up when none is given.
const DefaultFileName = "pyimplib.yaml"

// Config describes a batch of import library generations.
type Config struct {
	OutputDir string        `yaml:"output_dir"`
	Targets   []TargetEntry `yaml:"targets"`
}

// TargetEntry is one compile target in the batch.
type TargetEntry struct {
	Arch    string `yaml:"arch"`
	Env     string `yaml:"env"`
	Version string `yaml:"version,omitempty"`
}

// Descriptor converts the entry into a target descriptor, parsing the
// optional Python version.
func (t TargetEntry) Descriptor() (target.Descriptor, error) {
	desc := target.New(t.Arch, t.Env)
	if t.Version == "" {
		return desc, nil
	}

	v, err := target.ParseVersion(t.Version)
	if err != nil {
		return target.Descriptor{}, err
	}
	return desc.WithVersion(v), nil
}

// Load reads and parses a configuration file without validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Validation("failed to parse config file", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadAndValidate reads a configuration file, validates it against the
// embedded schema, applies defaults, and returns the parsed config.
func LoadAndValidate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Validate the generic document first so schema errors name the
	// offending fields instead of surfacing as decode failures.
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Validation("failed to parse config file", err)
	}
	if err := schema.ValidateConfig(doc); err != nil {
		return nil, errors.Validation(fmt.Sprintf("invalid config file %s", path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Validation("failed to parse config file", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
}
