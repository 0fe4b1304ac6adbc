package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/amqp-codec/codec"
	"github.com/wippyai/amqp-codec/errors"
)

const (
	formatTree = "tree"
	formatYAML = "yaml"
)

// Config holds amqpdump settings. Command-line flags override file values.
type Config struct {
	// Type selects what to decode, see parseTarget.
	Type string `yaml:"type"`

	// Format is "tree" or "yaml".
	Format string `yaml:"format"`

	// MaxLongStringSize bounds declared long string lengths. Zero means the
	// codec default.
	MaxLongStringSize uint32 `yaml:"max_long_string_size"`

	Verbose bool `yaml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Type:              "table",
		Format:            formatTree,
		MaxLongStringSize: codec.MaxLongStringSize,
	}
}

// LoadFile reads a YAML config file over the defaults. Keys missing from the
// file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindIO, err, "read "+path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse "+path)
	}
	return nil
}

// Validate checks the format and decode target.
func (c *Config) Validate() error {
	if c.Format != formatTree && c.Format != formatYAML {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Path("format").
			Value(c.Format).
			Detail("unknown format %q, want tree or yaml", c.Format).
			Build()
	}
	if _, err := parseTarget(c.Type); err != nil {
		return errors.Prefix(err, "type")
	}
	return nil
}

func (c *Config) codecOptions() []codec.Option {
	return []codec.Option{
		codec.WithLogger(codec.Logger()),
		codec.WithMaxLongStringSize(c.MaxLongStringSize),
	}
}
