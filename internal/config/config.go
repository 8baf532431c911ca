// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package config handles generator configuration: the optional project file
// and the plain options struct the processor consumes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "ocppgen.yaml"

// Config represents the ocppgen.yaml project configuration file. All
// generation settings are optional; unset values fall back to defaults.
type Config struct {
	Version   int    `yaml:"version"`
	SchemaDir string `yaml:"schema_dir,omitempty"`
	OutputDir string `yaml:"output_dir,omitempty"`
	ModFile   *bool  `yaml:"mod_file,omitempty"`
	Stats     *bool  `yaml:"stats,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	return nil
}

// Options is the configuration surface the processor consumes.
type Options struct {
	// SchemaDir is the directory of schema documents to process.
	SchemaDir string
	// OutputDir receives one generated source file per complete message.
	OutputDir string
	// GenerateModFile controls emission of the mod.rs aggregation file.
	GenerateModFile bool
	// ShowStatistics controls the processing summary.
	ShowStatistics bool
}

// DefaultOptions returns the options used when neither flags nor a project
// file override them.
func DefaultOptions() Options {
	return Options{
		SchemaDir:       "schemas/v2.1",
		OutputDir:       "src/v2_1/messages",
		GenerateModFile: true,
		ShowStatistics:  true,
	}
}

// Apply overlays the project file's settings onto the options.
func (o *Options) Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.SchemaDir != "" {
		o.SchemaDir = cfg.SchemaDir
	}
	if cfg.OutputDir != "" {
		o.OutputDir = cfg.OutputDir
	}
	if cfg.ModFile != nil {
		o.GenerateModFile = *cfg.ModFile
	}
	if cfg.Stats != nil {
		o.ShowStatistics = *cfg.Stats
	}
}

// Validate checks that the schema directory exists and is readable. This is
// a configuration error and is reported before any processing starts.
func (o Options) Validate() error {
	info, err := os.Stat(o.SchemaDir)
	if err != nil {
		return fmt.Errorf("schema directory does not exist: %s", o.SchemaDir)
	}
	if !info.IsDir() {
		return fmt.Errorf("schema path is not a directory: %s", o.SchemaDir)
	}
	return nil
}
