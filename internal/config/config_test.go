// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolp(v bool) *bool { return &v }

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := &Config{
		Version:   CurrentConfigVersion,
		SchemaDir: "schemas/v2.1",
		OutputDir: "src/v2_1/messages",
		ModFile:   boolp(false),
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Nil(t, loaded.Stats)
}

func TestConfig_LoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("version: [not an int"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&Config{Version: CurrentConfigVersion}).Validate())
	assert.EqualError(t, (&Config{Version: 0}).Validate(), "unsupported config version")
	assert.EqualError(t, (&Config{Version: 2}).Validate(), "unsupported config version")
}

func TestOptions_Apply(t *testing.T) {
	opts := DefaultOptions()
	opts.Apply(&Config{
		Version:   CurrentConfigVersion,
		SchemaDir: "other/schemas",
		Stats:     boolp(false),
	})

	assert.Equal(t, "other/schemas", opts.SchemaDir)
	// Unset fields keep their defaults.
	assert.Equal(t, "src/v2_1/messages", opts.OutputDir)
	assert.True(t, opts.GenerateModFile)
	assert.False(t, opts.ShowStatistics)
}

func TestOptions_ApplyNil(t *testing.T) {
	opts := DefaultOptions()
	opts.Apply(nil)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestOptions_Validate(t *testing.T) {
	dir := t.TempDir()

	opts := Options{SchemaDir: dir}
	assert.NoError(t, opts.Validate())

	opts.SchemaDir = filepath.Join(dir, "missing")
	assert.ErrorContains(t, opts.Validate(), "schema directory does not exist")

	file := filepath.Join(dir, "file.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))
	opts.SchemaDir = file
	assert.ErrorContains(t, opts.Validate(), "not a directory")
}
