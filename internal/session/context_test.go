// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/config"
)

func TestLoad_NoProjectFile(t *testing.T) {
	t.Chdir(t.TempDir())

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	sess := From(ctx)
	require.NotNil(t, sess)
	assert.Nil(t, sess.Config)
}

func TestLoad_WithProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: 1\nschema_dir: schemas/v2.1\n")
	t.Chdir(dir)

	ctx, err := Load(context.Background())
	require.NoError(t, err)

	sess := From(ctx)
	require.NotNil(t, sess)
	require.NotNil(t, sess.Config)
	assert.Equal(t, "schemas/v2.1", sess.Config.SchemaDir)
}

func TestLoad_InvalidProjectFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "version: 99\n")
	t.Chdir(dir)

	_, err := Load(context.Background())
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestFrom_EmptyContext(t *testing.T) {
	assert.Nil(t, From(context.Background()))
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
