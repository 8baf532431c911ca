// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/config"
)

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration, when a project file is
// present in the working directory.
type Context struct {
	// Config is the parsed ocppgen.yaml, nil when no project file exists.
	Config *config.Config
}

// Load loads the project context from the current working directory and
// returns a new context.Context with it stored. A missing project file is
// not an error: the generator runs fine on flags alone.
func Load(ctx context.Context) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	sess := &Context{}

	configPath := filepath.Join(cwd, config.ConfigFileName)
	if _, statErr := os.Stat(configPath); statErr == nil {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		sess.Config = cfg
	}

	return context.WithValue(ctx, contextKey{}, sess), nil
}

// From extracts the session Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	sess, _ := ctx.Value(contextKey{}).(*Context)
	return sess
}
