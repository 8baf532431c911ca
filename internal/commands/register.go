// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "ocppgen",
		Short:             "Generate Rust message structs from OCPP 2.1 JSON schemas",
		PersistentPreRunE: session.PreRunLoad,
	}

	registerGenerateCmd(rootCmd)
	registerStatsCmd(rootCmd)
	registerInitCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
