// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/config"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/prompts"
)

func registerInitCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an " + config.ConfigFileName + " project file",
		RunE:  runInit,
	}

	parent.AddCommand(cmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(config.ConfigFileName); err == nil {
		var overwrite bool
		if err := prompts.RunOverwriteConfirm(config.ConfigFileName, &overwrite); err != nil {
			return err
		}
		if !overwrite {
			return fmt.Errorf("aborted: %s already exists", config.ConfigFileName)
		}
	}

	defaults := config.DefaultOptions()
	schemaDir := defaults.SchemaDir
	outputDir := defaults.OutputDir
	modFile := defaults.GenerateModFile
	stats := defaults.ShowStatistics

	if err := prompts.RunInitForm(&schemaDir, &outputDir, &modFile, &stats); err != nil {
		return err
	}

	cfg := &config.Config{
		Version:   config.CurrentConfigVersion,
		SchemaDir: schemaDir,
		OutputDir: outputDir,
		ModFile:   &modFile,
		Stats:     &stats,
	}
	if err := cfg.Save(config.ConfigFileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.ConfigFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config file", Value: config.ConfigFileName},
		{Label: "Schema directory", Value: schemaDir},
		{Label: "Output directory", Value: outputDir},
	}, "Project initialized")

	return nil
}
