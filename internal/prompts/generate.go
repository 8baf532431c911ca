// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package prompts

import (
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
)

// RunGenerateForm prompts for any generation inputs still missing after
// flags and project configuration were applied. Values already set are not
// prompted for.
func RunGenerateForm(schemaDir, outputDir *string) error {
	var fields []huh.Field

	if *schemaDir == "" {
		fields = append(fields, huh.NewInput().
			Title("Schema directory").
			Description("Directory containing the OCPP message schema files").
			Validate(requiredValidator("schema directory")).
			Value(schemaDir))
	}
	if *outputDir == "" {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Description("Directory to write generated Rust sources to").
			Validate(requiredValidator("output directory")).
			Value(outputDir))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}

// RunStatsForm prompts for the schema directory when it is missing.
func RunStatsForm(schemaDir *string) error {
	if *schemaDir != "" {
		return nil
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Schema directory").
			Description("Directory containing the OCPP message schema files").
			Validate(requiredValidator("schema directory")).
			Value(schemaDir),
	)).WithTheme(Theme()).Run()
}

// PrintStats prints the processing statistics summary.
func PrintStats(stats translate.Stats) {
	PrintResult([]ResultField{
		{Label: "Total message pairs", Value: strconv.Itoa(stats.Total)},
		{Label: "Complete pairs", Value: strconv.Itoa(stats.Complete)},
		{Label: "Incomplete pairs", Value: strconv.Itoa(stats.Incomplete)},
	}, "")
}
