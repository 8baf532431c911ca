// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm prompts for the project configuration written by init.
func RunInitForm(schemaDir, outputDir *string, modFile, stats *bool) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema directory").
				Description("Directory containing the OCPP message schema files").
				Validate(requiredValidator("schema directory")).
				Value(schemaDir),
			huh.NewInput().
				Title("Output directory").
				Description("Directory to write generated Rust sources to").
				Validate(requiredValidator("output directory")).
				Value(outputDir),
			huh.NewConfirm().
				Title("Generate mod.rs aggregation file?").
				Value(modFile),
			huh.NewConfirm().
				Title("Show statistics after each run?").
				Value(stats),
		),
	).WithTheme(Theme())

	return form.Run()
}

// RunOverwriteConfirm asks before replacing an existing project file.
func RunOverwriteConfirm(path string, overwrite *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(path + " already exists. Overwrite?").
				Value(overwrite),
		),
	).WithTheme(Theme()).Run()
}
