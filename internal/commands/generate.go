// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/config"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/processor"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/prompts"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/session"
)

type generateOptions struct {
	schemaDir string
	outputDir string
	noModFile bool
	noStats   bool
}

func registerGenerateCmd(parent *cobra.Command) {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate message structs from a schema directory",
		Long: `Generate one Rust source file per complete Request/Response pair
(or standalone message) found in the schema directory.`,
		Example: `  # Interactive mode
  ocppgen generate

  # Explicit directories
  ocppgen generate --schema-dir schemas/v2.1 --output-dir src/v2_1/messages

  # Without the mod.rs aggregation file
  ocppgen generate --schema-dir schemas/v2.1 -o out --no-mod-file`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.schemaDir, "schema-dir", "", "Schema files directory")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Output directory")
	cmd.Flags().BoolVar(&opts.noModFile, "no-mod-file", false, "Don't generate the mod.rs file")
	cmd.Flags().BoolVar(&opts.noStats, "no-stats", false, "Don't show statistics")

	parent.AddCommand(cmd)
}

// resolveOptions layers the generation settings: project file first, then
// flags, then an interactive prompt for anything still missing.
func resolveOptions(cmd *cobra.Command, opts *generateOptions) (config.Options, error) {
	options := config.Options{GenerateModFile: true, ShowStatistics: true}

	if sess := session.FromCommand(cmd); sess != nil {
		options.Apply(sess.Config)
	}

	if opts.schemaDir != "" {
		options.SchemaDir = opts.schemaDir
	}
	if opts.outputDir != "" {
		options.OutputDir = opts.outputDir
	}
	if opts.noModFile {
		options.GenerateModFile = false
	}
	if opts.noStats {
		options.ShowStatistics = false
	}

	if err := prompts.RunGenerateForm(&options.SchemaDir, &options.OutputDir); err != nil {
		return options, err
	}

	return options, options.Validate()
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	options, err := resolveOptions(cmd, opts)
	if err != nil {
		return err
	}

	proc := processor.New(options, cmd.OutOrStdout())
	result, err := proc.Run()
	if err != nil {
		return err
	}

	generated := len(result.Paired) + len(result.Standalone)
	prompts.PrintResult([]prompts.ResultField{
		{Label: "Schema directory", Value: options.SchemaDir},
		{Label: "Output directory", Value: options.OutputDir},
		{Label: "Generated messages", Value: strconv.Itoa(generated)},
	}, "Paired schema processing completed!")

	if options.ShowStatistics {
		prompts.PrintStats(result.Stats)
	}

	return nil
}
