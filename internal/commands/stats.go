// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package commands

import (
	"github.com/spf13/cobra"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/config"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/processor"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/prompts"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/session"
)

func registerStatsCmd(parent *cobra.Command) {
	var schemaDir string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show pairing statistics without generating anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			options := config.Options{}
			if sess := session.FromCommand(cmd); sess != nil {
				options.Apply(sess.Config)
			}
			if schemaDir != "" {
				options.SchemaDir = schemaDir
			}

			if err := prompts.RunStatsForm(&options.SchemaDir); err != nil {
				return err
			}
			if err := options.Validate(); err != nil {
				return err
			}

			stats, err := processor.New(options, cmd.OutOrStdout()).Stats()
			if err != nil {
				return err
			}
			prompts.PrintStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaDir, "schema-dir", "", "Schema files directory")

	parent.AddCommand(cmd)
}
