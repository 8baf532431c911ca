// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package main is the entry point for the ocppgen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AnlangA/ocpp-messages-gen-tool/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
