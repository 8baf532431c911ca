// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package jschema provides JSON Schema loading, parsing, and
// property-order recovery for OCPP message schema documents.
package jschema

import (
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema is the parsed representation of one schema document or sub-node.
type Schema = jsonschema.Schema

// RefName extracts the definition name from a $ref string.
// OCPP 2.1 schemas use the draft-06 "#/definitions/" namespace; newer
// documents may use "#/$defs/". Anything else is returned unchanged.
func RefName(ref string) string {
	if name, ok := strings.CutPrefix(ref, "#/definitions/"); ok {
		return name
	}
	if name, ok := strings.CutPrefix(ref, "#/$defs/"); ok {
		return name
	}
	return ref
}
