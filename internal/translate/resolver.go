// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package translate turns parsed schema documents into an intermediate
// representation of message structs, ready for target-language emission.
package translate

// TypeResolver maps schema nodes to target-language types and naming
// conventions. Resolution never fails: unknown shapes degrade to a
// permissive default, since schema documents may reference definitions
// outside the inspected file.
type TypeResolver interface {
	// PrimitiveType maps a JSON Schema type and format to a resolution.
	// Format is checked first, allowing "date-time" to override "string".
	PrimitiveType(schemaType, format string, imports ImportSet) Resolution

	// ArrayType wraps an element resolution in a sequence type,
	// validated at the sequence level.
	ArrayType(elem Resolution, imports ImportSet) Resolution

	// RefType resolves a $ref definition name against the target's
	// classification rules.
	RefType(defName string, imports ImportSet) Resolution

	// FieldName converts a wire name to a language-safe identifier,
	// substituting a safe spelling for reserved words.
	FieldName(jsonName string) string

	// RenameNeeded reports whether an explicit original-name annotation
	// must be emitted, i.e. the rename is not derivable from the target's
	// case-conversion rule alone.
	RenameNeeded(fieldName, jsonName string) bool

	// BaseImports returns the statements every generated struct needs.
	BaseImports() []string
}
