// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package translate

import (
	"strings"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/jschema"
)

// AssembleStruct combines a parsed schema document into a StructInfo: fields
// in declaration order, per-field constraints, descriptions, and the
// accumulated import set.
func AssembleStruct(name string, doc *jschema.Document, resolver TypeResolver) *StructInfo {
	imports := NewImportSet()
	imports.Add(resolver.BaseImports()...)

	info := &StructInfo{
		Name:    name,
		Imports: imports,
	}

	schema := doc.Schema
	if schema == nil || len(schema.Properties) == 0 {
		return info
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = struct{}{}
	}

	for _, propName := range orderedKeys(doc) {
		propSchema := schema.Properties[propName]
		if propSchema == nil {
			continue
		}
		_, isRequired := required[propName]
		info.Fields = append(info.Fields, assembleField(propName, propSchema, !isRequired, resolver, imports))
	}

	return info
}

func assembleField(jsonName string, schema *jschema.Schema, optional bool, resolver TypeResolver, imports ImportSet) FieldInfo {
	name := resolver.FieldName(jsonName)
	res := resolveNode(schema, resolver, imports)

	f := FieldInfo{
		Name:         name,
		OriginalName: jsonName,
		Type:         res.Type,
		Class:        res.Class,
		Optional:     optional,
		Validated:    res.NeedsValidation,
		Nested:       nestedValidation(res),
		Rename:       resolver.RenameNeeded(name, jsonName),
		Description:  collapseDescription(schema.Description),
		MinLength:    schema.MinLength,
		MaxLength:    schema.MaxLength,
		Minimum:      schema.Minimum,
		Maximum:      schema.Maximum,
		MinItems:     schema.MinItems,
		MaxItems:     schema.MaxItems,
	}

	// Integer identifier fields without an explicit bound are non-negative
	// by OCPP convention. Decimals never get an implicit bound.
	if f.Validated && res.Class == ClassInteger &&
		f.Minimum == nil && f.Maximum == nil && strings.Contains(name, "id") {
		zero := 0.0
		f.Minimum = &zero
	}

	return f
}

// resolveNode maps one schema node to a resolution, recursing through
// arrays. Every path registers its imports into the shared set.
func resolveNode(schema *jschema.Schema, resolver TypeResolver, imports ImportSet) Resolution {
	if schema == nil {
		return resolver.PrimitiveType("", "", imports)
	}

	if schema.Ref != "" {
		return resolver.RefType(jschema.RefName(schema.Ref), imports)
	}

	if schema.Type == "array" {
		if schema.Items == nil {
			elem := resolver.PrimitiveType("", "", imports)
			res := resolver.ArrayType(elem, imports)
			res.NeedsValidation = false
			return res
		}
		elem := resolveNode(schema.Items, resolver, imports)
		return resolver.ArrayType(elem, imports)
	}

	return resolver.PrimitiveType(schema.Type, schema.Format, imports)
}

// nestedValidation reports whether a field needs recursive validation: the
// type is a structured (non-enumeration) reference, directly or as the
// element of a sequence.
func nestedValidation(res Resolution) bool {
	if res.Class == ClassStruct {
		return true
	}
	return res.Class == ClassSequence && res.Elem != nil && res.Elem.Class == ClassStruct
}

// orderedKeys returns the property names in declaration order, falling back
// to map iteration when the document carried no usable order.
func orderedKeys(doc *jschema.Document) []string {
	if len(doc.Order) > 0 {
		keys := make([]string, 0, len(doc.Order))
		for _, key := range doc.Order {
			if _, ok := doc.Schema.Properties[key]; ok {
				keys = append(keys, key)
			}
		}
		return keys
	}

	keys := make([]string, 0, len(doc.Schema.Properties))
	for name := range doc.Schema.Properties {
		keys = append(keys, name)
	}
	return keys
}

// collapseDescription trims a description and collapses internal line breaks
// to single spaces.
func collapseDescription(desc string) string {
	if desc == "" {
		return ""
	}
	desc = strings.ReplaceAll(desc, "\r", "")
	desc = strings.ReplaceAll(desc, "\n", " ")
	return strings.TrimSpace(desc)
}
