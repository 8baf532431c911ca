// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package rust emits OCPP message structs as Rust source with serde and
// validator annotations.
package rust

import (
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
)

// Import statements shared by every generated struct or registered during
// type resolution.
const (
	serdeImport     = "use serde::{Deserialize, Serialize};"
	validatorImport = "use validator::Validate;"
	chronoImport    = "use chrono::{DateTime, Utc};"
	decimalImport   = "use rust_decimal::Decimal;"
	valueImport     = "use serde_json::Value;"
)

// Shared type namespaces inside the generated crate.
const (
	datatypesModule    = "v2_1::datatypes"
	enumerationsModule = "v2_1::enumerations"
)

// Resolver maps schema nodes to Rust types following the OCPP crate's type
// layout: shared data types under crate::v2_1::datatypes, enumerations
// under crate::v2_1::enumerations.
type Resolver struct {
	rules []translate.RefRule
}

// NewResolver creates a resolver with the OCPP classification rules.
func NewResolver() *Resolver {
	return &Resolver{rules: refRules()}
}

// BaseImports returns the statements every generated struct needs.
func (r *Resolver) BaseImports() []string {
	return []string{serdeImport, validatorImport}
}

// PrimitiveType maps a declared JSON Schema type to a Rust type. Unknown or
// absent types degrade to serde_json::Value rather than erroring.
func (r *Resolver) PrimitiveType(schemaType, format string, imports translate.ImportSet) translate.Resolution {
	switch schemaType {
	case "string":
		if format == "date-time" {
			imports.Add(chronoImport)
			return translate.Resolution{Type: "DateTime<Utc>", Class: translate.ClassTimestamp}
		}
		return translate.Resolution{Type: "String", Class: translate.ClassText, NeedsValidation: true}
	case "integer":
		return translate.Resolution{Type: "i32", Class: translate.ClassInteger, NeedsValidation: true}
	case "number":
		imports.Add(decimalImport)
		return translate.Resolution{Type: "Decimal", Class: translate.ClassDecimal, NeedsValidation: true}
	case "boolean":
		return translate.Resolution{Type: "bool", Class: translate.ClassBool}
	default:
		imports.Add(valueImport)
		return translate.Resolution{Type: "Value", Class: translate.ClassDynamic}
	}
}

// ArrayType wraps an element resolution in Vec, validated at the sequence
// level.
func (r *Resolver) ArrayType(elem translate.Resolution, _ translate.ImportSet) translate.Resolution {
	e := elem
	return translate.Resolution{
		Type:            "Vec<" + elem.Type + ">",
		Class:           translate.ClassSequence,
		NeedsValidation: true,
		Elem:            &e,
	}
}

// RefType resolves a $ref definition name through the classification rules.
func (r *Resolver) RefType(defName string, imports translate.ImportSet) translate.Resolution {
	return translate.ResolveRef(r.rules, defName, imports)
}

// FieldName converts a wire name to a Rust-safe snake_case identifier.
func (r *Resolver) FieldName(jsonName string) string {
	name := translate.ToSnakeCase(jsonName)
	if _, reserved := rustKeywords[name]; reserved {
		return name + "_"
	}
	return name
}

// RenameNeeded reports whether a serde rename is required: snake-casing the
// original key must reproduce the field name, otherwise the rename is not
// derivable from rename_all = "camelCase" alone.
func (r *Resolver) RenameNeeded(fieldName, jsonName string) bool {
	return fieldName != translate.ToSnakeCase(jsonName)
}

// rustKeywords are reserved words that cannot be used as field identifiers.
var rustKeywords = map[string]struct{}{
	"as": {}, "async": {}, "await": {}, "box": {}, "break": {}, "const": {},
	"continue": {}, "crate": {}, "dyn": {}, "else": {}, "enum": {},
	"extern": {}, "false": {}, "fn": {}, "for": {}, "if": {}, "impl": {},
	"in": {}, "let": {}, "loop": {}, "match": {}, "mod": {}, "move": {},
	"mut": {}, "priv": {}, "pub": {}, "ref": {}, "return": {}, "self": {},
	"static": {}, "struct": {}, "super": {}, "trait": {}, "true": {},
	"type": {}, "unsafe": {}, "use": {}, "where": {}, "while": {},
}

// refRules is the ordered classification policy for $ref definition names:
// explicit per-name overrides first, then the known data type and
// enumeration sets, then suffix-based defaults, then the permissive
// fallback. Order is the priority.
func refRules() []translate.RefRule {
	return []translate.RefRule{
		{
			// Lives under a submodule of the enumerations namespace,
			// unlike every other enumeration.
			Match: translate.MatchNames("DERControlStatusEnumType"),
			Resolve: func(name string, imports translate.ImportSet) translate.Resolution {
				imports.Add("use crate::" + enumerationsModule + "::der_control::" + name + ";")
				return translate.Resolution{Type: name, Class: translate.ClassEnum}
			},
		},
		{
			// Not defined anywhere in the 2.1 schema set.
			Match: translate.MatchNames("EventDataType"),
			Resolve: func(_ string, imports translate.ImportSet) translate.Resolution {
				imports.Add(valueImport)
				return translate.Resolution{Type: "Value", Class: translate.ClassDynamic}
			},
		},
		{
			Match: translate.MatchNames(
				"AuthorizationData",
				"CustomDataType",
				"StatusInfoType",
				"IdTokenType",
				"IdTokenInfoType",
				"EVSEType",
				"TariffType",
				"OCSPRequestDataType",
			),
			Resolve: resolveDatatype,
		},
		{
			Match: translate.MatchNames(
				"GenericStatusEnumType",
				"AuthorizeCertificateStatusEnumType",
				"EnergyTransferModeEnumType",
				"ResetEnumType",
				"ResetStatusEnumType",
				"MessageTriggerEnumType",
				"TriggerMessageStatusEnumType",
			),
			Resolve: resolveEnumeration,
		},
		{
			Match:   translate.MatchSuffix("EnumType"),
			Resolve: resolveEnumeration,
		},
		{
			Match:   translate.MatchSuffix("Type"),
			Resolve: resolveDatatype,
		},
		{
			Match: translate.MatchAny,
			Resolve: func(string, translate.ImportSet) translate.Resolution {
				return translate.Resolution{Type: "String", Class: translate.ClassText, NeedsValidation: true}
			},
		},
	}
}

func resolveDatatype(name string, imports translate.ImportSet) translate.Resolution {
	imports.Add("use crate::" + datatypesModule + "::" + name + ";")
	return translate.Resolution{Type: name, Class: translate.ClassStruct, NeedsValidation: true}
}

func resolveEnumeration(name string, imports translate.ImportSet) translate.Resolution {
	imports.Add("use crate::" + enumerationsModule + "::" + name + ";")
	return translate.Resolution{Type: name, Class: translate.ClassEnum}
}
