// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
)

func importSet(stmts ...string) translate.ImportSet {
	set := translate.NewImportSet()
	set.Add(stmts...)
	return set
}

func TestOptimizeImports_SingleType(t *testing.T) {
	got := OptimizeImports(importSet(
		"use crate::v2_1::datatypes::CustomDataType;",
	))
	assert.Equal(t, []string{"use crate::v2_1::datatypes::CustomDataType;"}, got)
}

func TestOptimizeImports_SmallGroup(t *testing.T) {
	got := OptimizeImports(importSet(
		"use crate::v2_1::datatypes::StatusInfoType;",
		"use crate::v2_1::datatypes::CustomDataType;",
		"use crate::v2_1::datatypes::IdTokenType;",
	))
	assert.Equal(t, []string{
		"use crate::v2_1::datatypes::{CustomDataType, IdTokenType, StatusInfoType};",
	}, got)
}

func TestOptimizeImports_LargeGroupMultiLine(t *testing.T) {
	got := OptimizeImports(importSet(
		"use crate::v2_1::datatypes::StatusInfoType;",
		"use crate::v2_1::datatypes::CustomDataType;",
		"use crate::v2_1::datatypes::IdTokenType;",
		"use crate::v2_1::datatypes::EVSEType;",
	))
	want := "use crate::v2_1::datatypes::{\n" +
		"    CustomDataType,\n" +
		"    EVSEType,\n" +
		"    IdTokenType,\n" +
		"    StatusInfoType,\n" +
		"};"
	assert.Equal(t, []string{want}, got)
}

func TestOptimizeImports_GroupsAndFreeForm(t *testing.T) {
	got := OptimizeImports(importSet(
		validatorImport,
		serdeImport,
		"use crate::v2_1::enumerations::ResetEnumType;",
		"use crate::v2_1::datatypes::CustomDataType;",
		chronoImport,
	))
	assert.Equal(t, []string{
		"use crate::v2_1::datatypes::CustomDataType;",
		"use crate::v2_1::enumerations::ResetEnumType;",
		chronoImport,
		serdeImport,
		validatorImport,
	}, got)
}

func TestOptimizeImports_Deduplicates(t *testing.T) {
	set := importSet(
		"use crate::v2_1::datatypes::CustomDataType;",
		"use crate::v2_1::datatypes::CustomDataType;",
	)
	got := OptimizeImports(set)
	assert.Equal(t, []string{"use crate::v2_1::datatypes::CustomDataType;"}, got)
}

func TestOptimizeImports_Deterministic(t *testing.T) {
	set := importSet(
		serdeImport,
		validatorImport,
		"use crate::v2_1::datatypes::CustomDataType;",
		"use crate::v2_1::datatypes::StatusInfoType;",
		"use crate::v2_1::enumerations::ResetEnumType;",
		"use crate::v2_1::enumerations::ResetStatusEnumType;",
	)
	first := OptimizeImports(set)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, OptimizeImports(set))
	}
}

func TestParseCrateImport(t *testing.T) {
	tests := []struct {
		stmt     string
		module   string
		typeName string
		ok       bool
	}{
		{"use crate::v2_1::datatypes::CustomDataType;", "v2_1::datatypes", "CustomDataType", true},
		{"use crate::v2_1::enumerations::der_control::DERControlStatusEnumType;", "v2_1::enumerations::der_control", "DERControlStatusEnumType", true},
		{serdeImport, "", "", false},
		{"use crate::lib;", "", "", false},
	}

	for _, tt := range tests {
		module, typeName, ok := parseCrateImport(tt.stmt)
		assert.Equal(t, tt.ok, ok, tt.stmt)
		assert.Equal(t, tt.module, module, tt.stmt)
		assert.Equal(t, tt.typeName, typeName, tt.stmt)
	}
}
