// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package rust

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestSerdeAttr(t *testing.T) {
	// No rename, required: nothing to emit.
	assert.Empty(t, serdeAttr(translate.FieldInfo{Name: "status", OriginalName: "status"}))

	// Single part stays on one line.
	assert.Equal(t,
		`    #[serde(skip_serializing_if = "Option::is_none")]`,
		serdeAttr(translate.FieldInfo{Name: "evse_id", OriginalName: "evseId", Optional: true}))

	assert.Equal(t,
		`    #[serde(rename = "type")]`,
		serdeAttr(translate.FieldInfo{Name: "type_", OriginalName: "type", Rename: true}))

	// Two parts spread over the multi-line form.
	want := "    #[serde(\n" +
		"        rename = \"type\",\n" +
		"        skip_serializing_if = \"Option::is_none\"\n" +
		"    )]"
	assert.Equal(t, want,
		serdeAttr(translate.FieldInfo{Name: "type_", OriginalName: "type", Rename: true, Optional: true}))
}

func TestValidateAttr_Text(t *testing.T) {
	// No explicit bound falls back to the default maximum.
	assert.Equal(t, "    #[validate(length(max = 255))]",
		validateAttr(translate.FieldInfo{Class: translate.ClassText, Validated: true}))

	assert.Equal(t, "    #[validate(length(min = 1, max = 20))]",
		validateAttr(translate.FieldInfo{
			Class: translate.ClassText, Validated: true,
			MinLength: intp(1), MaxLength: intp(20),
		}))

	// Timestamps never validate.
	assert.Empty(t, validateAttr(translate.FieldInfo{Class: translate.ClassTimestamp}))
}

func TestValidateAttr_Range(t *testing.T) {
	assert.Equal(t, "    #[validate(range(min = 0))]",
		validateAttr(translate.FieldInfo{
			Class: translate.ClassInteger, Validated: true, Minimum: floatp(0),
		}))

	assert.Equal(t, "    #[validate(range(min = 0, max = 100))]",
		validateAttr(translate.FieldInfo{
			Class: translate.ClassDecimal, Validated: true,
			Minimum: floatp(0), Maximum: floatp(100),
		}))

	// Fractional bounds keep their fraction; integral bounds do not grow one.
	assert.Equal(t, "    #[validate(range(min = 0.5))]",
		validateAttr(translate.FieldInfo{
			Class: translate.ClassDecimal, Validated: true, Minimum: floatp(0.5),
		}))

	// An unbounded number has no rule to emit.
	assert.Empty(t, validateAttr(translate.FieldInfo{
		Class: translate.ClassInteger, Validated: true,
	}))
}

func TestValidateAttr_SequenceAndNested(t *testing.T) {
	assert.Equal(t, "    #[validate(length(min = 1, max = 4), nested)]",
		validateAttr(translate.FieldInfo{
			Class: translate.ClassSequence, Validated: true, Nested: true,
			MinItems: intp(1), MaxItems: intp(4),
		}))

	// Item bounds never receive the string default.
	assert.Equal(t, "    #[validate(nested)]",
		validateAttr(translate.FieldInfo{
			Class: translate.ClassSequence, Validated: true, Nested: true,
		}))

	assert.Equal(t, "    #[validate(nested)]",
		validateAttr(translate.FieldInfo{Class: translate.ClassStruct, Nested: true}))

	// Sequences of primitives with bounds validate the count alone.
	assert.Equal(t, "    #[validate(length(max = 10))]",
		validateAttr(translate.FieldInfo{
			Class: translate.ClassSequence, Validated: true, MaxItems: intp(10),
		}))
}

func TestFieldAttrs_Order(t *testing.T) {
	attrs := fieldAttrs(translate.FieldInfo{
		Name: "reason_code", OriginalName: "reasonCode",
		Class: translate.ClassText, Validated: true, Optional: true,
		MaxLength: intp(20),
	})

	assert.Equal(t, []string{
		`    #[serde(skip_serializing_if = "Option::is_none")]`,
		"    #[validate(length(max = 20))]",
	}, attrs)
}
