// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package rust

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
)

// defaultMaxLength is applied to validated strings that carry no explicit
// maxLength, matching the OCPP crate convention.
const defaultMaxLength = 255

// fieldAttrs renders the serde and validate attribute lines for one field,
// indented for struct-body placement.
func fieldAttrs(f translate.FieldInfo) []string {
	var attrs []string
	if serde := serdeAttr(f); serde != "" {
		attrs = append(attrs, serde)
	}
	if validate := validateAttr(f); validate != "" {
		attrs = append(attrs, validate)
	}
	return attrs
}

func serdeAttr(f translate.FieldInfo) string {
	var parts []string
	if f.Rename {
		parts = append(parts, fmt.Sprintf("rename = %q", f.OriginalName))
	}
	if f.Optional {
		parts = append(parts, `skip_serializing_if = "Option::is_none"`)
	}

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return "    #[serde(" + parts[0] + ")]"
	default:
		var sb strings.Builder
		sb.WriteString("    #[serde(\n")
		for i, p := range parts {
			sb.WriteString("        " + p)
			if i < len(parts)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("    )]")
		return sb.String()
	}
}

func validateAttr(f translate.FieldInfo) string {
	var rules []string

	switch f.Class {
	case translate.ClassText:
		if f.Validated {
			rules = append(rules, lengthRule(f.MinLength, f.MaxLength, true))
		}
	case translate.ClassSequence:
		if f.Validated && (f.MinItems != nil || f.MaxItems != nil) {
			rules = append(rules, lengthRule(f.MinItems, f.MaxItems, false))
		}
		if f.Nested {
			rules = append(rules, "nested")
		}
	case translate.ClassStruct:
		if f.Nested {
			rules = append(rules, "nested")
		}
	case translate.ClassInteger, translate.ClassDecimal:
		if f.Validated {
			if rule := rangeRule(f.Minimum, f.Maximum); rule != "" {
				rules = append(rules, rule)
			}
		}
	}

	if len(rules) == 0 {
		return ""
	}
	return "    #[validate(" + strings.Join(rules, ", ") + ")]"
}

// lengthRule renders a length rule from optional bounds. String fields with
// no bound at all get the default maximum; item-count bounds never do.
func lengthRule(min, max *int, applyDefault bool) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("length(min = %d, max = %d)", *min, *max)
	case min != nil:
		return fmt.Sprintf("length(min = %d)", *min)
	case max != nil:
		return fmt.Sprintf("length(max = %d)", *max)
	case applyDefault:
		return fmt.Sprintf("length(max = %d)", defaultMaxLength)
	default:
		return ""
	}
}

func rangeRule(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("range(min = %s, max = %s)", formatBound(*min), formatBound(*max))
	case min != nil:
		return fmt.Sprintf("range(min = %s)", formatBound(*min))
	case max != nil:
		return fmt.Sprintf("range(max = %s)", formatBound(*max))
	default:
		return ""
	}
}

// formatBound renders a numeric bound without a trailing fraction for
// integral values.
func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
