// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package translate

import (
	"regexp"
	"strings"
)

var (
	acronymSplit = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelSplit   = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// splitWords splits camelCase, PascalCase, snake_case, and kebab-case into
// lowercase words. Acronym runs stay together: "NotifyEVChargingNeeds"
// splits as notify, ev, charging, needs.
func splitWords(s string) []string {
	s = acronymSplit.ReplaceAllString(s, "$1 $2")
	s = camelSplit.ReplaceAllString(s, "$1 $2")

	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, strings.ToLower(p))
		}
	}
	return words
}

// ToSnakeCase converts a string to a snake_case identifier.
func ToSnakeCase(s string) string {
	result := strings.Join(splitWords(s), "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// ToPascalCase converts a string to PascalCase for type name generation.
func ToPascalCase(s string) string {
	var sb strings.Builder
	for _, word := range splitWords(s) {
		sb.WriteString(strings.ToUpper(word[:1]) + word[1:])
	}
	return sb.String()
}
