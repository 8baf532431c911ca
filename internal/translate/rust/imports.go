// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package rust

import (
	"sort"
	"strings"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
)

// OptimizeImports turns an unordered import set into a deterministic,
// minimal ordered list for emission. Crate imports are grouped by module
// with type names deduplicated and sorted; free-form imports follow, sorted.
// Repeated generation from unchanged input must produce byte-identical
// output, so everything here is ordered.
func OptimizeImports(imports translate.ImportSet) []string {
	grouped := make(map[string][]string)
	var other []string

	for stmt := range imports {
		if module, typeName, ok := parseCrateImport(stmt); ok {
			grouped[module] = append(grouped[module], typeName)
		} else {
			other = append(other, stmt)
		}
	}

	modules := make([]string, 0, len(grouped))
	for module := range grouped {
		modules = append(modules, module)
	}
	sort.Strings(modules)

	result := make([]string, 0, len(modules)+len(other))
	for _, module := range modules {
		result = append(result, renderCrateImport(module, grouped[module]))
	}

	sort.Strings(other)
	return append(result, other...)
}

// parseCrateImport splits "use crate::<module>::<Type>;" into module and
// type name. Statements without a module path or not rooted in the crate
// are reported as free-form.
func parseCrateImport(stmt string) (module, typeName string, ok bool) {
	body, found := strings.CutPrefix(stmt, "use crate::")
	if !found {
		return "", "", false
	}
	body, found = strings.CutSuffix(body, ";")
	if !found {
		return "", "", false
	}

	idx := strings.LastIndex(body, "::")
	if idx < 0 {
		return "", "", false
	}
	return body[:idx], body[idx+2:], true
}

// renderCrateImport renders one module group: a single type inline, a small
// group combined on one line, a larger group in multi-line form.
func renderCrateImport(module string, types []string) string {
	sort.Strings(types)
	types = dedupe(types)

	switch {
	case len(types) == 1:
		return "use crate::" + module + "::" + types[0] + ";"
	case len(types) <= 3:
		return "use crate::" + module + "::{" + strings.Join(types, ", ") + "};"
	default:
		var sb strings.Builder
		sb.WriteString("use crate::" + module + "::{\n")
		for _, t := range types {
			sb.WriteString("    " + t + ",\n")
		}
		sb.WriteString("};")
		return sb.String()
	}
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
