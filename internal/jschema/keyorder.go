// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package jschema

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// PropertyOrder returns the declared order of the top-level "properties"
// keys of a JSON schema document. The parsed property map does not preserve
// key order, but declaration order materially affects generated code
// readability and diffability, so it is recovered from the raw text.
//
// The primary path is a streaming token walk that records key order per
// JSON path. If that yields nothing for the root properties object, a
// manual brace-depth scan of the last "properties" occurrence is tried.
// An empty result means the caller has no order guarantee.
func PropertyOrder(raw []byte) []string {
	if order := ExtractKeyOrder(raw)["properties"]; len(order) > 0 {
		return order
	}
	return scanPropertyOrder(raw)
}

// ExtractKeyOrder parses raw JSON and extracts the order of keys for all
// "properties" objects. Returns a map from JSON path (e.g. "properties",
// "definitions.IdTokenType.properties") to ordered keys.
func ExtractKeyOrder(raw []byte) map[string][]string {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}

		switch t := token.(type) {
		case json.Delim:
			if t == '{' {
				var keys []string
				for dec.More() {
					keyToken, err := dec.Token()
					if err != nil {
						return
					}
					key, ok := keyToken.(string)
					if !ok {
						continue
					}
					keys = append(keys, key)

					var newPath string
					if path == "" {
						newPath = key
					} else {
						newPath = path + "." + key
					}

					extract(dec, newPath)
				}
				// Consume the closing brace
				dec.Token() //nolint:errcheck

				if strings.HasSuffix(path, "properties") || path == "properties" {
					result[path] = keys
				}
			} else if t == '[' {
				for dec.More() {
					extract(dec, path)
				}
				// Consume the closing bracket
				dec.Token() //nolint:errcheck
			}
		}
	}

	// The goccy decoder does not implement Token(), so the token walk
	// stays on encoding/json.
	dec := json.NewDecoder(bytes.NewReader(raw))
	extract(dec, "")

	return result
}

// scanPropertyOrder recovers key order from the last "properties" object in
// the raw text using a brace-depth scan. The last occurrence belongs to the
// top-level schema, since nested definitions appear earlier in the file.
func scanPropertyOrder(raw []byte) []string {
	content := string(raw)
	last := strings.LastIndex(content, `"properties"`)
	if last < 0 {
		return nil
	}
	content = content[last:]

	braceStart := strings.IndexByte(content, '{')
	if braceStart < 0 {
		return nil
	}

	var order []string
	chars := []rune(content)
	pos := braceStart + 1
	depth := 1

	for pos < len(chars) && depth > 0 {
		switch chars[pos] {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth != 1 {
				break
			}
			pos++
			var name strings.Builder
			for pos < len(chars) && chars[pos] != '"' {
				name.WriteRune(chars[pos])
				pos++
			}
			if pos >= len(chars) {
				return order
			}
			pos++
			for pos < len(chars) && isSpace(chars[pos]) {
				pos++
			}
			// A quoted string followed by a colon is a key, not a value.
			if pos < len(chars) && chars[pos] == ':' {
				order = append(order, name.String())
			}
			continue
		}
		pos++
	}

	return order
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// yamlPropertyOrder returns the top-level "properties" key order of a YAML
// document. YAML nodes preserve document order, so no text scan is needed.
func yamlPropertyOrder(data []byte) []string {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "properties" {
			continue
		}
		props := root.Content[i+1]
		if props.Kind != yaml.MappingNode {
			return nil
		}
		order := make([]string, 0, len(props.Content)/2)
		for j := 0; j < len(props.Content); j += 2 {
			order = append(order, props.Content[j].Value)
		}
		return order
	}
	return nil
}
