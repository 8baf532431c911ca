// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package jschema

import (
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Document is one loaded schema file: the parsed tree plus the declared
// order of its top-level properties. Order is empty when the raw text gave
// no usable order, in which case callers fall back to map iteration.
type Document struct {
	Schema *Schema
	Order  []string
}

// Loader loads schema documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return parseDocument(data, filePath)
}

func parseDocument(data []byte, filePath string) (*Document, error) {
	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		return parseYAML(data, filePath)
	case strings.HasSuffix(filePath, ".json"):
		var schema Schema
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
		return &Document{Schema: &schema, Order: PropertyOrder(data)}, nil
	default:
		return nil, fmt.Errorf("%s: format not supported", filePath)
	}
}

// parseYAML decodes a YAML schema by round-tripping through JSON, since the
// schema model only implements JSON unmarshalling.
func parseYAML(data []byte, filePath string) (*Document, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	raw, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	var schema Schema
	if err := json.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return &Document{Schema: &schema, Order: yamlPropertyOrder(data)}, nil
}
