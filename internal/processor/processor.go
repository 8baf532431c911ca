// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

// Package processor drives a generation run: it walks the schema
// directory, assembles message pairs, and writes the generated sources.
package processor

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/config"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/jschema"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate/rust"
)

// ModFileName is the name of the aggregation file.
const ModFileName = "mod.rs"

// schemaExtensions are the file extensions treated as schema documents.
var schemaExtensions = map[string]struct{}{
	".json": {},
	".yaml": {},
	".yml":  {},
}

// Processor runs the schema-to-source transformation. Files are processed
// sequentially; the entire input set is collected before anything is
// emitted, since pairing completeness cannot be judged earlier.
type Processor struct {
	opts       config.Options
	fsys       fs.FS
	translator *rust.Translator
	out        io.Writer
}

// New creates a Processor reading schemas from the configured directory.
func New(opts config.Options, out io.Writer) *Processor {
	return NewWithFS(opts, os.DirFS(opts.SchemaDir), out)
}

// NewWithFS creates a Processor reading schemas from the given filesystem.
func NewWithFS(opts config.Options, fsys fs.FS, out io.Writer) *Processor {
	if out == nil {
		out = io.Discard
	}
	return &Processor{
		opts:       opts,
		fsys:       fsys,
		translator: rust.New(),
		out:        out,
	}
}

// Result summarizes one generation run.
type Result struct {
	Paired     []string // base names of generated request/response pairs
	Standalone []string // base names of generated standalone messages
	Skipped    []string // base names omitted for incompleteness
	Stats      translate.Stats
}

// CollectPairs walks the schema tree and groups every schema file into
// message pairs by base name. A malformed file aborts the run: silently
// skipping it would produce an inconsistent generated set.
func (p *Processor) CollectPairs() (map[string]*translate.MessagePair, error) {
	loader := jschema.NewLoader(p.fsys)
	resolver := p.translator.Resolver()
	pairs := make(map[string]*translate.MessagePair)

	err := fs.WalkDir(p.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if _, ok := schemaExtensions[ext]; !ok {
			return nil
		}

		stem := strings.TrimSuffix(filepath.Base(path), ext)
		baseName, kind := translate.ParseMessageType(stem)

		doc, err := loader.LoadFile(path)
		if err != nil {
			return err
		}
		info := translate.AssembleStruct(stem, doc, resolver)

		pair, ok := pairs[baseName]
		if !ok {
			pair = translate.NewMessagePair(baseName)
			pairs[baseName] = pair
		}
		if pair.Fill(kind, info) {
			fmt.Fprintf(p.out, "Warning: Duplicate schema for %s overwrites an earlier file\n", stem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pairs, nil
}

// Stats collects pairs and reports counts without generating anything.
func (p *Processor) Stats() (translate.Stats, error) {
	pairs, err := p.CollectPairs()
	if err != nil {
		return translate.Stats{}, err
	}
	return stats(pairs), nil
}

// Run processes all schema files and writes the generated sources.
func (p *Processor) Run() (*Result, error) {
	pairs, err := p.CollectPairs()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(p.opts.OutputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{Stats: stats(pairs)}

	for _, baseName := range sortedBaseNames(pairs) {
		pair := pairs[baseName]
		if !pair.Complete() {
			fmt.Fprintf(p.out, "Warning: Incomplete pair for %s\n", baseName)
			result.Skipped = append(result.Skipped, baseName)
			continue
		}

		data, err := p.translator.RenderMessage(pair)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", baseName, err)
		}

		name := p.translator.ModuleName(baseName) + p.translator.FileExtension()
		if err := p.writeFile(name, data); err != nil {
			return nil, fmt.Errorf("%s: %w", baseName, err)
		}
		fmt.Fprintf(p.out, "Generated: %s\n", baseName)

		if pair.Standalone() {
			result.Standalone = append(result.Standalone, baseName)
		} else {
			result.Paired = append(result.Paired, baseName)
		}
	}

	if p.opts.GenerateModFile {
		data, err := p.translator.RenderModFile(result.Paired, result.Standalone)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ModFileName, err)
		}
		if err := p.writeFile(ModFileName, data); err != nil {
			return nil, fmt.Errorf("%s: %w", ModFileName, err)
		}
		fmt.Fprintf(p.out, "Generated %s file\n", ModFileName)
	}

	return result, nil
}

func (p *Processor) writeFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(p.opts.OutputDir, name), data, 0o600)
}

func stats(pairs map[string]*translate.MessagePair) translate.Stats {
	s := translate.Stats{Total: len(pairs)}
	for _, pair := range pairs {
		if pair.Complete() {
			s.Complete++
		} else {
			s.Incomplete++
		}
	}
	return s
}

func sortedBaseNames(pairs map[string]*translate.MessagePair) []string {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
