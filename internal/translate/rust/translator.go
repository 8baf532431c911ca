// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package rust

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/AnlangA/ocpp-messages-gen-tool/internal/translate"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var tmpl = template.Must(
	template.New("rust").Funcs(sprig.FuncMap()).ParseFS(templatesFS, "templates/*.tmpl"),
)

// Translator emits Rust source for assembled message pairs.
type Translator struct {
	resolver *Resolver
}

// New creates a Rust translator.
func New() *Translator {
	return &Translator{resolver: NewResolver()}
}

// Resolver returns the type resolver used during struct assembly.
func (t *Translator) Resolver() translate.TypeResolver {
	return t.resolver
}

// FileExtension returns the extension for generated files.
func (t *Translator) FileExtension() string {
	return ".rs"
}

// ModuleName returns the generated module name for a message base name.
func (t *Translator) ModuleName(baseName string) string {
	return translate.ToSnakeCase(baseName)
}

// messageData is the template input for one generated message file.
type messageData struct {
	Imports []string
	Structs []structData
}

type structData struct {
	Comment  string
	Name     string
	Fields   []fieldData
	Required []fieldData
	Optional []fieldData
	Params   []string
}

type fieldData struct {
	Name     string
	Doc      string
	Attrs    []string
	Decl     string // declared field type, Option-wrapped when optional
	Inner    string // resolved type without the Option wrapper
	Optional bool
}

// RenderMessage renders the source file for one complete message pair or
// standalone message: optimized imports followed by each struct and its
// impl block.
func (t *Translator) RenderMessage(pair *translate.MessagePair) ([]byte, error) {
	data := messageData{
		Imports: OptimizeImports(pair.Imports),
	}

	if pair.Standalone() {
		data.Structs = append(data.Structs, buildStruct(pair.Single,
			fmt.Sprintf("%s message structure.", pair.Single.Name)))
	} else {
		data.Structs = append(data.Structs,
			buildStruct(pair.Request,
				fmt.Sprintf("Request body for the %s request.", pair.BaseName)),
			buildStruct(pair.Response,
				fmt.Sprintf("Response body for the %s response.", pair.BaseName)))
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "message.rs.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute message template: %w", err)
	}
	return buf.Bytes(), nil
}

func buildStruct(info *translate.StructInfo, comment string) structData {
	s := structData{
		Comment: comment,
		Name:    info.Name,
	}

	for _, f := range info.Fields {
		fd := fieldData{
			Name:     f.Name,
			Doc:      f.Description,
			Attrs:    fieldAttrs(f),
			Inner:    f.Type,
			Decl:     f.Type,
			Optional: f.Optional,
		}
		if f.Optional {
			fd.Decl = "Option<" + f.Type + ">"
		}

		s.Fields = append(s.Fields, fd)
		if f.Optional {
			s.Optional = append(s.Optional, fd)
		} else {
			s.Required = append(s.Required, fd)
			s.Params = append(s.Params, fd.Name+": "+fd.Inner)
		}
	}

	return s
}

// modFileData is the template input for the aggregation file. Paired
// messages come first, then standalone messages, each group sorted by
// module name.
type modFileData struct {
	Paired     []modEntry
	Standalone []modEntry
}

type modEntry struct {
	Module string
	Export string
}

// RenderModFile renders the mod.rs aggregation file enumerating and
// re-exporting the generated modules.
func (t *Translator) RenderModFile(paired, standalone []string) ([]byte, error) {
	data := modFileData{}
	for _, base := range paired {
		data.Paired = append(data.Paired, modEntry{
			Module: t.ModuleName(base),
			Export: "{" + base + "Request, " + base + "Response}",
		})
	}
	for _, base := range standalone {
		data.Standalone = append(data.Standalone, modEntry{
			Module: t.ModuleName(base),
			Export: base,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "mod.rs.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute mod template: %w", err)
	}
	return buf.Bytes(), nil
}
