// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package translate

import "sort"

// TypeClass classifies a resolved type independently of the target language.
// The assembler uses it to decide which constraint keywords apply to a field.
type TypeClass int

const (
	// ClassText is a length-validated string type.
	ClassText TypeClass = iota
	// ClassTimestamp is a date-time type with no length validation.
	ClassTimestamp
	// ClassInteger is a 32-bit signed integer.
	ClassInteger
	// ClassDecimal is a fixed-point decimal number.
	ClassDecimal
	// ClassBool is a boolean.
	ClassBool
	// ClassSequence is an array of a resolved element type.
	ClassSequence
	// ClassDynamic is an untyped placeholder for unknown shapes.
	ClassDynamic
	// ClassStruct is a structured reference type validated recursively.
	ClassStruct
	// ClassEnum is an enumeration type, self-validating by construction.
	ClassEnum
)

// Resolution is the outcome of resolving one schema node.
type Resolution struct {
	Type            string
	Class           TypeClass
	NeedsValidation bool
	Elem            *Resolution // element resolution, set for ClassSequence
}

// ImportSet accumulates the dependency statements a struct needs to compile.
// Registration is idempotent.
type ImportSet map[string]struct{}

// NewImportSet returns an empty import set.
func NewImportSet() ImportSet {
	return make(ImportSet)
}

// Add registers one or more import statements.
func (s ImportSet) Add(stmts ...string) {
	for _, stmt := range stmts {
		s[stmt] = struct{}{}
	}
}

// Merge unions another set into this one.
func (s ImportSet) Merge(other ImportSet) {
	for stmt := range other {
		s[stmt] = struct{}{}
	}
}

// Sorted returns the statements in lexicographic order.
func (s ImportSet) Sorted() []string {
	stmts := make([]string, 0, len(s))
	for stmt := range s {
		stmts = append(stmts, stmt)
	}
	sort.Strings(stmts)
	return stmts
}

// FieldInfo is one resolved struct field.
type FieldInfo struct {
	Name         string // language-safe target identifier
	OriginalName string // wire name from the schema document
	Type         string // fully resolved target type string
	Class        TypeClass
	Optional     bool // true if absent from the schema's required set
	Validated    bool // true if validation constraints apply
	Nested       bool // structured type validated recursively, directly or per element
	Rename       bool // true when case conversion alone cannot bridge Name and OriginalName
	Description  string

	MinLength, MaxLength *int
	Minimum, Maximum     *float64
	MinItems, MaxItems   *int
}

// StructInfo is one resolved message half.
type StructInfo struct {
	Name    string
	Fields  []FieldInfo // declaration order from the source document
	Imports ImportSet
}

// Stats summarizes one processing run.
type Stats struct {
	Total      int
	Complete   int
	Incomplete int
}
