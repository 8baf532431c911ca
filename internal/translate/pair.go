// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package translate

import "strings"

// MessageKind classifies one schema file within a message pair.
type MessageKind int

const (
	// MessageRequest is the request half of a paired message.
	MessageRequest MessageKind = iota
	// MessageResponse is the response half of a paired message.
	MessageResponse
	// MessageStandalone is a message with no Request/Response suffix,
	// e.g. NotifyPeriodicEventStream.
	MessageStandalone
)

// ParseMessageType derives the pairing base name from a schema file stem by
// stripping a trailing Request or Response suffix.
func ParseMessageType(stem string) (string, MessageKind) {
	if base, ok := strings.CutSuffix(stem, "Request"); ok && base != "" {
		return base, MessageRequest
	}
	if base, ok := strings.CutSuffix(stem, "Response"); ok && base != "" {
		return base, MessageResponse
	}
	return stem, MessageStandalone
}

// MessagePair groups up to one request and one response struct under a
// shared base name, or a single standalone struct. Import sets merge
// additively on every fill and are never cleared.
type MessagePair struct {
	BaseName string
	Request  *StructInfo
	Response *StructInfo
	Single   *StructInfo
	Imports  ImportSet
}

// NewMessagePair creates an empty pair for a base name.
func NewMessagePair(baseName string) *MessagePair {
	return &MessagePair{
		BaseName: baseName,
		Imports:  NewImportSet(),
	}
}

// Fill stores a struct into the slot for kind and merges its imports.
// It reports whether an earlier fill for the same slot was overwritten.
func (p *MessagePair) Fill(kind MessageKind, s *StructInfo) bool {
	p.Imports.Merge(s.Imports)

	var slot **StructInfo
	switch kind {
	case MessageRequest:
		slot = &p.Request
	case MessageResponse:
		slot = &p.Response
	default:
		slot = &p.Single
	}

	overwrote := *slot != nil
	*slot = s
	return overwrote
}

// Complete reports whether the pairing policy for this base name is
// satisfied: both halves present for paired messages, or the one struct
// present for standalone messages.
func (p *MessagePair) Complete() bool {
	if p.Single != nil {
		return true
	}
	return p.Request != nil && p.Response != nil
}

// Standalone reports whether this pair holds a suffix-less message.
func (p *MessagePair) Standalone() bool {
	return p.Single != nil
}

// Structs returns the pair's structs in emission order.
func (p *MessagePair) Structs() []*StructInfo {
	if p.Single != nil {
		return []*StructInfo{p.Single}
	}
	var structs []*StructInfo
	if p.Request != nil {
		structs = append(structs, p.Request)
	}
	if p.Response != nil {
		structs = append(structs, p.Response)
	}
	return structs
}
