// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ocpp-messages-gen-tool Authors

package translate

import "strings"

// RefRule pairs a predicate on a $ref definition name with the resolution it
// produces. A resolver's rule list is checked in order and must end with an
// unconditional fallback, which turns the classification priority into data
// rather than control flow.
type RefRule struct {
	Match   func(name string) bool
	Resolve func(name string, imports ImportSet) Resolution
}

// ResolveRef applies the first matching rule. It returns the zero Resolution
// only when no rule matches, which a well-formed rule list never allows.
func ResolveRef(rules []RefRule, name string, imports ImportSet) Resolution {
	for _, rule := range rules {
		if rule.Match(name) {
			return rule.Resolve(name, imports)
		}
	}
	return Resolution{}
}

// MatchNames builds a predicate matching any of the given names exactly.
func MatchNames(names ...string) func(string) bool {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

// MatchSuffix builds a predicate matching names with the given suffix.
func MatchSuffix(suffix string) func(string) bool {
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}

// MatchAny matches every name. Used for the terminal fallback rule.
func MatchAny(string) bool {
	return true
}
