// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import (
	"strings"

	"github.com/xenonlang/xnc/intern"
)

// SegmentKind distinguishes the handful of scope-segment shapes a Scope can
// be built from. Every segment names a module or an item; the root scope
// is the empty Scope and has no segment of its own.
type SegmentKind uint8

const (
	SegmentModule SegmentKind = iota
	SegmentItem
)

// ScopeSegment is one named step in a Scope.
type ScopeSegment struct {
	Name intern.ID
	Kind SegmentKind
}

// Scope is an ordered sequence of segments identifying a symbol's location
// in the module tree, interpreted the way a dotted path is: Scope{a, b, c}
// names "a.b.c". The root scope is the empty Scope.
type Scope []ScopeSegment

// Child returns a new Scope with seg appended; s is never mutated.
func (s Scope) Child(seg ScopeSegment) Scope {
	child := make(Scope, len(s)+1)
	copy(child, s)
	child[len(s)] = seg
	return child
}

// String renders a Scope as a dotted path for diagnostics, resolving each
// segment's interned name against names.
func (s Scope) String(names *intern.Table) string {
	parts := make([]string, len(s))
	for i, seg := range s {
		parts[i] = names.Text(seg.Name)
	}
	return strings.Join(parts, ".")
}

// Equal reports whether two scopes name the same path.
func (s Scope) Equal(o Scope) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
