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

import "github.com/xenonlang/xnc/intern"

// PatternKind discriminates the shape of a Pattern node.
type PatternKind uint8

const (
	PatternWildcard PatternKind = iota
	PatternName
	PatternTuple
	PatternLiteral
	PatternBool
)

// Pattern is a tagged union over the pattern shapes let-lowering (§4.5.2)
// must distinguish: a bare name (the common case), a tuple of
// sub-patterns (triggers temp-binding lowering), a literal drawn from the
// lexer's LiteralTable, a bare boolean (used by the corrected
// literal_pattern true/false desugaring — `true`/`false` are never lexer
// literals, so this is a separate variant rather than a LiteralTable
// entry), and the wildcard `_`.
type Pattern struct {
	node
	Kind PatternKind

	Name intern.ID
	Mut  bool

	Elems []*Pattern

	Literal intern.LiteralID
	Bool    bool
}

// IsTrivial reports whether p is a single bound name (or `_`), the shape
// that lets let-lowering skip the temp-binding/match machinery entirely.
func (p *Pattern) IsTrivial() bool {
	return p.Kind == PatternWildcard || p.Kind == PatternName
}
