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

// TypeKind discriminates the shape of a Type node.
type TypeKind uint8

const (
	TypePath TypeKind = iota
	TypeTuple
	TypeRecord
	TypeFn
)

// RecordField is one member of an anonymous record type (§4.5.2): a name
// and its type, in declaration order.
type RecordField struct {
	Name intern.ID
	Type *Type
}

// Type is a tagged union over every type-position shape the lowering
// engine cares about. TypeRecord is the one the lowering engine rewrites
// away entirely (§4.5.2 "Anonymous record types"); the others pass through
// largely unchanged into HIR's own type representation.
type Type struct {
	node
	Kind TypeKind

	// TypePath
	PathSegments []intern.ID

	// TypeTuple, and TypeFn's parameter list
	Elems []*Type

	// TypeRecord
	Fields []RecordField

	// TypeFn
	Return *Type
}
