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

// Package typegen implements the item-level type pass (§4.8): for every
// type-forming item, it records a TypeRegistry node and binds the item's
// symbol to it; for items carrying embedded sub-types (field/param/return/
// const-static annotations), it walks those sub-type expressions and
// registers the types they denote too. It never enters a function body —
// body-level type inference is explicitly out of this core's scope.
package typegen

import (
	"github.com/xenonlang/xnc/ast"
)

// TypeKind discriminates the shape of a registered type.
type TypeKind uint8

const (
	// TypePathRef is a reference to a type-forming item's own symbol — the
	// shape every type-forming item (struct, enum, alias, ...) registers
	// for itself (§4.8 "a path-typed symbol reference").
	TypePathRef TypeKind = iota
	// TypeTuple mirrors ast.TypeTuple.
	TypeTuple
	// TypeRecord mirrors ast.TypeRecord (only reachable pre-lowering; by
	// the time this pass runs on HIR-adjacent data every anonymous record
	// has already been hoisted to its own item by package lower, so this
	// kind is only produced when visit_type is invoked directly against
	// surface ast.Type values in tests).
	TypeRecord
	// TypeFn mirrors ast.TypeFn.
	TypeFn
)

// Type is one entry in a Registry.
type Type struct {
	Kind TypeKind

	// TypePathRef
	Sym ast.SymbolRef

	// TypeTuple
	Elems []ast.TypeRef

	// TypeRecord
	Fields []RecordField

	// TypeFn
	Params []ast.TypeRef
	Return ast.TypeRef
}

// RecordField is one field of a registered record type.
type RecordField struct {
	Name  ast.NodeId // stands in for the field's interned name via the originating ast.RecordField; kept minimal since records don't survive lowering
	Field ast.TypeRef
}

// Registry holds every Type registered during the item-level type pass,
// addressed by ast.TypeRef the same way RootSymbolTable addresses Symbol
// by ast.SymbolRef.
type Registry struct {
	types []Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry { return &Registry{} }

// add appends t and returns its new ref.
func (r *Registry) add(t Type) ast.TypeRef {
	ref := ast.TypeRef(len(r.types))
	r.types = append(r.types, t)
	return ref
}

// Get resolves ref back to its Type.
func (r *Registry) Get(ref ast.TypeRef) (Type, bool) {
	if ref < 0 || int(ref) >= len(r.types) {
		return Type{}, false
	}
	return r.types[ref], true
}

// RegisterPathRef registers a type-forming item's own symbol as a
// TypePathRef, the entry every type-defining item gets for itself (§4.8).
func (r *Registry) RegisterPathRef(sym ast.SymbolRef) ast.TypeRef {
	return r.add(Type{Kind: TypePathRef, Sym: sym})
}
