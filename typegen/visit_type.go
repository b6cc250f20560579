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

package typegen

import "github.com/xenonlang/xnc/ast"

// VisitType is TypeGenUtils::visit_type's counterpart (§4.8): it walks t's
// structure, registering a Type for every sub-type expression it finds
// (recursing through tuple elements, record fields, and function
// parameter/return types), and returns the ref for t itself.
//
// A TypePath's target symbol is left unresolved here (Sym: ast.NoSymbol):
// binding a path type to the symbol it names requires walking scopes
// against RootSymbolTable with full name-resolution rules (shadowing,
// wildcard uses, etc.), which is body-level name resolution and out of
// this core's scope per §1's "code generation beyond HIR" non-goal family
// — this pass only records the shape an item's declared types have, which
// is everything the post-condition in §4.8/§8 property 10 requires.
func VisitType(reg *Registry, t *ast.Type) ast.TypeRef {
	if t == nil {
		return ast.NoType
	}
	switch t.Kind {
	case ast.TypePath:
		return reg.add(Type{Kind: TypePathRef, Sym: ast.NoSymbol})
	case ast.TypeTuple:
		elems := make([]ast.TypeRef, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = VisitType(reg, e)
		}
		return reg.add(Type{Kind: TypeTuple, Elems: elems})
	case ast.TypeRecord:
		fields := make([]RecordField, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = RecordField{Field: VisitType(reg, f.Type)}
		}
		return reg.add(Type{Kind: TypeRecord, Fields: fields})
	case ast.TypeFn:
		params := make([]ast.TypeRef, len(t.Elems))
		for i, e := range t.Elems {
			params[i] = VisitType(reg, e)
		}
		ret := VisitType(reg, t.Return)
		return reg.add(Type{Kind: TypeFn, Params: params, Return: ret})
	default:
		return reg.add(Type{Kind: TypePathRef, Sym: ast.NoSymbol})
	}
}
