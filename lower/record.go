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

package lower

import (
	"fmt"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/source"
)

// lowerTypeRef lowers a type position, hoisting any anonymous record it
// contains out to a fresh module-scope struct (§4.5.2 "Anonymous record
// types") and rewriting the position to a path reference to it. Every
// other Type shape passes through unchanged — HIR reuses ast.Type directly
// once records are gone, the one shape it cannot represent as-is.
func lowerTypeRef(l *Lowerer, t *ast.Type) *ast.Type {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case ast.TypeRecord:
		return hoistRecord(l, t)
	case ast.TypeTuple:
		elems := make([]*ast.Type, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = lowerTypeRef(l, e)
		}
		return &ast.Type{Kind: ast.TypeTuple, Elems: elems}
	case ast.TypeFn:
		params := make([]*ast.Type, len(t.Elems))
		for i, p := range t.Elems {
			params[i] = lowerTypeRef(l, p)
		}
		return &ast.Type{Kind: ast.TypeFn, Elems: params, Return: lowerTypeRef(l, t.Return)}
	default:
		return t
	}
}

// hoistRecord implements the anonymous-record hoist: a fresh struct named
// __anon_record_<file>_<line>_<col>, marked Generated, appended to
// l.Tree.Structs at module scope, with the type position rewritten to a
// single-segment TypePath naming it.
func hoistRecord(l *Lowerer, t *ast.Type) *ast.Type {
	span := t.NodeSpan()
	file, row, col := "?", 0, 0
	if span != source.NoSpan {
		s := l.Spans.Get(span)
		file, row, col = s.File, s.Row, s.Column
	}
	name := l.Names.Intern(fmt.Sprintf("__anon_record_%s_%d_%d", file, row, col))

	fields := make([]ast.RecordField, len(t.Fields))
	for i, f := range t.Fields {
		fields[i] = ast.RecordField{Name: f.Name, Type: lowerTypeRef(l, f.Type)}
	}

	l.Tree.Structs = append(l.Tree.Structs, hir.Struct{
		Context:   hir.NewContext(l.freshNode()),
		Name:      name,
		Vis:       ast.VisPrivate,
		Fields:    fields,
		Generated: true,
	})

	return &ast.Type{Kind: ast.TypePath, PathSegments: []intern.ID{name}}
}
