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

package compiler

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/resolve"
)

func TestCompileUnitLowersAndTypesAFunction(t *testing.T) {
	pc := NewPassContext()

	fnName := pc.Names.Intern("add")
	aName := pc.Names.Intern("a")
	i32 := pc.Names.Intern("i32")
	i32Type := &ast.Type{Kind: ast.TypePath, PathSegments: []intern.ID{i32}}

	items := []*ast.Item{
		{
			Kind: ast.ItemFn,
			Name: fnName,
			Vis:  ast.VisPublic,
			Fn: &ast.Fn{
				Name:   fnName,
				Vis:    ast.VisPublic,
				Params: []ast.Param{{Name: aName, Type: i32Type}},
				Return: ast.ReturnSpec{Type: i32Type},
				Body:   &ast.Expr{Kind: ast.ExprBlock},
			},
		},
	}

	result := CompileUnit(pc, resolve.MapFS{}, "", Unit{File: "add.xn", Src: "pub fn add(a: i32) -> i32 { }", Items: items})

	require.False(t, pc.Report.HasErrors(), "unexpected diagnostics: %v", pc.Report.Render(pc.Spans))
	require.Len(t, result.Tree.Functions, 1)
	require.Equal(t, fnName, result.Tree.Functions[0].Name)
	require.Positive(t, result.Tokens.Len())
}

func TestCompileUnitAggregatesUseDeclarations(t *testing.T) {
	pc := NewPassContext()

	aName := pc.Names.Intern("a")
	bName := pc.Names.Intern("b")

	items := []*ast.Item{
		{
			Kind: ast.ItemUse,
			Uses: []ast.UseTree{{Path: []ast.UsePathSegment{{Name: aName}, {Name: bName}}}},
		},
	}

	CompileUnit(pc, resolve.MapFS{}, "", Unit{File: "uses.xn", Src: "use a.b;", Items: items})

	direct := pc.Uses.Direct(ast.Scope{})
	require.Len(t, direct, 1)

	want := resolve.UsePath{Path: []intern.ID{aName, bName}}
	if diff := cmp.Diff(want, direct[0], cmpopts.IgnoreFields(resolve.UsePath{}, "Node", "Span")); diff != "" {
		t.Errorf("aggregated use path mismatch (-want +got):\n%s", diff)
	}
}
