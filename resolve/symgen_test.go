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

package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/report"
)

func TestGenerateSymbolsUniqueness(t *testing.T) {
	names := intern.NewTable()
	ctx := ast.NewContext()
	table := NewRootSymbolTable(names)
	rep := report.NewReport()

	items := []*ast.Item{
		{Kind: ast.ItemFn, Name: names.Intern("f")},
		{Kind: ast.ItemConst, Name: names.Intern("x")},
	}
	GenerateSymbols(ctx, table, ast.Scope{}, items, rep)

	require.False(t, rep.HasErrors())
	require.Equal(t, 2, table.Len())

	ref, ok := table.Lookup(ast.Scope{}, names.Intern("f"), KindFunction)
	require.True(t, ok)
	sym, ok := table.Get(ref)
	require.True(t, ok)
	require.Equal(t, KindFunction, sym.Kind)
}

func TestGenerateSymbolsRedefinitionReported(t *testing.T) {
	names := intern.NewTable()
	ctx := ast.NewContext()
	table := NewRootSymbolTable(names)
	rep := report.NewReport()

	items := []*ast.Item{
		{Kind: ast.ItemFn, Name: names.Intern("f")},
		{Kind: ast.ItemFn, Name: names.Intern("f")},
	}
	GenerateSymbols(ctx, table, ast.Scope{}, items, rep)

	require.True(t, rep.HasErrors())
	require.Equal(t, 1, table.Len())
}

func TestGenerateSymbolsNestedModule(t *testing.T) {
	names := intern.NewTable()
	ctx := ast.NewContext()
	table := NewRootSymbolTable(names)
	rep := report.NewReport()

	inner := []*ast.Item{
		{Kind: ast.ItemFn, Name: names.Intern("g")},
	}
	items := []*ast.Item{
		{Kind: ast.ItemModule, Name: names.Intern("sub"), Module: &ast.Module{
			Name:  names.Intern("sub"),
			Items: inner,
		}},
	}
	GenerateSymbols(ctx, table, ast.Scope{}, items, rep)

	require.False(t, rep.HasErrors())
	scope := ast.Scope{{Name: names.Intern("sub"), Kind: ast.SegmentModule}}
	_, ok := table.Lookup(scope, names.Intern("g"), KindFunction)
	require.True(t, ok)
}

func TestUseAmbiguityDetection(t *testing.T) {
	names := intern.NewTable()
	rep := report.NewReport()
	table := NewRootUseTable()

	a := names.Intern("a")
	b := names.Intern("b")
	widget := names.Intern("Widget")

	table.Add(ast.Scope{}, UsePath{Path: []intern.ID{a, widget}})
	table.Add(ast.Scope{}, UsePath{Path: []intern.ID{b, widget}})

	table.CheckAmbiguity(names, rep)
	require.True(t, rep.HasErrors())
}

func TestUseAliasSuppressesAmbiguity(t *testing.T) {
	names := intern.NewTable()
	rep := report.NewReport()
	table := NewRootUseTable()

	a := names.Intern("a")
	b := names.Intern("b")
	widget := names.Intern("Widget")
	alias := names.Intern("BWidget")

	table.Add(ast.Scope{}, UsePath{Path: []intern.ID{a, widget}})
	table.Add(ast.Scope{}, UsePath{Path: []intern.ID{b, widget}, Alias: alias, HasAlias: true})

	table.CheckAmbiguity(names, rep)
	require.False(t, rep.HasErrors())
}

func TestUseWildcardsNeverAmbiguous(t *testing.T) {
	names := intern.NewTable()
	rep := report.NewReport()
	table := NewRootUseTable()

	a := names.Intern("a")
	b := names.Intern("b")

	table.Add(ast.Scope{}, UsePath{Path: []intern.ID{a}, Wildcard: true})
	table.Add(ast.Scope{}, UsePath{Path: []intern.ID{b}, Wildcard: true})

	table.CheckAmbiguity(names, rep)
	require.False(t, rep.HasErrors())
}
