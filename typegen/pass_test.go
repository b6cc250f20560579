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

package typegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
	"github.com/xenonlang/xnc/typegen"
)

func TestGenerateTypesPostCondition(t *testing.T) {
	tree := hir.NewTree()
	tree.Structs = append(tree.Structs, hir.Struct{
		Context: hir.Context{Sym: 3, Ty: ast.NoType},
		Fields:  []ast.RecordField{{Type: &ast.Type{Kind: ast.TypePath}}},
	})
	tree.Traits = append(tree.Traits, hir.Trait{Context: hir.Context{Sym: 7}})

	reg := typegen.NewRegistry()
	typegen.GenerateTypes(tree, reg)

	require.NotEqual(t, ast.NoType, tree.Structs[0].Ty)
	require.NotEqual(t, ast.NoType, tree.Traits[0].Ty)

	ty, ok := reg.Get(tree.Structs[0].Ty)
	require.True(t, ok)
	require.Equal(t, typegen.TypePathRef, ty.Kind)
	require.Equal(t, ast.SymbolRef(3), ty.Sym)
}

func TestGenerateTypesConstAnnotation(t *testing.T) {
	tree := hir.NewTree()
	annotated := &ast.Type{Kind: ast.TypePath}
	tree.Consts = append(tree.Consts, hir.Const{Type: annotated})

	reg := typegen.NewRegistry()
	typegen.GenerateTypes(tree, reg)

	require.NotEqual(t, ast.NoType, tree.Consts[0].Ty)
	ty, ok := reg.Get(tree.Consts[0].Ty)
	require.True(t, ok)
	require.Equal(t, typegen.TypePathRef, ty.Kind)
}

func TestGenerateTypesNeverTouchesFunctionBody(t *testing.T) {
	tree := hir.NewTree()
	body := &hir.Expr{Kind: hir.ExprBlock}
	tree.Functions = append(tree.Functions, hir.Function{
		Context: hir.Context{Ty: ast.NoType},
		Body:    body,
	})

	reg := typegen.NewRegistry()
	typegen.GenerateTypes(tree, reg)

	require.Same(t, body, tree.Functions[0].Body)
	require.Equal(t, hir.ExprBlock, tree.Functions[0].Body.Kind)
	require.Equal(t, ast.NoType, tree.Functions[0].Ty)
}
