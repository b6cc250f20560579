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

package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
	"github.com/xenonlang/xnc/intern"
)

func TestNodeLoggerFunctionWithBody(t *testing.T) {
	names := intern.NewTable()
	lits := intern.NewLiteralTable()
	puncts := intern.NewPunctuationTable()

	fnName := names.Intern("add")
	aName := names.Intern("a")

	tree := hir.NewTree()
	tree.Functions = append(tree.Functions, hir.Function{
		Context: hir.NewContext(ast.NoNode),
		Name:    fnName,
		Body: &hir.Expr{
			Kind: hir.ExprBlock,
			Stmts: []*hir.Stmt{
				{Kind: hir.StmtExpr, Expr: &hir.Expr{Kind: hir.ExprIdent, Name: aName}},
			},
		},
	})

	var buf bytes.Buffer
	NewNodeLogger(&buf, names, lits, puncts).LogTree(tree)

	out := buf.String()
	if !strings.Contains(out, "fn add") {
		t.Errorf("expected output to mention the function name, got:\n%s", out)
	}
	if !strings.Contains(out, "block") {
		t.Errorf("expected output to contain the function body block, got:\n%s", out)
	}
	if !strings.Contains(out, "ident a") {
		t.Errorf("expected output to contain the body's ident expr, got:\n%s", out)
	}
}

func TestNodeLoggerExternFunctionNoBody(t *testing.T) {
	names := intern.NewTable()
	lits := intern.NewLiteralTable()
	puncts := intern.NewPunctuationTable()

	fnName := names.Intern("puts")
	tree := hir.NewTree()
	tree.ExternFunctionsNoBody = append(tree.ExternFunctionsNoBody, hir.Function{
		Context: hir.NewContext(ast.NoNode),
		Name:    fnName,
		Abi:     ast.AbiC,
	})

	var buf bytes.Buffer
	NewNodeLogger(&buf, names, lits, puncts).LogTree(tree)

	out := buf.String()
	if !strings.Contains(out, "extern fn puts") {
		t.Errorf("expected an extern fn entry, got:\n%s", out)
	}
	if !strings.Contains(out, "(no body)") {
		t.Errorf("expected the no-body marker, got:\n%s", out)
	}
}

func TestNodeLoggerGeneratedStruct(t *testing.T) {
	names := intern.NewTable()
	lits := intern.NewLiteralTable()
	puncts := intern.NewPunctuationTable()

	structName := names.Intern("__anon_record_a_xn_3_10")
	fieldName := names.Intern("x")

	tree := hir.NewTree()
	tree.Structs = append(tree.Structs, hir.Struct{
		Context:   hir.NewContext(ast.NoNode),
		Name:      structName,
		Fields:    []ast.RecordField{{Name: fieldName, Type: nil}},
		Generated: true,
	})

	var buf bytes.Buffer
	NewNodeLogger(&buf, names, lits, puncts).LogTree(tree)

	out := buf.String()
	if !strings.Contains(out, "compiler_generated") {
		t.Errorf("expected the generated marker on a hoisted anonymous record, got:\n%s", out)
	}
	if !strings.Contains(out, "field x") {
		t.Errorf("expected the struct's field to be logged, got:\n%s", out)
	}
}

func TestNodeLoggerTraitWithProperty(t *testing.T) {
	names := intern.NewTable()
	lits := intern.NewLiteralTable()
	puncts := intern.NewPunctuationTable()

	traitName := names.Intern("Shape")
	propName := names.Intern("area")
	getName := names.Intern("get_area")

	tree := hir.NewTree()
	owner := tree.AddTrait(hir.Trait{Context: hir.NewContext(ast.NoNode), Name: traitName})
	tree.TraitProperties = append(tree.TraitProperties, hir.TraitProperty{
		Owner: owner,
		Name:  propName,
		Get:   &hir.Fn{Name: getName},
	})

	var buf bytes.Buffer
	NewNodeLogger(&buf, names, lits, puncts).LogTree(tree)

	out := buf.String()
	if !strings.Contains(out, "trait Shape") {
		t.Errorf("expected the trait header, got:\n%s", out)
	}
	if !strings.Contains(out, "property area") {
		t.Errorf("expected the trait's property to be logged, got:\n%s", out)
	}
}
