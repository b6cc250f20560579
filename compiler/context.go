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

// Package compiler drives the pipeline (§2, §6.5): it owns no passes of
// its own, only the order they run in and the PassContext they all share.
// A pass "exposes a constant name and implements the visitor trait"; this
// package's job is to call lex, resolve, lower, typegen and resolve's
// use-table in that order over one compilation unit and stop, never to
// reimplement what those packages already do.
package compiler

import (
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/report"
	"github.com/xenonlang/xnc/resolve"
	"github.com/xenonlang/xnc/source"
	"github.com/xenonlang/xnc/typegen"
)

// PassContext is the shared state every pass reads or writes, per §6.5's
// literal `PassContext { names, literals, syms, type_reg }`. The four
// named fields are exactly those; Puncts, Spans, Ctx, Ids, Uses and Report
// are carried alongside them because nothing downstream of the lexer can
// run without them either — the spec's four-field list names the tables a
// *pass* consults, not the full set of tables a *driver* must thread
// through lexing and AST bookkeeping to get there.
type PassContext struct {
	Names    *intern.Table
	Literals *intern.LiteralTable
	Syms     *resolve.RootSymbolTable
	TypeReg  *typegen.Registry

	Puncts *intern.PunctuationTable
	Spans  *source.Registry
	Ctx    *ast.Context
	Ids    *ast.Ids
	Uses   *resolve.RootUseTable
	Report *report.Report
}

// NewPassContext builds a fresh PassContext for one compilation unit: every
// table starts empty, ready for the pipeline's passes to populate in order.
func NewPassContext() *PassContext {
	names := intern.NewTable()
	return &PassContext{
		Names:    names,
		Literals: intern.NewLiteralTable(),
		Syms:     resolve.NewRootSymbolTable(names),
		TypeReg:  typegen.NewRegistry(),

		Puncts: intern.NewPunctuationTable(),
		Spans:  source.NewRegistry(),
		Ctx:    ast.NewContext(),
		Ids:    &ast.Ids{},
		Uses:   resolve.NewRootUseTable(),
		Report: report.NewReport(),
	}
}
