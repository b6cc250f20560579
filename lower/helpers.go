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
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
	"github.com/xenonlang/xnc/intern"
)

// unitExpr builds `()`, represented as the zero-element tuple — the same
// representation a surface `()` literal would lower to, so no separate
// "unit" HIR expression kind is needed.
func unitExpr() *hir.Expr {
	return &hir.Expr{Kind: hir.ExprTuple}
}

// identExpr builds a bare-name HIR expression referring to name.
func identExpr(name intern.ID) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprIdent, Name: name}
}

// boolPattern builds the literal-pattern arm lowering's while/if/do-while
// desugaring matches against (§4.5.2, correcting the source's
// literal_pattern bug per §9: the false arm must store Bool(false), not
// a second Bool(true)).
func boolPattern(l *Lowerer, value bool) *ast.Pattern {
	return &ast.Pattern{Kind: ast.PatternBool, Bool: value}
}

// breakExpr builds a labelled `break :label;`.
func breakExpr(label intern.ID) *hir.Expr {
	return &hir.Expr{Kind: hir.ExprBreak, Label: label}
}

// exprStmt wraps e as a statement.
func exprStmt(e *hir.Expr) *hir.Stmt {
	return &hir.Stmt{Kind: hir.StmtExpr, Expr: e}
}

// varDecl builds a `let name = value;` HIR statement.
func varDecl(name intern.ID, value *hir.Expr) *hir.Stmt {
	return &hir.Stmt{Kind: hir.StmtVarDecl, Name: name, Value: value}
}

// blockStmts returns e's statement list if it's already a block,
// otherwise wraps e as the sole statement of a synthesized one — used
// when a desugaring needs to append a statement after a body that may or
// may not already be a block (e.g. `while`'s re-check match).
func blockStmts(e *hir.Expr) []*hir.Stmt {
	if e == nil {
		return nil
	}
	if e.Kind == hir.ExprBlock {
		return e.Stmts
	}
	return []*hir.Stmt{exprStmt(e)}
}
