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
)

// lowerExprOrNil is lowerExpr, nil-safe for optional expression slots
// (an `if` with no else, a `return` with no value, ...).
func lowerExprOrNil(l *Lowerer, e *ast.Expr) *hir.Expr {
	if e == nil {
		return nil
	}
	return lowerExpr(l, e)
}

// lowerExpr lowers a single AST expression to its HIR counterpart,
// recursing into children before assembling the parent — the return-
// based equivalent of §4.5.1's "pop children in reverse order and
// assemble" stack discipline (see lower.go's package doc).
func lowerExpr(l *Lowerer, e *ast.Expr) *hir.Expr {
	switch e.Kind {
	case ast.ExprIdent:
		return &hir.Expr{Kind: hir.ExprIdent, Name: e.Name}

	case ast.ExprLiteral:
		return &hir.Expr{
			Kind:        hir.ExprLiteral,
			Literal:     e.Literal,
			LiteralOp:   e.LiteralOp,
			LiteralName: e.LiteralName,
		}

	case ast.ExprCall:
		args := make([]*hir.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = lowerExpr(l, a)
		}
		return &hir.Expr{Kind: hir.ExprCall, Callee: lowerExprOrNil(l, e.Callee), Args: args}

	case ast.ExprTuple:
		elems := make([]*hir.Expr, len(e.Elems))
		for i, el := range e.Elems {
			elems[i] = lowerExpr(l, el)
		}
		return &hir.Expr{Kind: hir.ExprTuple, Elems: elems}

	case ast.ExprBlock:
		return &hir.Expr{Kind: hir.ExprBlock, Stmts: lowerStmts(l, e.Stmts)}

	case ast.ExprIf:
		return lowerIf(l, e)
	case ast.ExprWhile:
		return lowerWhile(l, e)
	case ast.ExprDoWhile:
		return lowerDoWhile(l, e)
	case ast.ExprFor:
		return lowerFor(l, e)

	case ast.ExprMatch:
		arms := make([]hir.MatchArm, len(e.Arms))
		for i, arm := range e.Arms {
			arms[i] = hir.MatchArm{Pattern: arm.Pattern, Body: lowerExprOrNil(l, arm.Body)}
		}
		return &hir.Expr{Kind: hir.ExprMatch, Subject: lowerExprOrNil(l, e.Subject), Arms: arms}

	case ast.ExprAssign:
		return &hir.Expr{Kind: hir.ExprAssign, Target: lowerExprOrNil(l, e.Target), Value: lowerExprOrNil(l, e.Value)}

	case ast.ExprMultiAssign:
		return lowerMultiAssign(l, e)

	case ast.ExprReturn:
		if e.Value == nil && l.curNamedReturn != nil {
			return &hir.Expr{Kind: hir.ExprReturn, Value: l.curNamedReturn}
		}
		return &hir.Expr{Kind: hir.ExprReturn, Value: lowerExprOrNil(l, e.Value)}

	case ast.ExprBreak:
		return &hir.Expr{Kind: hir.ExprBreak, Label: e.Label, Value: lowerExprOrNil(l, e.Value)}

	case ast.ExprContinue:
		return &hir.Expr{Kind: hir.ExprContinue, Label: e.Label}

	case ast.ExprBinary:
		return &hir.Expr{Kind: hir.ExprBinary, Op: e.Op, Left: lowerExprOrNil(l, e.Left), Right: lowerExprOrNil(l, e.Right)}

	case ast.ExprUnary:
		return &hir.Expr{Kind: hir.ExprUnary, Op: e.Op, Right: lowerExprOrNil(l, e.Right)}

	case ast.ExprFieldAccess:
		return &hir.Expr{Kind: hir.ExprFieldAccess, Base: lowerExprOrNil(l, e.Left), Field: e.Field}

	case ast.ExprLet:
		// A `let` used in expression position (e.g. `if let pat = e {}`'s
		// condition slot) lowers to its match-subject form: the bound
		// names aren't visible outside the block that contains it, which
		// this core does not yet model as a distinct construct, so it is
		// represented as the lowered initializer alone and the pattern
		// bind is left to the enclosing `if`'s own condition handling.
		if e.LetStmt != nil {
			return lowerExprOrNil(l, e.LetStmt.Value)
		}
		return unitExpr()

	default:
		return unitExpr()
	}
}

// lowerMultiAssign lowers `a, b = c;` (an assignment, not a declaration)
// the same way StmtMultiDecl's element-wise shortcut works: one Assign
// per target when the RHS is already a matching-arity tuple, otherwise a
// temp-bound TupleIndex chain.
func lowerMultiAssign(l *Lowerer, e *ast.Expr) *hir.Expr {
	if e.Value != nil && e.Value.Kind == ast.ExprTuple && len(e.Value.Elems) == len(e.Elems) {
		assigns := make([]*hir.Expr, len(e.Elems))
		for i, target := range e.Elems {
			assigns[i] = &hir.Expr{Kind: hir.ExprAssign, Target: lowerExpr(l, target), Value: lowerExpr(l, e.Value.Elems[i])}
		}
		return &hir.Expr{Kind: hir.ExprTuple, Elems: assigns}
	}

	tmp := l.freshTmp(e.NodeSpan())
	stmts := []*hir.Stmt{varDecl(tmp, lowerExprOrNil(l, e.Value))}
	assigns := make([]*hir.Expr, len(e.Elems))
	for i, target := range e.Elems {
		assigns[i] = &hir.Expr{Kind: hir.ExprAssign, Target: lowerExpr(l, target), Value: &hir.Expr{Kind: hir.ExprTupleIndex, Base: identExpr(tmp), Index: i}}
	}
	for _, a := range assigns {
		stmts = append(stmts, exprStmt(a))
	}
	return &hir.Expr{Kind: hir.ExprBlock, Stmts: stmts}
}

// lowerStmts lowers a statement list, flattening each AST statement's
// (possibly multi-statement) lowering into the surrounding block.
func lowerStmts(l *Lowerer, stmts []*ast.Stmt) []*hir.Stmt {
	var out []*hir.Stmt
	for _, s := range stmts {
		out = append(out, lowerStmt(l, s)...)
	}
	return out
}
