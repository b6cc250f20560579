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

// lowerFunction lowers a top-level ast.Fn into a hir.Function, the full
// treatment: named-return rewrite (§4.5.2) and ABI resolution (§4.5.3).
// Its generic pack passes through checkGenericPack, which performs no check.
func lowerFunction(l *Lowerer, fn *ast.Fn) hir.Function {
	checkGenericPack(l, fn.Generics.Pack)
	body, ret := lowerFnBody(l, fn)
	return hir.Function{
		Context:  l.hirContext(fn.NodeID()),
		Name:     fn.Name,
		Vis:      fn.Vis,
		Generics: fn.Generics,
		Params:   fn.Params,
		HasSelf:  fn.HasSelf,
		Return:   ast.ReturnSpec{Type: ret},
		Body:     body,
		Abi:      lowerAbi(l, fn),
	}
}

// lowerAssocFn lowers an associated (trait/impl/optrait) ast.Fn into the
// shared hir.Fn leaf shape (§9 "deep inheritance": one leaf, distinguished
// by which parallel list and Owner index it's filed under, not by type).
func lowerAssocFn(l *Lowerer, fn *ast.Fn) hir.Fn {
	checkGenericPack(l, fn.Generics.Pack)
	body, ret := lowerFnBody(l, fn)
	return hir.Fn{
		Name:     fn.Name,
		Vis:      fn.Vis,
		Generics: fn.Generics,
		Params:   fn.Params,
		HasSelf:  fn.HasSelf,
		Return:   ast.ReturnSpec{Type: ret},
		Body:     body,
		Abi:      lowerAbi(l, fn),
	}
}

// lowerFnBody lowers fn's body (nil for an extern declaration), applying
// the named-return rewrite (§4.5.2) when fn.Return is a named-return tuple:
// the body gains a leading UninitVarDecl per named slot, every bare
// `return;` inside substitutes the named tuple, and a body lacking its own
// trailing expression gets the tuple appended. Returns the lowered body
// together with the ordinary (now always unnamed) return type HIR callers
// see.
func lowerFnBody(l *Lowerer, fn *ast.Fn) (*hir.Expr, *ast.Type) {
	if !fn.Return.IsNamed() {
		return lowerExprOrNil(l, fn.Body), fn.Return.Type
	}

	slots := fn.Return.Named
	elemTypes := make([]*ast.Type, len(slots))
	tupleElems := make([]*hir.Expr, len(slots))
	for i, slot := range slots {
		elemTypes[i] = slot.Type
		tupleElems[i] = identExpr(slot.Name)
	}
	retType := &ast.Type{Kind: ast.TypeTuple, Elems: elemTypes}
	namedTuple := &hir.Expr{Kind: hir.ExprTuple, Elems: tupleElems}

	if fn.Body == nil {
		return nil, retType
	}

	prevNamedReturn := l.curNamedReturn
	l.curNamedReturn = namedTuple
	defer func() { l.curNamedReturn = prevNamedReturn }()

	stmts := make([]*hir.Stmt, 0, len(slots)+len(fn.Body.Stmts)+1)
	for _, slot := range slots {
		stmts = append(stmts, &hir.Stmt{Kind: hir.StmtUninitVarDecl, Name: slot.Name, Mut: true, Type: slot.Type})
	}
	stmts = append(stmts, lowerStmts(l, fn.Body.Stmts)...)

	if !bodyEndsInExpr(fn.Body) {
		stmts = append(stmts, exprStmt(namedTuple))
	}

	return &hir.Expr{Kind: hir.ExprBlock, Stmts: stmts}, retType
}

// bodyEndsInExpr reports whether body's last statement is an expression
// statement with a non-nil expression; lowerFnBody appends the named-return
// tuple only when it reports false. Every expression statement counts,
// including `return;` and any expression written with a trailing semicolon
// (ast.Stmt records no semicolon), so a body such as `{ return; }` does not
// get the tuple appended.
func bodyEndsInExpr(body *ast.Expr) bool {
	if len(body.Stmts) == 0 {
		return false
	}
	last := body.Stmts[len(body.Stmts)-1]
	return last.Kind == ast.StmtExpr && last.Expr != nil
}
