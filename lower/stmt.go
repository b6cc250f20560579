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
	"github.com/xenonlang/xnc/report"
	"github.com/xenonlang/xnc/source"
)

// lowerStmt lowers one AST statement, returning the (possibly several) HIR
// statements it expands into — a bare `let` with a non-trivial pattern
// expands to a temp VarDecl, a match, and one VarDecl per bound name
// (§4.5.2, testable property 8).
func lowerStmt(l *Lowerer, s *ast.Stmt) []*hir.Stmt {
	switch s.Kind {
	case ast.StmtLet:
		return lowerLet(l, s)
	case ast.StmtExpr:
		return []*hir.Stmt{exprStmt(lowerExprOrNil(l, s.Expr))}
	case ast.StmtMultiDecl:
		return lowerMultiDecl(l, s)
	default:
		return nil
	}
}

// lowerLet case-splits `let pat: T = expr;` by pattern shape (§4.5.2 "let
// with patterns"):
//
//   - trivial name + value            -> one VarDecl
//   - trivial name, no value          -> one UninitVarDecl (needs a type)
//   - tuple pattern, no value         -> one UninitVarDecl per element
//   - non-trivial pattern + value     -> temp bind + match bind + VarDecls
func lowerLet(l *Lowerer, s *ast.Stmt) []*hir.Stmt {
	pat := s.Pattern

	if pat.IsTrivial() {
		if s.Value != nil {
			return []*hir.Stmt{{
				Kind:  hir.StmtVarDecl,
				Name:  pat.Name,
				Mut:   pat.Mut,
				Type:  s.Type,
				Value: lowerExpr(l, s.Value),
			}}
		}
		if s.Type == nil {
			l.Report.Error(report.EAstInvalidUninitVarDecl, s.NodeSpan(),
				"uninitialized declaration of %q needs an explicit type", l.Names.Text(pat.Name))
		}
		return []*hir.Stmt{{
			Kind: hir.StmtUninitVarDecl,
			Name: pat.Name,
			Mut:  pat.Mut,
			Type: s.Type,
		}}
	}

	if pat.Kind == ast.PatternTuple && s.Value == nil {
		var elemTypes []*ast.Type
		if s.Type != nil && s.Type.Kind == ast.TypeTuple {
			elemTypes = s.Type.Elems
		}
		out := make([]*hir.Stmt, len(pat.Elems))
		for i, elem := range pat.Elems {
			var t *ast.Type
			if i < len(elemTypes) {
				t = elemTypes[i]
			}
			if t == nil {
				l.Report.Error(report.EAstInvalidUninitVarDecl, s.NodeSpan(),
					"uninitialized declaration of %q needs an explicit type", l.Names.Text(elem.Name))
			}
			out[i] = &hir.Stmt{Kind: hir.StmtUninitVarDecl, Name: elem.Name, Mut: elem.Mut, Type: t}
		}
		return out
	}

	return lowerPatternBind(l, pat, s.Value, s.NodeSpan())
}

// lowerPatternBind implements §4.5.2's non-trivial-pattern-with-value case
// and testable property 8: a temp VarDecl holding the lowered initializer, a
// match that binds pat against the temp producing a tuple of the pattern's
// names (in pattern order), and one VarDecl per name reading that tuple via
// TupleIndex.
func lowerPatternBind(l *Lowerer, pat *ast.Pattern, value *ast.Expr, span source.Id) []*hir.Stmt {
	tmp := l.freshTmp(span)
	stmts := []*hir.Stmt{varDecl(tmp, lowerExprOrNil(l, value))}

	names := collectPatternNames(pat)
	elems := make([]*hir.Expr, len(names))
	for i, n := range names {
		elems[i] = identExpr(n)
	}
	bound := &hir.Expr{
		Kind:    hir.ExprMatch,
		Subject: identExpr(tmp),
		Arms:    []hir.MatchArm{{Pattern: pat, Body: &hir.Expr{Kind: hir.ExprTuple, Elems: elems}}},
	}

	boundTmp := l.freshTmp(span)
	stmts = append(stmts, varDecl(boundTmp, bound))

	for i, n := range names {
		stmts = append(stmts, &hir.Stmt{
			Kind:  hir.StmtVarDecl,
			Name:  n,
			Value: &hir.Expr{Kind: hir.ExprTupleIndex, Base: identExpr(boundTmp), Index: i},
		})
	}
	return stmts
}

// collectPatternNames walks pat depth-first, collecting every bound name in
// declaration order (wildcards contribute nothing).
func collectPatternNames(pat *ast.Pattern) []intern.ID {
	switch pat.Kind {
	case ast.PatternName:
		return []intern.ID{pat.Name}
	case ast.PatternTuple:
		var names []intern.ID
		for _, elem := range pat.Elems {
			names = append(names, collectPatternNames(elem)...)
		}
		return names
	default:
		return nil
	}
}

// lowerMultiDecl lowers `a, b := c;` (§4.5.2 "Multiple-name declaration"):
// an element-wise shortcut when the RHS is itself a tuple expression of
// matching arity, otherwise a temp bind plus one VarDecl per name reading
// TupleIndex(.0), TupleIndex(.1), ....
func lowerMultiDecl(l *Lowerer, s *ast.Stmt) []*hir.Stmt {
	if s.Multi != nil && s.Multi.Kind == ast.ExprTuple && len(s.Multi.Elems) == len(s.Names) {
		out := make([]*hir.Stmt, len(s.Names))
		for i, name := range s.Names {
			out[i] = varDecl(name, lowerExpr(l, s.Multi.Elems[i]))
		}
		return out
	}

	tmp := l.freshTmp(s.NodeSpan())
	stmts := []*hir.Stmt{varDecl(tmp, lowerExprOrNil(l, s.Multi))}
	for i, name := range s.Names {
		stmts = append(stmts, &hir.Stmt{
			Kind:  hir.StmtVarDecl,
			Name:  name,
			Value: &hir.Expr{Kind: hir.ExprTupleIndex, Base: identExpr(tmp), Index: i},
		})
	}
	return stmts
}
