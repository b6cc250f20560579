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

package hir

import (
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
)

// ExprKind enumerates the desugared core lowering emits (§4.5's contract:
// "a HIR that contains no surface sugar and whose every loop/conditional
// is expressed as loop+match+labelled break"). Every surface form in
// ast.ExprKind maps onto one of these, several collapsing onto Loop+Match.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLiteral
	ExprCall
	ExprTuple
	ExprBlock
	ExprLoop
	ExprMatch
	ExprAssign
	ExprReturn
	ExprBreak
	ExprContinue
	ExprBinary
	ExprUnary
	ExprFieldAccess
	ExprTupleIndex
)

// MatchArm pairs a pattern (always trivial, a literal, or a tuple of
// trivial/literal sub-patterns once lowering has run: match's own
// desugaring never introduces a nested non-trivial pattern) with its body.
type MatchArm struct {
	Pattern *ast.Pattern
	Body    *Expr
}

// Expr is the HIR expression tagged union. Types are reused from package
// ast (a Type value can no longer denote an anonymous record after
// lowering hoists one to a module-scope item and rewrites the reference to
// a path, so the same shape suffices post-lowering).
type Expr struct {
	Node ast.NodeId
	Kind ExprKind

	// ExprIdent
	Name intern.ID

	// ExprLiteral
	Literal     intern.LiteralID
	LiteralOp   ast.LiteralOpKind
	LiteralName intern.ID

	// ExprCall
	Callee *Expr
	Args   []*Expr

	// ExprTuple / ExprBlock (Stmts)
	Elems []*Expr
	Stmts []*Stmt

	// ExprLoop: Label is always present post-lowering (synthesized when
	// the surface form was unlabelled, §4.5.2).
	Label intern.ID
	Body  *Expr

	// ExprMatch
	Subject *Expr
	Arms    []MatchArm

	// ExprAssign
	Target *Expr
	Value  *Expr

	// ExprReturn / ExprBreak: Value may be nil; ExprBreak reuses Label.

	// ExprBinary / ExprUnary
	Op    intern.PunctuationID
	Left  *Expr
	Right *Expr

	// ExprFieldAccess / ExprTupleIndex: Base is the expression being
	// projected; Field names the field (FieldAccess), Index the tuple
	// position (TupleIndex, the let-pattern lowering's .0, .1, ...).
	Base  *Expr
	Field intern.ID
	Index int

	// ExprUnary: the single operand, reusing Right rather than adding a
	// third field (ExprBinary leaves Left nil when this is actually unary
	// is never the case — ExprUnary and ExprBinary are distinguished by
	// Kind, so no ambiguity arises from sharing the field).
}
