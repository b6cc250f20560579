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

package ast

import "github.com/xenonlang/xnc/intern"

// ExprKind discriminates the shape of an Expr node. Every variant here is
// either HIR-visible as-is or has a documented desugaring in package
// lower; see SPEC_FULL.md §4.5.2 for the desugared ones.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLiteral
	ExprCall
	ExprTuple
	ExprBlock
	ExprIf
	ExprWhile
	ExprDoWhile
	ExprFor
	ExprMatch
	ExprAssign
	ExprMultiAssign
	ExprReturn
	ExprBreak
	ExprContinue
	ExprBinary
	ExprUnary
	ExprFieldAccess
	ExprLet // a `let` used as an expression statement wrapper
)

// LiteralOpKind distinguishes the two shapes a literal op suffix can take
// (§4.5.2 "Literals"): a named conversion function, or a primitive type
// suffix like `1u32`.
type LiteralOpKind uint8

const (
	LiteralOpNone LiteralOpKind = iota
	LiteralOpName
	LiteralOpPrimitive
)

// MatchArm is one arm of a match expression: a pattern plus its body.
type MatchArm struct {
	Pattern *Pattern
	Body    *Expr
}

// Expr is a tagged union over every expression-position AST shape the
// lowering engine visits. Exactly the fields named after Kind are
// meaningful for a given node, the same tagged-struct convention used by
// token.Token.
type Expr struct {
	node
	Kind ExprKind

	// ExprIdent
	Name intern.ID

	// ExprLiteral
	Literal     intern.LiteralID
	LiteralOp   LiteralOpKind
	LiteralName intern.ID

	// ExprCall
	Callee *Expr
	Args   []*Expr

	// ExprTuple, ExprMultiAssign (targets), ExprBlock (stmts)
	Elems []*Expr
	Stmts []*Stmt

	// ExprIf / ExprWhile / ExprDoWhile / ExprFor
	Label    intern.ID
	HasLabel bool
	Cond     *Expr
	Body     *Expr
	Else     *Expr // ExprIf's else branch, or ExprWhile's else-on-no-iterations

	// ExprFor
	ForPattern *Pattern
	ForSource  *Expr

	// ExprMatch
	Subject *Expr
	Arms    []MatchArm

	// ExprAssign
	Target *Expr
	Value  *Expr

	// ExprMultiAssign: Elems holds the LHS targets, Value the RHS.

	// ExprReturn / ExprBreak: Value may be nil
	// (ExprBreak reuses Label/HasLabel above)

	// ExprBinary / ExprUnary
	Op    intern.PunctuationID
	Left  *Expr
	Right *Expr

	// ExprFieldAccess
	Field intern.ID

	// ExprLet
	LetStmt *Stmt
}
