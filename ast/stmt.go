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

// StmtKind discriminates the shape of a Stmt node.
type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtExpr
	StmtMultiDecl
)

// Stmt is a tagged union over the statement-position shapes lowering
// visits. StmtLet carries the full generality of surface `let`: a pattern
// (possibly a tuple, possibly non-trivial), an optional type, and an
// optional initializer — package lower's let-pattern lowering (§4.5.2)
// case-splits on Pattern.Kind and on whether Value is nil.
type Stmt struct {
	node
	Kind StmtKind

	// StmtLet
	Pattern *Pattern
	Type    *Type
	Value   *Expr

	// StmtExpr
	Expr *Expr

	// StmtMultiDecl: `a, b := c;`
	Names []intern.ID
	Multi *Expr
}
