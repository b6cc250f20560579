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

// StmtKind discriminates the two statement shapes that survive lowering:
// every surface `let` becomes one or more VarDecl/UninitVarDecl statements
// (§4.5.2's let-pattern lowering and named-return rewrite both bottom out
// here), everything else is a bare expression statement.
type StmtKind uint8

const (
	StmtVarDecl StmtKind = iota
	StmtUninitVarDecl
	StmtExpr
)

// Stmt is a block-position HIR statement.
type Stmt struct {
	Node ast.NodeId
	Kind StmtKind

	// StmtVarDecl / StmtUninitVarDecl
	Name intern.ID
	Mut  bool
	Type *ast.Type // may be nil when the declared type is to be inferred
	Value *Expr    // nil for StmtUninitVarDecl

	// StmtExpr
	Expr *Expr
}
