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

// Package hir is the flattened, normalized item-kind-collection tree
// lowering produces (§3.4): every item owns a Context slot (its originating
// AST NodeId plus write-once symbol/type handles) and is reachable only
// through its collection, never through an owning pointer from another
// item — a trait's methods are addressed by index into Tree.TraitFunctions,
// not embedded in the Trait value.
package hir

import "github.com/xenonlang/xnc/ast"

// Context is the per-item slot every HIR node embeds: Node lets
// diagnostics point back at the AST node that produced this item; Sym is
// written exactly once by the symbol generation pass (package resolve);
// Ty is written exactly once by the item-level type pass (package
// typegen), and only after Sym (§3.4 invariants, §5 "write-once
// discipline").
type Context struct {
	Node ast.NodeId
	Sym  ast.SymbolRef
	Ty   ast.TypeRef
}

// NewContext returns a Context for node with both handles unset.
func NewContext(node ast.NodeId) Context {
	return Context{Node: node, Sym: ast.NoSymbol, Ty: ast.NoType}
}
