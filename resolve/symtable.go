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

package resolve

import (
	"fmt"

	"github.com/tidwall/btree"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
)

// segKey orders a scope node's children by the (kind, name) pair of
// the segment leading to them, not by the node's own content — this is
// what keeps a dump of the table deterministic across runs without caring
// about insertion order (§3.5 "a tree of scopes to symbols").
type segKey struct {
	kind ast.SegmentKind
	name intern.ID
}

func (a segKey) less(b segKey) bool {
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.name < b.name
}

// symKey orders a scope node's symbols by (name, kind): two symbols of
// different kinds are permitted to share a name (e.g. a trait and an impl
// of it do not collide), so both fields participate in the ordering.
type symKey struct {
	name intern.ID
	kind Kind
}

func (a symKey) less(b symKey) bool {
	if a.name != b.name {
		return a.name < b.name
	}
	return a.kind < b.kind
}

type symNode struct {
	symbols  *btree.BTreeG[symEntry]
	children *btree.BTreeG[childEntry]
}

type symEntry struct {
	key symKey
	ref ast.SymbolRef
}

type childEntry struct {
	key  segKey
	node *symNode
}

func newSymNode() *symNode {
	return &symNode{
		symbols:  btree.NewBTreeG(func(a, b symEntry) bool { return a.key.less(b.key) }),
		children: btree.NewBTreeG(func(a, b childEntry) bool { return a.key.less(b.key) }),
	}
}

func (n *symNode) child(seg ast.ScopeSegment, create bool) *symNode {
	key := segKey{kind: seg.Kind, name: seg.Name}
	if found, ok := n.children.Get(childEntry{key: key}); ok {
		return found.node
	}
	if !create {
		return nil
	}
	child := newSymNode()
	n.children.Set(childEntry{key: key, node: child})
	return child
}

// RootSymbolTable is the root of the scope-keyed symbol tree built by the
// symbol generation pass (§4.7). Every Symbol is additionally kept in a
// flat slice so that an ast.SymbolRef is a plain slice index.
type RootSymbolTable struct {
	root    *symNode
	symbols []Symbol
	names   *intern.Table
}

// NewRootSymbolTable creates an empty table.
func NewRootSymbolTable(names *intern.Table) *RootSymbolTable {
	return &RootSymbolTable{root: newSymNode(), names: names}
}

// lookupNode finds the node for scope, without creating intermediate nodes.
func (t *RootSymbolTable) lookupNode(scope ast.Scope) *symNode {
	n := t.root
	for _, seg := range scope {
		n = n.child(seg, false)
		if n == nil {
			return nil
		}
	}
	return n
}

// Insert adds a symbol named name of the given kind at scope, returning its
// new ref. If a symbol with the same (name, kind) already exists directly
// in that scope, Insert reports the collision via ok=false and returns the
// ref of the *existing* symbol, leaving the table unchanged — the caller
// (the symbol generation pass) turns this into an E-AstRedefinition
// diagnostic.
func (t *RootSymbolTable) Insert(scope ast.Scope, name intern.ID, kind Kind, node ast.NodeId) (ast.SymbolRef, bool) {
	n := t.root
	for _, seg := range scope {
		n = n.child(seg, true)
	}
	key := symKey{name: name, kind: kind}
	if existing, ok := n.symbols.Get(symEntry{key: key}); ok {
		return existing.ref, false
	}
	ref := ast.SymbolRef(len(t.symbols))
	t.symbols = append(t.symbols, Symbol{Kind: kind, Name: name, Scope: scope, Node: node})
	n.symbols.Set(symEntry{key: key, ref: ref})
	return ref, true
}

// Get resolves a ref back to its Symbol.
func (t *RootSymbolTable) Get(ref ast.SymbolRef) (Symbol, bool) {
	if ref < 0 || int(ref) >= len(t.symbols) {
		return Symbol{}, false
	}
	return t.symbols[ref], true
}

// Lookup finds the symbol named name of kind at exactly scope (no
// ancestor search — module path resolution already produced a concrete
// scope per item, and the corrected lookup across parent scopes belongs
// to a later name-resolution pass out of this core's scope).
func (t *RootSymbolTable) Lookup(scope ast.Scope, name intern.ID, kind Kind) (ast.SymbolRef, bool) {
	n := t.lookupNode(scope)
	if n == nil {
		return 0, false
	}
	entry, ok := n.symbols.Get(symEntry{key: symKey{name: name, kind: kind}})
	if !ok {
		return 0, false
	}
	return entry.ref, true
}

// Len reports the total number of symbols across every scope.
func (t *RootSymbolTable) Len() int { return len(t.symbols) }

// Dump renders every symbol in deterministic (scope, name, kind) order, for
// golden tests and diagnostics.
func (t *RootSymbolTable) Dump() []string {
	var lines []string
	var walk func(n *symNode, scope ast.Scope)
	walk = func(n *symNode, scope ast.Scope) {
		n.symbols.Scan(func(e symEntry) bool {
			sym := t.symbols[e.ref]
			lines = append(lines, fmt.Sprintf("%s::%s [%d]", scope.String(t.names), t.names.Text(sym.Name), sym.Kind))
			return true
		})
		n.children.Scan(func(c childEntry) bool {
			walk(c.node, scope.Child(c.key.toSegment()))
			return true
		})
	}
	walk(t.root, ast.Scope{})
	return lines
}

func (k segKey) toSegment() ast.ScopeSegment { return ast.ScopeSegment{Name: k.name, Kind: k.kind} }
