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
	"github.com/tidwall/btree"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/source"
)

// UsePath is one resolved `use` leaf, grounded on common/uses.rs's UsePath
// shape (§13): LibPath is the (possibly empty) external-library prefix a
// `use` can name before the in-module path begins, Path is the remainder.
type UsePath struct {
	LibPath  []intern.ID
	Path     []intern.ID
	Wildcard bool
	Alias    intern.ID
	HasAlias bool
	Node     ast.NodeId
	Span     source.Id
}

// EffectiveName is the name a non-wildcard use introduces into its scope:
// the alias if present, otherwise the use path's final segment.
func (u UsePath) EffectiveName() intern.ID {
	if u.HasAlias {
		return u.Alias
	}
	if len(u.Path) == 0 {
		return intern.ID(-1)
	}
	return u.Path[len(u.Path)-1]
}

type useNode struct {
	direct   []UsePath
	wildcard []UsePath
	children *btree.BTreeG[useChildEntry]
}

type useChildEntry struct {
	key  segKey
	node *useNode
}

func newUseNode() *useNode {
	return &useNode{children: btree.NewBTreeG(func(a, b useChildEntry) bool { return a.key.less(b.key) })}
}

func (n *useNode) child(seg ast.ScopeSegment, create bool) *useNode {
	key := segKey{kind: seg.Kind, name: seg.Name}
	if found, ok := n.children.Get(useChildEntry{key: key}); ok {
		return found.node
	}
	if !create {
		return nil
	}
	child := newUseNode()
	n.children.Set(useChildEntry{key: key, node: child})
	return child
}

// RootUseTable is the scope-keyed tree of `use` declarations built by the
// use-table aggregation pass (§4.9, §13). OpUses and PrecedenceUses are
// flat, root-level lists: operator-trait uses and precedence declarations
// are global to a compilation unit rather than scoped.
type RootUseTable struct {
	root           *useNode
	OpUses         []UsePath
	PrecedenceUses []UsePath
}

// NewRootUseTable creates an empty table.
func NewRootUseTable() *RootUseTable {
	return &RootUseTable{root: newUseNode()}
}

// Add records one use leaf at scope. self-subpaths (`use a.self;`) are
// recorded as SelfWildcard, which the caller turns into Wildcard: true on
// the UsePath before calling Add, per §13's "self-subpath implies
// wildcard" rule.
func (t *RootUseTable) Add(scope ast.Scope, use UsePath) {
	n := t.root
	for _, seg := range scope {
		n = n.child(seg, true)
	}
	if use.Wildcard {
		n.wildcard = append(n.wildcard, use)
	} else {
		n.direct = append(n.direct, use)
	}
}

// Direct returns the non-wildcard uses declared directly at scope.
func (t *RootUseTable) Direct(scope ast.Scope) []UsePath {
	n := t.lookupNode(scope)
	if n == nil {
		return nil
	}
	return n.direct
}

// Wildcards returns the wildcard uses declared directly at scope.
func (t *RootUseTable) Wildcards(scope ast.Scope) []UsePath {
	n := t.lookupNode(scope)
	if n == nil {
		return nil
	}
	return n.wildcard
}

func (t *RootUseTable) lookupNode(scope ast.Scope) *useNode {
	n := t.root
	for _, seg := range scope {
		n = n.child(seg, false)
		if n == nil {
			return nil
		}
	}
	return n
}

// Walk visits every scope in the table depth-first, root first, the order
// the ambiguity checker (§4.9) relies on to report each collision once.
func (t *RootUseTable) Walk(visit func(scope ast.Scope, n *useNode)) {
	var walk func(n *useNode, scope ast.Scope)
	walk = func(n *useNode, scope ast.Scope) {
		visit(scope, n)
		n.children.Scan(func(c useChildEntry) bool {
			walk(c.node, scope.Child(c.key.toSegment()))
			return true
		})
	}
	walk(t.root, ast.Scope{})
}
