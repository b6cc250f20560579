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

// Package ast models the parser's output tree: every surface construct the
// lowering engine in package lower desugars away (named returns,
// pattern-binding let, while/do-while/for, anonymous records, property
// sugar) still exists here in full, because this is what a parser hands the
// rest of the front end. The core never mutates this tree; it attaches
// per-node bookkeeping through Context, a side-table keyed by NodeId.
package ast

import "github.com/xenonlang/xnc/source"

// NodeId uniquely identifies one AST node for the lifetime of a
// compilation unit, the same way intern.ID identifies an interned string.
type NodeId int32

// NoNode is the sentinel for "no node", used by optional parent/sibling
// references.
const NoNode NodeId = -1

// Ids hands out sequential NodeIds as the parser (or, in this core's
// tests, a hand-built tree) constructs nodes.
type Ids struct{ next int32 }

// Next returns a fresh NodeId.
func (g *Ids) Next() NodeId {
	id := NodeId(g.next)
	g.next++
	return id
}

// node is embedded by every concrete node type to give it an identity and
// a source location without repeating both fields everywhere.
type node struct {
	ID   NodeId
	Span source.Id
}

// NodeID and NodeSpan satisfy the obvious read-only accessors a visitor
// needs regardless of concrete node kind.
func (n node) NodeID() NodeId     { return n.ID }
func (n node) NodeSpan() source.Id { return n.Span }
