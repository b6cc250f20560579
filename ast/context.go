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

// SymbolRef is an opaque handle into resolve.RootSymbolTable. ast does not
// depend on package resolve (which itself walks this tree), so a symbol is
// referenced here only by this small integer, never by the Symbol struct
// that owns its data.
type SymbolRef int32

// NoSymbol marks a context slot whose symbol has not been assigned yet.
const NoSymbol SymbolRef = -1

// TypeRef is the equivalent opaque handle into typegen.Registry.
type TypeRef int32

// NoType marks a context slot whose type has not been assigned yet.
const NoType TypeRef = -1

// FsPath is a module item's explicit `path` attribute, split into
// components; "current directory" components are implicit and never
// stored, ".." is stored as the literal component "..".
type FsPath []string

// ModuleContextData is the context slot the AST context-setup pass
// (§4.3) writes for every Module item, before the module resolver fills
// it in.
type ModuleContextData struct {
	Path    *FsPath
	SymPath Scope
}

// ItemContext is the per-item context slot shared by every non-module item
// kind: Sym is written exactly once, by the symbol generation pass; Ty is
// written exactly once, by the item-level type pass, and only after Sym.
type ItemContext struct {
	Sym SymbolRef
	Ty  TypeRef
}

// NewItemContext returns a context with both slots unset.
func NewItemContext() ItemContext {
	return ItemContext{Sym: NoSymbol, Ty: NoType}
}

// Context is the per-node side-table the core attaches to the parser's
// tree: it never mutates AST structure, only this table, keyed by NodeId.
type Context struct {
	modules map[NodeId]*ModuleContextData
	items   map[NodeId]*ItemContext
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{
		modules: make(map[NodeId]*ModuleContextData),
		items:   make(map[NodeId]*ItemContext),
	}
}

// Module returns the ModuleContextData for id, creating an empty one
// (Path: nil, SymPath: the empty Scope) the first time it's requested —
// this is exactly what the context-setup prelude pass (§4.3) does for
// every module node before any real pass runs.
func (c *Context) Module(id NodeId) *ModuleContextData {
	data, ok := c.modules[id]
	if !ok {
		data = &ModuleContextData{SymPath: Scope{}}
		c.modules[id] = data
	}
	return data
}

// Item returns the ItemContext for id, creating one with unset slots the
// first time it's requested.
func (c *Context) Item(id NodeId) *ItemContext {
	item, ok := c.items[id]
	if !ok {
		ic := NewItemContext()
		item = &ic
		c.items[id] = item
	}
	return item
}

// HasItem reports whether id already has a context slot, without creating
// one as a side effect (used by invariant checks that must not themselves
// establish the very state they're checking).
func (c *Context) HasItem(id NodeId) bool {
	_, ok := c.items[id]
	return ok
}
