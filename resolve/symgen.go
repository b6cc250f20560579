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
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/report"
)

// itemKindToSymbol maps an ast.ItemKind to the Kind the symbol table
// stores it under. ItemModule and ItemUse never produce a symbol-table
// entry here: GenerateSymbols inserts a module's KindModule symbol in its
// own ItemModule case before recursing into the module's items, and a
// `use` contributes to RootUseTable instead, not RootSymbolTable.
func itemKindToSymbol(k ast.ItemKind) (Kind, bool) {
	switch k {
	case ast.ItemFn:
		return KindFunction, true
	case ast.ItemTypeAlias:
		return KindTypeAlias, true
	case ast.ItemDistinctType:
		return KindDistinctType, true
	case ast.ItemOpaqueType:
		return KindOpaqueType, true
	case ast.ItemStruct, ast.ItemTupleStruct, ast.ItemUnitStruct:
		return KindStruct, true
	case ast.ItemUnion:
		return KindUnion, true
	case ast.ItemAdtEnum:
		return KindAdtEnum, true
	case ast.ItemFlagEnum:
		return KindFlagEnum, true
	case ast.ItemBitfield:
		return KindBitfield, true
	case ast.ItemConst:
		return KindConst, true
	case ast.ItemStatic, ast.ItemTlsStatic, ast.ItemExternStatic:
		return KindStatic, true
	case ast.ItemTrait, ast.ItemOpTrait:
		return KindTrait, true
	case ast.ItemImpl, ast.ItemOpSet:
		return KindImpl, true
	case ast.ItemPrecedence:
		return KindPrecedence, true
	case ast.ItemProperty:
		return KindProperty, true
	default:
		return 0, false
	}
}

func structKind(k ast.ItemKind) StructKind {
	switch k {
	case ast.ItemTupleStruct:
		return StructTuple
	case ast.ItemUnitStruct:
		return StructUnit
	default:
		return StructPlain
	}
}

func staticKind(k ast.ItemKind) StaticKind {
	switch k {
	case ast.ItemTlsStatic:
		return StaticTls
	case ast.ItemExternStatic:
		return StaticExtern
	default:
		return StaticPlain
	}
}

// GenerateSymbols walks items at scope (top-level module items, then each
// module item's own Items recursively), inserting exactly one symbol per
// item node, per §4.7. It never recurses into statements or expressions:
// a function body's local `let`s are not symbol-table entries. Redefinition
// (two items of the same kind and name directly in one scope) is reported
// via E-AstRedefinition and does not stop the walk — this pass
// accumulates every diagnostic it can find in one traversal, the
// accumulate-and-continue model used throughout (§7).
func GenerateSymbols(ctx *ast.Context, table *RootSymbolTable, scope ast.Scope, items []*ast.Item, rep *report.Report) {
	for _, item := range items {
		switch item.Kind {
		case ast.ItemModule:
			mod := item.Module
			if mod == nil {
				continue
			}
			_, ok := table.Insert(scope, mod.Name, KindModule, item.NodeID())
			if !ok {
				rep.Error(report.EAstRedefinition, item.NodeSpan(),
					"module redefines an existing symbol in this scope")
				continue
			}
			childScope := scope.Child(ast.ScopeSegment{Name: mod.Name, Kind: ast.SegmentModule})
			ctx.Module(item.NodeID()).SymPath = childScope
			GenerateSymbols(ctx, table, childScope, mod.Items, rep)
		case ast.ItemUse:
			// Handled by the use-table aggregation pass, not here.
		default:
			kind, ok := itemKindToSymbol(item.Kind)
			if !ok {
				continue
			}
			ref, inserted := table.Insert(scope, item.Name, kind, item.NodeID())
			ic := ctx.Item(item.NodeID())
			ic.Sym = ref
			if !inserted {
				rep.Error(report.EAstRedefinition, item.NodeSpan(),
					"redefinition of symbol in this scope")
				continue
			}
			if sym, ok := table.Get(ref); ok {
				sym.StructKind = structKind(item.Kind)
				sym.StaticKind = staticKind(item.Kind)
				table.symbols[ref] = sym
			}
			if item.Kind == ast.ItemImpl {
				GenerateSymbols(ctx, table, scope, item.Assoc, rep)
			} else if item.Kind == ast.ItemTrait || item.Kind == ast.ItemOpTrait || item.Kind == ast.ItemOpSet {
				GenerateSymbols(ctx, table, scope, item.Assoc, rep)
			}
		}
	}
}
