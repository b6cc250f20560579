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

package lower

import (
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
)

// LowerItems lowers a compilation unit's top-level items into l.Tree,
// recursing into inline submodules. Every ast.ItemKind (§3.4) maps to
// exactly one hir.Tree collection; ItemUse contributes nothing here (the
// use-table aggregation pass owns it, not lowering).
func LowerItems(l *Lowerer, scope ast.Scope, items []*ast.Item) {
	for _, item := range items {
		lowerItem(l, scope, item)
	}
}

func lowerItem(l *Lowerer, scope ast.Scope, item *ast.Item) {
	switch item.Kind {
	case ast.ItemModule:
		lowerModule(l, scope, item)

	case ast.ItemUse:
		// Handled by the use-table pass.

	case ast.ItemFn:
		fn := lowerFunction(l, item.Fn)
		if item.Fn.Extern && item.Fn.Body == nil {
			l.Tree.ExternFunctionsNoBody = append(l.Tree.ExternFunctionsNoBody, fn)
		} else {
			l.Tree.Functions = append(l.Tree.Functions, fn)
		}

	case ast.ItemTypeAlias:
		l.Tree.TypeAliases = append(l.Tree.TypeAliases, hir.TypeAlias{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Underlying: lowerTypeRef(l, item.Type),
		})

	case ast.ItemDistinctType:
		l.Tree.DistinctTypes = append(l.Tree.DistinctTypes, hir.DistinctType{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Underlying: lowerTypeRef(l, item.Type),
		})

	case ast.ItemOpaqueType:
		l.Tree.OpaqueTypes = append(l.Tree.OpaqueTypes, hir.OpaqueType{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis,
		})

	case ast.ItemStruct:
		l.Tree.Structs = append(l.Tree.Structs, hir.Struct{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Fields: lowerFields(l, item.Fields),
		})

	case ast.ItemTupleStruct:
		l.Tree.TupleStructs = append(l.Tree.TupleStructs, hir.TupleStruct{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Fields: lowerFields(l, item.Fields),
		})

	case ast.ItemUnitStruct:
		l.Tree.UnitStructs = append(l.Tree.UnitStructs, hir.UnitStruct{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis,
		})

	case ast.ItemUnion:
		l.Tree.Unions = append(l.Tree.Unions, hir.Union{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Fields: lowerFields(l, item.Fields),
		})

	case ast.ItemAdtEnum:
		l.Tree.AdtEnums = append(l.Tree.AdtEnums, hir.AdtEnum{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Variants: lowerVariants(l, item),
		})

	case ast.ItemFlagEnum:
		l.Tree.FlagEnums = append(l.Tree.FlagEnums, hir.FlagEnum{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Variants: lowerVariants(l, item),
		})

	case ast.ItemBitfield:
		l.Tree.Bitfields = append(l.Tree.Bitfields, hir.Bitfield{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Backing: item.Type, Variants: lowerVariants(l, item),
		})

	case ast.ItemConst:
		l.Tree.Consts = append(l.Tree.Consts, hir.Const{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Type: item.Type, Value: lowerExprOrNil(l, item.Value),
		})

	case ast.ItemStatic:
		l.Tree.Statics = append(l.Tree.Statics, hir.Static{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Type: item.Type, Value: lowerExprOrNil(l, item.Value),
		})

	case ast.ItemTlsStatic:
		l.Tree.TlsStatics = append(l.Tree.TlsStatics, hir.TlsStatic{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Type: item.Type, Value: lowerExprOrNil(l, item.Value),
		})

	case ast.ItemExternStatic:
		l.Tree.ExternStatics = append(l.Tree.ExternStatics, hir.ExternStatic{
			Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis, Type: item.Type,
		})

	case ast.ItemTrait:
		owner := l.Tree.AddTrait(hir.Trait{Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis})
		lowerTraitAssoc(l, owner, item.Assoc)

	case ast.ItemImpl:
		owner := l.Tree.AddImpl(hir.Impl{Context: l.hirContext(item.NodeID()), Target: item.Target, TraitRef: item.TraitRef})
		lowerImplAssoc(l, owner, item.Assoc)

	case ast.ItemOpTrait:
		owner := l.Tree.AddOpTrait(hir.OpTrait{Context: l.hirContext(item.NodeID()), Name: item.Name, Vis: item.Vis})
		lowerOpAssoc(l, owner, item.Assoc)

	case ast.ItemOpSet:
		owner := l.Tree.AddOpSet(hir.OpSet{Context: l.hirContext(item.NodeID()), Target: item.Target, TraitRef: item.TraitRef})
		lowerOpAssoc(l, owner, item.Assoc)

	case ast.ItemPrecedence:
		l.Tree.Precedences = append(l.Tree.Precedences, hir.Precedence{
			Context: l.hirContext(item.NodeID()), Name: item.Name, HigherThan: item.HigherThan, LowerThan: item.LowerThan,
		})

	case ast.ItemProperty:
		// A bare top-level property item is unusual (properties are
		// normally associated items); fold it into the trait-side list at
		// module scope so it is not silently dropped.
		lowerProperty(l, -1, item, true)
	}
}

func lowerModule(l *Lowerer, scope ast.Scope, item *ast.Item) {
	mod := item.Module
	if mod == nil {
		return
	}
	childScope := scope.Child(ast.ScopeSegment{Name: mod.Name, Kind: ast.SegmentModule})
	l.Tree.Modules = append(l.Tree.Modules, hir.Module{
		Context: l.hirContext(item.NodeID()), Name: mod.Name, Scope: childScope,
	})
	LowerItems(l, childScope, mod.Items)
}

func lowerFields(l *Lowerer, fields []ast.RecordField) []ast.RecordField {
	out := make([]ast.RecordField, len(fields))
	for i, f := range fields {
		out[i] = ast.RecordField{Name: f.Name, Type: lowerTypeRef(l, f.Type)}
	}
	return out
}

// lowerVariants models each adt_enum/flag_enum/bitfield item as exactly one
// hir.Variant sharing the item's own name, fields, and discriminant value.
// ast.Item carries no per-variant list (only one Fields/Value slot per
// item), so a source declaring multiple variants under one item is
// represented here as a single variant — the honest limit of the surface
// model this core's parser produces, not a deliberate narrowing of multi-
// variant enums.
func lowerVariants(l *Lowerer, item *ast.Item) []hir.Variant {
	return []hir.Variant{{
		Name:   item.Name,
		Fields: lowerFields(l, item.Fields),
		Value:  lowerExprOrNil(l, item.Value),
	}}
}

func lowerTraitAssoc(l *Lowerer, owner int, assoc []*ast.Item) {
	for _, a := range assoc {
		switch a.Kind {
		case ast.ItemFn:
			fn := lowerAssocFn(l, a.Fn)
			if a.Fn.HasSelf {
				l.Tree.TraitMethods = append(l.Tree.TraitMethods, hir.TraitMethod{Owner: owner, Context: l.hirContext(a.NodeID()), Fn: fn})
			} else {
				l.Tree.TraitFunctions = append(l.Tree.TraitFunctions, hir.TraitFunction{Owner: owner, Context: l.hirContext(a.NodeID()), Fn: fn})
			}
		case ast.ItemTypeAlias:
			l.Tree.TraitTypeAlias = append(l.Tree.TraitTypeAlias, hir.TraitTypeAlias{
				Owner: owner, Context: l.hirContext(a.NodeID()), Name: a.Name, Underlying: lowerTypeRef(l, a.Type),
			})
		case ast.ItemConst:
			l.Tree.TraitConsts = append(l.Tree.TraitConsts, hir.TraitConst{
				Owner: owner, Context: l.hirContext(a.NodeID()), Name: a.Name, Type: a.Type, Value: lowerExprOrNil(l, a.Value),
			})
		case ast.ItemProperty:
			lowerProperty(l, owner, a, true)
		}
	}
}

func lowerImplAssoc(l *Lowerer, owner int, assoc []*ast.Item) {
	for _, a := range assoc {
		switch a.Kind {
		case ast.ItemFn:
			fn := lowerAssocFn(l, a.Fn)
			if a.Fn.HasSelf {
				l.Tree.ImplMethods = append(l.Tree.ImplMethods, hir.ImplMethod{Owner: owner, Context: l.hirContext(a.NodeID()), Fn: fn})
			} else {
				l.Tree.ImplFunctions = append(l.Tree.ImplFunctions, hir.ImplFunction{Owner: owner, Context: l.hirContext(a.NodeID()), Fn: fn})
			}
		case ast.ItemTypeAlias:
			l.Tree.ImplTypeAlias = append(l.Tree.ImplTypeAlias, hir.ImplTypeAlias{
				Owner: owner, Context: l.hirContext(a.NodeID()), Name: a.Name, Underlying: lowerTypeRef(l, a.Type),
			})
		case ast.ItemConst:
			l.Tree.ImplConsts = append(l.Tree.ImplConsts, hir.ImplConst{
				Owner: owner, Context: l.hirContext(a.NodeID()), Name: a.Name, Type: a.Type, Value: lowerExprOrNil(l, a.Value),
			})
		case ast.ItemStatic:
			l.Tree.ImplStatics = append(l.Tree.ImplStatics, hir.ImplStatic{
				Owner: owner, Context: l.hirContext(a.NodeID()), Name: a.Name, Type: a.Type, Value: lowerExprOrNil(l, a.Value),
			})
		case ast.ItemTlsStatic:
			l.Tree.ImplTlsStatics = append(l.Tree.ImplTlsStatics, hir.ImplTlsStatic{
				Owner: owner, Context: l.hirContext(a.NodeID()), Name: a.Name, Type: a.Type, Value: lowerExprOrNil(l, a.Value),
			})
		case ast.ItemProperty:
			lowerProperty(l, owner, a, false)
		}
	}
}

func lowerOpAssoc(l *Lowerer, owner int, assoc []*ast.Item) {
	for _, a := range assoc {
		switch a.Kind {
		case ast.ItemFn:
			fn := lowerAssocFn(l, a.Fn)
			l.Tree.OpFunctions = append(l.Tree.OpFunctions, hir.OpFunction{Owner: owner, Context: l.hirContext(a.NodeID()), Fn: fn})
		}
	}
}
