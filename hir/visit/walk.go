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

package visit

import "github.com/xenonlang/xnc/hir"

// Walk drives v over every item collection in t selected by flags, in
// collection order. For traits/impls it advances a running cursor through
// each owner-indexed parallel list, handing VisitTrait/VisitImpl exactly
// the contiguous run belonging to that owner — a single linear pass over
// each parallel list, exploiting the "contiguous associated items per
// parent" invariant (§3.4, §9) rather than filtering per trait.
//
// FlagOpTraits and FlagOpSets select nothing: Walk does not visit op traits
// or op sets. The ExternFunctionsNoBody, TlsStatics and ExternStatics
// collections are not visited under any flag.
func Walk(t *hir.Tree, flags Flags, v Visitor) {
	if flags.Has(FlagFunctions) {
		for i := range t.Functions {
			v.VisitFunction(&t.Functions[i])
		}
	}
	if flags.Has(FlagTypeAliases) {
		for i := range t.TypeAliases {
			v.VisitTypeAlias(&t.TypeAliases[i])
		}
	}
	if flags.Has(FlagDistinctTypes) {
		for i := range t.DistinctTypes {
			v.VisitDistinctType(&t.DistinctTypes[i])
		}
	}
	if flags.Has(FlagOpaqueTypes) {
		for i := range t.OpaqueTypes {
			v.VisitOpaqueType(&t.OpaqueTypes[i])
		}
	}
	if flags.Has(FlagStructs) {
		for i := range t.Structs {
			v.VisitStruct(&t.Structs[i])
		}
		for i := range t.TupleStructs {
			v.VisitTupleStruct(&t.TupleStructs[i])
		}
		for i := range t.UnitStructs {
			v.VisitUnitStruct(&t.UnitStructs[i])
		}
	}
	if flags.Has(FlagUnions) {
		for i := range t.Unions {
			v.VisitUnion(&t.Unions[i])
		}
	}
	if flags.Has(FlagEnums) {
		for i := range t.AdtEnums {
			v.VisitAdtEnum(&t.AdtEnums[i])
		}
		for i := range t.FlagEnums {
			v.VisitFlagEnum(&t.FlagEnums[i])
		}
	}
	if flags.Has(FlagBitfields) {
		for i := range t.Bitfields {
			v.VisitBitfield(&t.Bitfields[i])
		}
	}
	if flags.Has(FlagConsts) {
		for i := range t.Consts {
			v.VisitConst(&t.Consts[i])
		}
	}
	if flags.Has(FlagStatics) {
		for i := range t.Statics {
			v.VisitStatic(&t.Statics[i])
		}
	}
	if flags.Has(FlagTraits) {
		walkTraits(t, v)
	}
	if flags.Has(FlagImpls) {
		walkImpls(t, v)
	}
	if flags.Has(FlagPrecedences) {
		for i := range t.Precedences {
			v.VisitPrecedence(&t.Precedences[i])
		}
	}
}

// ownerRun advances cursor (an index into a slice whose elements each
// carry an Owner field) past every entry belonging to owner, returning the
// [start, cursor) sub-slice and the updated cursor.
func ownerRun[T any](items []T, cursor int, owner int, ownerOf func(T) int) ([]T, int) {
	start := cursor
	for cursor < len(items) && ownerOf(items[cursor]) == owner {
		cursor++
	}
	return items[start:cursor], cursor
}

func walkTraits(t *hir.Tree, v Visitor) {
	fc, mc, ac, cc, pc := 0, 0, 0, 0, 0
	for i := range t.Traits {
		var funcs []hir.TraitFunction
		var methods []hir.TraitMethod
		var aliases []hir.TraitTypeAlias
		var consts []hir.TraitConst
		var props []hir.TraitProperty
		funcs, fc = ownerRun(t.TraitFunctions, fc, i, func(e hir.TraitFunction) int { return e.Owner })
		methods, mc = ownerRun(t.TraitMethods, mc, i, func(e hir.TraitMethod) int { return e.Owner })
		aliases, ac = ownerRun(t.TraitTypeAlias, ac, i, func(e hir.TraitTypeAlias) int { return e.Owner })
		consts, cc = ownerRun(t.TraitConsts, cc, i, func(e hir.TraitConst) int { return e.Owner })
		props, pc = ownerRun(t.TraitProperties, pc, i, func(e hir.TraitProperty) int { return e.Owner })
		v.VisitTrait(&t.Traits[i], funcs, methods, aliases, consts, props)
	}
}

func walkImpls(t *hir.Tree, v Visitor) {
	fc, mc, ac, cc, sc, pc := 0, 0, 0, 0, 0, 0
	for i := range t.Impls {
		var funcs []hir.ImplFunction
		var methods []hir.ImplMethod
		var aliases []hir.ImplTypeAlias
		var consts []hir.ImplConst
		var statics []hir.ImplStatic
		var props []hir.ImplProperty
		funcs, fc = ownerRun(t.ImplFunctions, fc, i, func(e hir.ImplFunction) int { return e.Owner })
		methods, mc = ownerRun(t.ImplMethods, mc, i, func(e hir.ImplMethod) int { return e.Owner })
		aliases, ac = ownerRun(t.ImplTypeAlias, ac, i, func(e hir.ImplTypeAlias) int { return e.Owner })
		consts, cc = ownerRun(t.ImplConsts, cc, i, func(e hir.ImplConst) int { return e.Owner })
		statics, sc = ownerRun(t.ImplStatics, sc, i, func(e hir.ImplStatic) int { return e.Owner })
		props, pc = ownerRun(t.ImplProperties, pc, i, func(e hir.ImplProperty) int { return e.Owner })
		v.VisitImpl(&t.Impls[i], funcs, methods, aliases, consts, statics, props)
	}
}
