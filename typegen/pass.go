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

package typegen

import (
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
)

// GenerateTypes runs the item-level type pass over tree (§4.8): every
// type-forming item gets its own symbol registered as a TypePathRef and
// bound into its Context.Ty; every item carrying a declared type
// annotation (const/static, function params/return) has that annotation
// walked via VisitType so its structural shape is registered too, and — for
// const/static specifically — Context.Ty is set to the registered type of
// the annotation itself rather than a fresh self-reference, matching the
// post-condition in §4.8/§8 property 10 ("sym.ty equals the registered
// type of that annotation").
//
// GenerateTypes never enters a function body: Function.Body is untouched.
func GenerateTypes(tree *hir.Tree, reg *Registry) {
	for i := range tree.TypeAliases {
		item := &tree.TypeAliases[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
		VisitType(reg, item.Underlying)
	}
	for i := range tree.DistinctTypes {
		item := &tree.DistinctTypes[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
		VisitType(reg, item.Underlying)
	}
	for i := range tree.OpaqueTypes {
		item := &tree.OpaqueTypes[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
	}
	for i := range tree.Structs {
		item := &tree.Structs[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
		visitFields(reg, item.Fields)
	}
	for i := range tree.TupleStructs {
		item := &tree.TupleStructs[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
		visitFields(reg, item.Fields)
	}
	for i := range tree.UnitStructs {
		item := &tree.UnitStructs[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
	}
	for i := range tree.Unions {
		item := &tree.Unions[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
		visitFields(reg, item.Fields)
	}
	for i := range tree.AdtEnums {
		item := &tree.AdtEnums[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
		for _, v := range item.Variants {
			visitFields(reg, v.Fields)
		}
	}
	for i := range tree.FlagEnums {
		item := &tree.FlagEnums[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
	}
	for i := range tree.Bitfields {
		item := &tree.Bitfields[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
		VisitType(reg, item.Backing)
	}
	for i := range tree.Traits {
		item := &tree.Traits[i]
		item.Ty = reg.RegisterPathRef(item.Sym)
	}

	for i := range tree.Consts {
		item := &tree.Consts[i]
		item.Ty = bindAnnotated(reg, item.Type)
	}
	for i := range tree.Statics {
		item := &tree.Statics[i]
		item.Ty = bindAnnotated(reg, item.Type)
	}
	for i := range tree.TlsStatics {
		item := &tree.TlsStatics[i]
		item.Ty = bindAnnotated(reg, item.Type)
	}
	for i := range tree.ExternStatics {
		item := &tree.ExternStatics[i]
		item.Ty = bindAnnotated(reg, item.Type)
	}

	for i := range tree.Functions {
		visitFunctionSignature(reg, &tree.Functions[i])
	}
	for i := range tree.ExternFunctionsNoBody {
		visitFunctionSignature(reg, &tree.ExternFunctionsNoBody[i])
	}
}

// bindAnnotated registers t (which may be nil, for an inferred
// declaration) and returns the ref to use as the declaring item's own
// Context.Ty, per §4.8's const/static post-condition.
func bindAnnotated(reg *Registry, t *ast.Type) ast.TypeRef {
	if t == nil {
		return ast.NoType
	}
	return VisitType(reg, t)
}

func visitFields(reg *Registry, fields []ast.RecordField) {
	for _, f := range fields {
		VisitType(reg, f.Type)
	}
}

func visitFunctionSignature(reg *Registry, fn *hir.Function) {
	for _, p := range fn.Params {
		VisitType(reg, p.Type)
	}
	if fn.Return.IsNamed() {
		for _, slot := range fn.Return.Named {
			VisitType(reg, slot.Type)
		}
	} else {
		VisitType(reg, fn.Return.Type)
	}
}
