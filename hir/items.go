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

// Module is a HIR module item: just enough to anchor a Scope and hold the
// child item indices a printer/visitor walks; the items themselves live in
// Tree's flat collections, addressed by the symbol table rather than by a
// child list here (§3.4 "parent/child relations... expressed as indices").
type Module struct {
	Context
	Name  intern.ID
	Scope ast.Scope
}

// Function is a `functions`/`extern_functions_no_body` entry. The same
// shape serves both collections; which one a given Function lives in is
// what distinguishes "has a body" from "extern declaration," matching the
// ast.Fn convention it's lowered from.
type Function struct {
	Context
	Name     intern.ID
	Vis      ast.Visibility
	Generics ast.GenericParams
	Params   []ast.Param
	HasSelf  bool
	Return   ast.ReturnSpec
	Body     *Expr
	Abi      ast.Abi
}

// Fn is the lowered counterpart of ast.Fn used by every trait/impl/optrait
// associated function, method, and operator entry: same metadata shape as
// ast.Fn, but Body (when present) is already-desugared HIR rather than
// surface ast.Expr, matching the "no surface sugar" HIR contract (§4.5)
// that ast.Fn itself cannot satisfy. Kept as one shared shape rather than
// a chain of specialized types per §9's "deep inheritance" guidance —
// TraitFunction vs TraitMethod vs ImplFunction vs ImplMethod vary only in
// which parallel list and Owner they belong to, not in this leaf shape.
type Fn struct {
	Name     intern.ID
	Vis      ast.Visibility
	Generics ast.GenericParams
	Params   []ast.Param
	HasSelf  bool
	Return   ast.ReturnSpec
	Body     *Expr
	Abi      ast.Abi
}

// TypeAlias / DistinctType / OpaqueType share a shape: a name and (for
// TypeAlias and DistinctType) an underlying type.
type TypeAlias struct {
	Context
	Name       intern.ID
	Vis        ast.Visibility
	Underlying *ast.Type
}

type DistinctType struct {
	Context
	Name       intern.ID
	Vis        ast.Visibility
	Underlying *ast.Type
}

type OpaqueType struct {
	Context
	Name intern.ID
	Vis  ast.Visibility
}

// Struct / TupleStruct / UnitStruct all carry a field list; TupleStruct's
// RecordField.Name is conventionally unused (fields are addressed
// positionally) and UnitStruct's Fields is always empty — kept as one
// shape rather than three so hir/visit's helpers can share one traversal.
type Struct struct {
	Context
	Name   intern.ID
	Vis    ast.Visibility
	Fields []ast.RecordField

	// Generated marks a struct package lower hoisted out of an anonymous
	// record type (§4.5.2 "Anonymous record types") rather than one a
	// user wrote directly.
	Generated bool
}

type TupleStruct struct {
	Context
	Name   intern.ID
	Vis    ast.Visibility
	Fields []ast.RecordField
}

type UnitStruct struct {
	Context
	Name intern.ID
	Vis  ast.Visibility
}

type Union struct {
	Context
	Name   intern.ID
	Vis    ast.Visibility
	Fields []ast.RecordField
}

// Variant is one arm of an adt_enum/flag_enum/bitfield.
type Variant struct {
	Name   intern.ID
	Fields []ast.RecordField // adt_enum payload; empty for flag_enum/bitfield
	Value  *ast.Expr         // explicit discriminant/flag value, if given
}

type AdtEnum struct {
	Context
	Name     intern.ID
	Vis      ast.Visibility
	Variants []Variant
}

type FlagEnum struct {
	Context
	Name     intern.ID
	Vis      ast.Visibility
	Variants []Variant
}

type Bitfield struct {
	Context
	Name     intern.ID
	Vis      ast.Visibility
	Backing  *ast.Type
	Variants []Variant
}

// Const / Static / TlsStatic / ExternStatic share a shape.
type Const struct {
	Context
	Name  intern.ID
	Vis   ast.Visibility
	Type  *ast.Type
	Value *ast.Expr
}

type Static struct {
	Context
	Name  intern.ID
	Vis   ast.Visibility
	Mut   bool
	Type  *ast.Type
	Value *ast.Expr
}

type TlsStatic struct {
	Context
	Name  intern.ID
	Vis   ast.Visibility
	Mut   bool
	Type  *ast.Type
	Value *ast.Expr
}

type ExternStatic struct {
	Context
	Name intern.ID
	Vis  ast.Visibility
	Mut  bool
	Type *ast.Type
}

// Trait is the owning collection entry for a `trait` item; its associated
// items live in the parallel TraitFunctions/TraitMethods/TraitTypeAlias/
// TraitConsts/TraitProperties lists below, each entry carrying the owning
// Trait's index and appearing contiguously per owner (§3.4 invariant).
type Trait struct {
	Context
	Name intern.ID
	Vis  ast.Visibility
}

// TraitFunction/TraitMethod distinguish a trait-level free function from a
// self-taking method the same way ast.Fn.HasSelf does; kept as separate
// parallel lists because a visitor walking "every trait method" should not
// have to filter "every trait function."
type TraitFunction struct {
	Owner int
	Context
	Fn Fn
}

type TraitMethod struct {
	Owner int
	Context
	Fn Fn
}

type TraitTypeAlias struct {
	Owner int
	Context
	Name       intern.ID
	Underlying *ast.Type // nil when the trait only declares the alias
}

type TraitConst struct {
	Owner int
	Context
	Name  intern.ID
	Type  *ast.Type
	Value *ast.Expr // nil when the trait only declares the const
}

// TraitProperty is the trait-side half of §4.5's property/getter/setter
// splitting: four option slots, one per {get, ref get, mut get, set},
// each nil when that accessor isn't declared.
type TraitProperty struct {
	Owner int
	Context
	Name   intern.ID
	Type   *ast.Type
	Get    *Fn
	RefGet *Fn
	MutGet *Fn
	Set    *Fn
}

// Impl is the owning collection entry for an `impl` block; TraitRef is nil
// for an inherent impl.
type Impl struct {
	Context
	Target   *ast.Type
	TraitRef *ast.Type
}

type ImplFunction struct {
	Owner int
	Context
	Fn Fn
}

type ImplMethod struct {
	Owner int
	Context
	Fn Fn
}

type ImplTypeAlias struct {
	Owner int
	Context
	Name       intern.ID
	Underlying *ast.Type
}

type ImplConst struct {
	Owner int
	Context
	Name  intern.ID
	Type  *ast.Type
	Value *ast.Expr
}

type ImplStatic struct {
	Owner int
	Context
	Name  intern.ID
	Mut   bool
	Type  *ast.Type
	Value *ast.Expr
}

type ImplTlsStatic struct {
	Owner int
	Context
	Name  intern.ID
	Mut   bool
	Type  *ast.Type
	Value *ast.Expr
}

// ImplProperty is the impl-side half of property splitting: concrete
// accessor bodies rather than trait-side declarations.
type ImplProperty struct {
	Owner int
	Context
	Name   intern.ID
	Type   *ast.Type
	Get    *Fn
	RefGet *Fn
	MutGet *Fn
	Set    *Fn
}

// OpTrait / OpSet mirror Trait/Impl for operator overloading blocks
// (`optrait`/`opset`, §3.4): OpFunction/Operator/OpContract are the
// parallel associated-item lists.
type OpTrait struct {
	Context
	Name intern.ID
	Vis  ast.Visibility
}

type OpSet struct {
	Context
	Target   *ast.Type
	TraitRef *ast.Type
}

type OpFunction struct {
	Owner int
	Context
	Fn Fn
}

// Operator is one overloaded operator definition/declaration.
type Operator struct {
	Owner int
	Context
	Symbol intern.PunctuationID
	Fn     Fn
}

// OpContract constrains an operator's generic parameters (e.g. `where T:
// Add`); stored as a raw type reference rather than parsed further, since
// constraint solving is out of this core's scope.
type OpContract struct {
	Owner int
	Context
	Constraint *ast.Type
}

// Precedence declares a named precedence level's relative ordering.
type Precedence struct {
	Context
	Name       intern.ID
	HigherThan []intern.ID
	LowerThan  []intern.ID
}
