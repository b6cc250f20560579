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

import "github.com/xenonlang/xnc/intern"

// Visibility mirrors §3.4's default-private rule: a bare item is private
// unless marked `pub`, except inside an extern block, whose declared
// visibility becomes the default for the block's lifetime.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

// Abi is the parsed form of an extern declaration's ABI string literal
// (§4.5.3). AbiXenon is the default when no literal is present.
type Abi uint8

const (
	AbiXenon Abi = iota
	AbiC
	AbiContextless
)

// ParseAbi classifies a raw ABI string literal, reporting ok=false for
// anything other than the three accepted values.
func ParseAbi(s string) (Abi, bool) {
	switch s {
	case "C":
		return AbiC, true
	case "contextless":
		return AbiContextless, true
	case "xenon":
		return AbiXenon, true
	default:
		return AbiXenon, false
	}
}

// NamedReturnSlot is one element of a named-return tuple
// (`fn f() -> (a, b: u32, c: f32)`, §4.5.2): a name and the type the
// lowering engine's synthesized UninitVarDecl binds it to.
type NamedReturnSlot struct {
	Name intern.ID
	Type *Type
}

// ReturnSpec is a function's return-position annotation: either an
// ordinary type, or a named-return tuple that lowering rewrites into
// local variable declarations plus a trailing tuple expression.
type ReturnSpec struct {
	Type  *Type // non-nil for an ordinary (unnamed) return type
	Named []NamedReturnSlot
}

// IsNamed reports whether this is a named-return declaration.
func (r ReturnSpec) IsNamed() bool { return len(r.Named) > 0 }

// Param is one function parameter.
type Param struct {
	Name    intern.ID
	Type    *Type
	Default *Expr
}

// GenericParamPack is the single optional variadic tail of a generic
// parameter list (§4.5.4): Defaults are addressed by the step+offset
// scheme lowering resolves against each pack element's expected kind.
type GenericParamPack struct {
	Name     intern.ID
	IsConst  bool
	Defaults []*Expr
}

// GenericParams decomposes a generic parameter list into its four
// independent parts plus the single optional pack (§4.5.4).
type GenericParams struct {
	TypeParams    []intern.ID
	TypeSpecs     map[intern.ID]*Type
	ConstParams   []intern.ID
	ConstSpecs    map[intern.ID]*Expr
	Pack          *GenericParamPack
}

// Fn is a function item, shared (per §9 "deep inheritance") by ordinary
// functions, extern no-body declarations, trait/impl methods: callers
// distinguish those by where a Fn is stored (e.g. hir.Functions vs
// hir.ExternFunctionsNoBody) rather than by a subtype.
type Fn struct {
	node
	Name       intern.ID
	Vis        Visibility
	Generics   GenericParams
	Params     []Param
	HasSelf    bool
	Return     ReturnSpec
	Body       *Expr // nil for an extern declaration with no body
	Extern     bool

	// AbiLiteral is the raw text of an optional `extern "..."` string
	// literal; HasAbi is false when no ABI literal appears at all. Package
	// lower (§4.5.3) is the one that validates AbiLiteral via ParseAbi and
	// reports InvalidAbiLiteral, so the Abi field itself belongs to
	// hir.Function, not here — this is surface text, not yet a verdict.
	AbiLiteral string
	HasAbi     bool
}

// Module is a `mod name { ... }` or `mod name;` item. Body is nil for the
// non-inline form, which the module path resolver (§4.4) must locate on
// disk.
type Module struct {
	node
	Name  intern.ID
	Vis   Visibility
	Items []*Item
	Body  bool // true for an inline `mod name { ... }`
}

// ItemKind discriminates the shape of a top-level or associated Item.
type ItemKind uint8

const (
	ItemModule ItemKind = iota
	ItemFn
	ItemUse
	ItemTypeAlias
	ItemDistinctType
	ItemOpaqueType
	ItemStruct
	ItemTupleStruct
	ItemUnitStruct
	ItemUnion
	ItemAdtEnum
	ItemFlagEnum
	ItemBitfield
	ItemConst
	ItemStatic
	ItemTlsStatic
	ItemExternStatic
	ItemTrait
	ItemImpl
	ItemOpTrait
	ItemOpSet
	ItemPrecedence
	ItemProperty
)

// UsePathSegment is one step of a `use` path, e.g. the `a`, `b` in
// `use a.b.{c, d as e};`.
type UsePathSegment struct {
	Name     intern.ID
	Wildcard bool // `use a.*;`
}

// UseTree is a single leaf of a (possibly grouped) use declaration.
type UseTree struct {
	Path  []UsePathSegment
	Alias intern.ID
	HasAlias bool
	SelfWildcard bool // `use a.self;` — wildcard at the current base scope
}

// Item is a tagged union over every item-position AST shape. Most of the
// non-function, non-module kinds only need to carry enough surface detail
// for the symbol/use/type passes (§4.7-§4.9); their bodies, where present,
// are opaque to this core except through the fields below.
type Item struct {
	node
	Kind ItemKind
	Name intern.ID
	Vis  Visibility

	Module *Module
	Fn     *Fn

	Uses []UseTree

	// Struct/union/enum/bitfield/const/static/type-alias payload: the
	// declared fields (structs/unions), variants (enums), or aliased/
	// underlying type, as applicable to Kind.
	Fields  []RecordField
	Type    *Type
	Value   *Expr

	// Trait/impl/op_trait/op_set: associated items, kept in source order;
	// package hir splits these into per-kind parallel lists when it
	// ingests them (§3.4 "contiguous associated items" invariant).
	TraitRef *Type // Impl's optional implemented trait
	Target   *Type // Impl's implementing type
	Assoc    []*Item

	// Precedence item
	HigherThan []intern.ID
	LowerThan  []intern.ID

	// Property item (§4.5.2 "Properties / getters / setters"): Type is the
	// property's declared type (the Type field above is reused); each of
	// the four accessor slots is nil when that accessor isn't declared. A
	// trait-side property carries declarations (possibly with a default
	// body); an impl-side property's accessors always have a body.
	PropertyGet    *Fn
	PropertyRefGet *Fn
	PropertyMutGet *Fn
	PropertySet    *Fn
}
