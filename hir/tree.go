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

// Tree is the whole HIR for one compilation unit: one flat slice per item
// kind, exactly the layout §3.4 names. Lowering appends to these in
// source order and never reorders them afterward, which is what gives the
// "contiguous per owner" invariant on the parallel associated-item lists
// for free — as long as a trait/impl/op_set's own associated items are
// all appended before the next owner's.
type Tree struct {
	Modules []Module

	Functions              []Function
	ExternFunctionsNoBody  []Function
	TypeAliases            []TypeAlias
	DistinctTypes          []DistinctType
	OpaqueTypes            []OpaqueType
	Structs                []Struct
	TupleStructs           []TupleStruct
	UnitStructs            []UnitStruct
	Unions                 []Union
	AdtEnums               []AdtEnum
	FlagEnums              []FlagEnum
	Bitfields              []Bitfield
	Consts                 []Const
	Statics                []Static
	TlsStatics             []TlsStatic
	ExternStatics          []ExternStatic

	Traits          []Trait
	TraitFunctions  []TraitFunction
	TraitMethods    []TraitMethod
	TraitTypeAlias  []TraitTypeAlias
	TraitConsts     []TraitConst
	TraitProperties []TraitProperty

	Impls          []Impl
	ImplFunctions  []ImplFunction
	ImplMethods    []ImplMethod
	ImplTypeAlias  []ImplTypeAlias
	ImplConsts     []ImplConst
	ImplStatics    []ImplStatic
	ImplTlsStatics []ImplTlsStatic
	ImplProperties []ImplProperty

	OpTraits    []OpTrait
	OpSets      []OpSet
	OpFunctions []OpFunction
	Operators   []Operator
	OpContracts []OpContract

	Precedences []Precedence
}

// NewTree returns an empty HIR tree.
func NewTree() *Tree { return &Tree{} }

// AddTrait appends a Trait and returns its index, the Owner value every
// subsequent TraitFunction/TraitMethod/TraitTypeAlias/TraitConst/
// TraitProperty call for this trait must use to keep the parallel lists
// contiguous per owner.
func (t *Tree) AddTrait(tr Trait) int {
	t.Traits = append(t.Traits, tr)
	return len(t.Traits) - 1
}

// AddImpl appends an Impl and returns its index, analogous to AddTrait.
func (t *Tree) AddImpl(im Impl) int {
	t.Impls = append(t.Impls, im)
	return len(t.Impls) - 1
}

// AddOpTrait appends an OpTrait and returns its index.
func (t *Tree) AddOpTrait(ot OpTrait) int {
	t.OpTraits = append(t.OpTraits, ot)
	return len(t.OpTraits) - 1
}

// AddOpSet appends an OpSet and returns its index.
func (t *Tree) AddOpSet(os OpSet) int {
	t.OpSets = append(t.OpSets, os)
	return len(t.OpSets) - 1
}
