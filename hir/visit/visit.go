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

// Package visit is the HIR visitor framework (§4.6): a Visitor interface
// with one method per HIR node kind, a bit-packed VisitFlags selecting
// which top-level item kinds a traversal should enter, and free
// visit_*-style helper functions implementing the default recursive body
// every override can fall back to.
package visit

import "github.com/xenonlang/xnc/hir"

// Flags selects which of a Tree's top-level item-kind collections a
// Walk should enter. The zero value selects nothing; All selects every
// kind.
type Flags uint32

const (
	FlagFunctions Flags = 1 << iota
	FlagTypeAliases
	FlagDistinctTypes
	FlagOpaqueTypes
	FlagStructs
	FlagUnions
	FlagEnums
	FlagBitfields
	FlagConsts
	FlagStatics
	FlagTraits
	FlagImpls
	FlagOpTraits
	FlagOpSets
	FlagPrecedences
)

// All selects every top-level item kind.
const All Flags = FlagFunctions | FlagTypeAliases | FlagDistinctTypes |
	FlagOpaqueTypes | FlagStructs | FlagUnions | FlagEnums | FlagBitfields |
	FlagConsts | FlagStatics | FlagTraits | FlagImpls | FlagOpTraits |
	FlagOpSets | FlagPrecedences

// Has reports whether f includes bit.
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Visitor exposes one method per HIR node kind (§4.6). A default
// implementation embeds Base, whose methods all delegate to the Visit*
// free functions below (recurse into children, do nothing else);
// overriding a method suppresses or specializes only that kind.
type Visitor interface {
	VisitFunction(fn *hir.Function)
	VisitTypeAlias(ta *hir.TypeAlias)
	VisitDistinctType(dt *hir.DistinctType)
	VisitOpaqueType(ot *hir.OpaqueType)
	VisitStruct(s *hir.Struct)
	VisitTupleStruct(s *hir.TupleStruct)
	VisitUnitStruct(s *hir.UnitStruct)
	VisitUnion(u *hir.Union)
	VisitAdtEnum(e *hir.AdtEnum)
	VisitFlagEnum(e *hir.FlagEnum)
	VisitBitfield(b *hir.Bitfield)
	VisitConst(c *hir.Const)
	VisitStatic(s *hir.Static)
	VisitTrait(tr *hir.Trait, funcs []hir.TraitFunction, methods []hir.TraitMethod, aliases []hir.TraitTypeAlias, consts []hir.TraitConst, props []hir.TraitProperty)
	VisitImpl(im *hir.Impl, funcs []hir.ImplFunction, methods []hir.ImplMethod, aliases []hir.ImplTypeAlias, consts []hir.ImplConst, statics []hir.ImplStatic, props []hir.ImplProperty)
	VisitPrecedence(p *hir.Precedence)

	VisitExpr(e *hir.Expr)
	VisitStmt(s *hir.Stmt)
}

// Base is an embeddable no-op-but-recursing Visitor: every method calls the
// matching Visit* free function against itself, so embedding Base and
// overriding a handful of methods is the idiomatic way to write a
// single-purpose pass (e.g. "collect every function body's return
// expressions") without reimplementing traversal.
//
// Caveat: Go embedding does not give Base's own methods access to the
// outer type, so a promoted Base method recurses through Base{} itself,
// not through the embedder. A type that overrides VisitExpr but relies on
// the promoted VisitStmt (or vice versa) will lose its override below that
// boundary. Any override of VisitFunction, VisitTrait, VisitImpl,
// VisitExpr, or VisitStmt — the five methods that recurse into further
// Visitor calls — must be paired with an explicit one-line override of
// whichever of those five methods it calls into, each delegating to the
// matching free function with itself as the receiver (see VisitExpr's own
// override pattern in this package's tests).
type Base struct{}

func (Base) VisitFunction(fn *hir.Function)       { VisitFunction(Base{}, fn) }
func (Base) VisitTypeAlias(*hir.TypeAlias)        {}
func (Base) VisitDistinctType(*hir.DistinctType)  {}
func (Base) VisitOpaqueType(*hir.OpaqueType)      {}
func (Base) VisitStruct(*hir.Struct)              {}
func (Base) VisitTupleStruct(*hir.TupleStruct)    {}
func (Base) VisitUnitStruct(*hir.UnitStruct)      {}
func (Base) VisitUnion(*hir.Union)                {}
func (Base) VisitAdtEnum(*hir.AdtEnum)            {}
func (Base) VisitFlagEnum(*hir.FlagEnum)          {}
func (Base) VisitBitfield(*hir.Bitfield)          {}
func (Base) VisitConst(*hir.Const)                {}
func (Base) VisitStatic(*hir.Static)              {}
func (b Base) VisitTrait(tr *hir.Trait, funcs []hir.TraitFunction, methods []hir.TraitMethod, aliases []hir.TraitTypeAlias, consts []hir.TraitConst, props []hir.TraitProperty) {
	VisitTrait(b, tr, funcs, methods, aliases, consts, props)
}
func (b Base) VisitImpl(im *hir.Impl, funcs []hir.ImplFunction, methods []hir.ImplMethod, aliases []hir.ImplTypeAlias, consts []hir.ImplConst, statics []hir.ImplStatic, props []hir.ImplProperty) {
	VisitImpl(b, im, funcs, methods, aliases, consts, statics, props)
}
func (Base) VisitPrecedence(*hir.Precedence) {}
func (b Base) VisitExpr(e *hir.Expr)         { VisitExpr(b, e) }
func (b Base) VisitStmt(s *hir.Stmt)         { VisitStmt(b, s) }

// VisitFunction recurses into fn's body, the default body for
// Visitor.VisitFunction.
func VisitFunction(v Visitor, fn *hir.Function) {
	if fn.Body != nil {
		v.VisitExpr(fn.Body)
	}
}

// VisitTrait recurses into every method/function body contiguously owned
// by tr's index, exploiting the "contiguous associated items per parent"
// invariant (§3.4, §9): funcs/methods/... are expected to already be the
// slice restricted to this trait's contiguous run (Walk, in walk.go,
// produces that restriction from a whole Tree).
func VisitTrait(v Visitor, tr *hir.Trait, funcs []hir.TraitFunction, methods []hir.TraitMethod, aliases []hir.TraitTypeAlias, consts []hir.TraitConst, props []hir.TraitProperty) {
	for i := range funcs {
		if funcs[i].Fn.Body != nil {
			v.VisitExpr(funcs[i].Fn.Body)
		}
	}
	for i := range methods {
		if methods[i].Fn.Body != nil {
			v.VisitExpr(methods[i].Fn.Body)
		}
	}
	for i := range props {
		visitAccessorBodies(v, props[i].Get, props[i].RefGet, props[i].MutGet, props[i].Set)
	}
}

// visitAccessorBodies recurses into whichever of a property's four
// optional accessor slots are present (§4.5's "four option slots").
func visitAccessorBodies(v Visitor, accessors ...*hir.Fn) {
	for _, fn := range accessors {
		if fn != nil && fn.Body != nil {
			v.VisitExpr(fn.Body)
		}
	}
}

// VisitImpl is VisitTrait's impl-side counterpart.
func VisitImpl(v Visitor, im *hir.Impl, funcs []hir.ImplFunction, methods []hir.ImplMethod, aliases []hir.ImplTypeAlias, consts []hir.ImplConst, statics []hir.ImplStatic, props []hir.ImplProperty) {
	for i := range funcs {
		if funcs[i].Fn.Body != nil {
			v.VisitExpr(funcs[i].Fn.Body)
		}
	}
	for i := range methods {
		if methods[i].Fn.Body != nil {
			v.VisitExpr(methods[i].Fn.Body)
		}
	}
	for i := range props {
		visitAccessorBodies(v, props[i].Get, props[i].RefGet, props[i].MutGet, props[i].Set)
	}
}

// VisitExpr is the default body for Visitor.VisitExpr: recurse into every
// child expression/statement.
func VisitExpr(v Visitor, e *hir.Expr) {
	switch e.Kind {
	case hir.ExprCall:
		if e.Callee != nil {
			v.VisitExpr(e.Callee)
		}
		for _, a := range e.Args {
			v.VisitExpr(a)
		}
	case hir.ExprTuple:
		for _, el := range e.Elems {
			v.VisitExpr(el)
		}
	case hir.ExprBlock:
		for _, s := range e.Stmts {
			v.VisitStmt(s)
		}
	case hir.ExprLoop:
		if e.Body != nil {
			v.VisitExpr(e.Body)
		}
	case hir.ExprMatch:
		if e.Subject != nil {
			v.VisitExpr(e.Subject)
		}
		for _, arm := range e.Arms {
			if arm.Body != nil {
				v.VisitExpr(arm.Body)
			}
		}
	case hir.ExprAssign:
		if e.Target != nil {
			v.VisitExpr(e.Target)
		}
		if e.Value != nil {
			v.VisitExpr(e.Value)
		}
	case hir.ExprReturn, hir.ExprBreak:
		if e.Value != nil {
			v.VisitExpr(e.Value)
		}
	case hir.ExprBinary:
		if e.Left != nil {
			v.VisitExpr(e.Left)
		}
		if e.Right != nil {
			v.VisitExpr(e.Right)
		}
	case hir.ExprUnary:
		if e.Right != nil {
			v.VisitExpr(e.Right)
		}
	case hir.ExprFieldAccess, hir.ExprTupleIndex:
		if e.Base != nil {
			v.VisitExpr(e.Base)
		}
	}
}

// VisitStmt is the default body for Visitor.VisitStmt.
func VisitStmt(v Visitor, s *hir.Stmt) {
	switch s.Kind {
	case hir.StmtVarDecl:
		if s.Value != nil {
			v.VisitExpr(s.Value)
		}
	case hir.StmtUninitVarDecl:
	case hir.StmtExpr:
		if s.Expr != nil {
			v.VisitExpr(s.Expr)
		}
	}
}
