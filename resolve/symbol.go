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

// Package resolve implements the module path resolver, the symbol
// generation pass, and the use-table/operator-use aggregation and
// ambiguity check (§3.5, §4.4, §4.7, §4.9). It is the one package allowed
// to depend on ast in order to walk and annotate its tree; ast itself
// never imports resolve.
package resolve

import (
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
)

// StructKind/StaticKind distinguish the sub-shapes §3.5 folds into a
// single Symbol tag rather than a family of subtypes (struct vs tuple
// struct vs unit struct; static vs tls static vs extern static).
type StructKind uint8

const (
	StructPlain StructKind = iota
	StructTuple
	StructUnit
)

type StaticKind uint8

const (
	StaticPlain StaticKind = iota
	StaticTls
	StaticExtern
)

// Kind is the full symbol-kind tag from §3.5.
type Kind uint8

const (
	KindModule Kind = iota
	KindFunction
	KindTypeAlias
	KindDistinctType
	KindOpaqueType
	KindStruct
	KindUnion
	KindAdtEnum
	KindFlagEnum
	KindBitfield
	KindConst
	KindStatic
	KindTrait
	KindImpl
	KindProperty
	KindPrecedence
)

// Symbol is one entry in a RootSymbolTable.
type Symbol struct {
	Kind       Kind
	Name       intern.ID
	Scope      ast.Scope
	Node       ast.NodeId
	StructKind StructKind
	StaticKind StaticKind
}

// ImplName synthesizes the symbol name for an impl block (§9 "the symbol
// name for an impl block is unresolved in the source"): the fully
// qualified target type path, and, when present, the implemented trait
// path, joined the way a qualified method lookup would need
// (`Target::Trait`). When there is no trait (an inherent impl), the name
// is just the target's path.
func ImplName(names *intern.Table, target string, trait string) string {
	if trait == "" {
		return target
	}
	return target + "::" + trait
}
