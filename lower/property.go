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

// lowerAssocFnOrNil is lowerAssocFn, nil-safe for a property accessor slot
// that wasn't declared.
func lowerAssocFnOrNil(l *Lowerer, fn *ast.Fn) *hir.Fn {
	if fn == nil {
		return nil
	}
	lowered := lowerAssocFn(l, fn)
	return &lowered
}

// lowerProperty splits a `property` item's four accessor slots (§4.5.2
// "Properties / getters / setters") into a hir.TraitProperty (isTrait, the
// trait-side declaration, accessor bodies optional) or hir.ImplProperty
// (the impl-side concrete definition, accessor bodies always present).
func lowerProperty(l *Lowerer, owner int, item *ast.Item, isTrait bool) {
	get := lowerAssocFnOrNil(l, item.PropertyGet)
	refGet := lowerAssocFnOrNil(l, item.PropertyRefGet)
	mutGet := lowerAssocFnOrNil(l, item.PropertyMutGet)
	set := lowerAssocFnOrNil(l, item.PropertySet)

	if isTrait {
		l.Tree.TraitProperties = append(l.Tree.TraitProperties, hir.TraitProperty{
			Owner: owner, Context: l.hirContext(item.NodeID()), Name: item.Name, Type: item.Type,
			Get: get, RefGet: refGet, MutGet: mutGet, Set: set,
		})
		return
	}
	l.Tree.ImplProperties = append(l.Tree.ImplProperties, hir.ImplProperty{
		Owner: owner, Context: l.hirContext(item.NodeID()), Name: item.Name, Type: item.Type,
		Get: get, RefGet: refGet, MutGet: mutGet, Set: set,
	})
}
