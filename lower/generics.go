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

import "github.com/xenonlang/xnc/ast"

// checkGenericPack performs no check: it accepts every generic parameter
// pack as it is and never raises EAstParamPackExpectedTypeDef or
// EAstParamPackExpectedExprDef, so a pack default of the wrong kind (a
// const expression for a type pack, or a type for a const pack) is not
// reported.
//
// This core's GenericParamPack models a single named pack rather than a
// multi-element pack list, and types and const expressions both arrive in
// Defaults as *ast.Expr with no tag distinguishing them; no step+offset
// walk over the defaults takes place.
func checkGenericPack(l *Lowerer, pack *ast.GenericParamPack) {
}
