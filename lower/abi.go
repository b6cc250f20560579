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
	"github.com/xenonlang/xnc/report"
)

// lowerAbi resolves fn's raw ABI literal text to its parsed Abi, reporting
// InvalidAbiLiteral and defaulting to AbiXenon when the literal isn't one of
// the three accepted strings (§4.5.3). A function with no ABI literal at
// all gets AbiXenon silently — that's the ordinary, not the error, case.
func lowerAbi(l *Lowerer, fn *ast.Fn) ast.Abi {
	if !fn.HasAbi {
		return ast.AbiXenon
	}
	abi, ok := ast.ParseAbi(fn.AbiLiteral)
	if !ok {
		l.Report.Error(report.EAstInvalidAbiLiteral, fn.NodeSpan(),
			"unknown ABI literal %q, expected \"C\", \"contextless\", or \"xenon\"", fn.AbiLiteral)
	}
	return abi
}
