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

package resolve

import (
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/report"
)

// CheckAmbiguity walks every scope of t and reports E-AstUseAmbiguity once
// per (scope, name) pair introduced by two or more non-wildcard uses that
// don't alias their way out of the collision (§4.9, grounded on
// common/uses.rs's own depth-first ambiguity pass, §13). Wildcard uses
// never collide with each other or with direct uses: only the direct
// (possibly aliased) introductions of a name are checked.
func (t *RootUseTable) CheckAmbiguity(names *intern.Table, rep *report.Report) {
	t.Walk(func(scope ast.Scope, n *useNode) {
		byName := make(map[intern.ID][]UsePath)
		for _, u := range n.direct {
			name := u.EffectiveName()
			byName[name] = append(byName[name], u)
		}
		for name, uses := range byName {
			if len(uses) < 2 {
				continue
			}
			rep.Error(report.EAstUseAmbiguity, uses[1].Span,
				"%q is ambiguous in %q: introduced by more than one use",
				names.Text(name), scope.String(names))
		}
	})
}
