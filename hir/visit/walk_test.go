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

package visit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xenonlang/xnc/hir"
	"github.com/xenonlang/xnc/hir/visit"
)

type countingVisitor struct {
	visit.Base
	functions int
	exprs     int
}

func (c *countingVisitor) VisitFunction(fn *hir.Function) {
	c.functions++
	visit.VisitFunction(c, fn)
}

func (c *countingVisitor) VisitExpr(e *hir.Expr) {
	c.exprs++
	visit.VisitExpr(c, e)
}

// VisitStmt must be overridden too, not inherited from visit.Base:
// Base's own promoted methods recurse through the embedded Base{} value
// itself, not through c, so without this override the walk below the
// first statement boundary would silently stop being counted.
func (c *countingVisitor) VisitStmt(s *hir.Stmt) {
	visit.VisitStmt(c, s)
}

func TestWalkFunctionsRecursesIntoBody(t *testing.T) {
	tree := hir.NewTree()
	tree.Functions = append(tree.Functions, hir.Function{
		Body: &hir.Expr{
			Kind: hir.ExprBlock,
			Stmts: []*hir.Stmt{
				{Kind: hir.StmtExpr, Expr: &hir.Expr{Kind: hir.ExprLiteral}},
			},
		},
	})

	cv := &countingVisitor{}
	visit.Walk(tree, visit.FlagFunctions, cv)

	require.Equal(t, 1, cv.functions)
	require.Equal(t, 2, cv.exprs) // the block, then the literal inside it
}

func TestWalkTraitContiguity(t *testing.T) {
	tree := hir.NewTree()
	tree.Traits = append(tree.Traits, hir.Trait{}, hir.Trait{})
	tree.TraitFunctions = append(tree.TraitFunctions,
		hir.TraitFunction{Owner: 0},
		hir.TraitFunction{Owner: 0},
		hir.TraitFunction{Owner: 1},
	)

	var sawOwners []int
	cv := &recordingVisitor{}
	visit.Walk(tree, visit.FlagTraits, cv)
	sawOwners = cv.counts
	require.Equal(t, []int{2, 1}, sawOwners)
}

type recordingVisitor struct {
	visit.Base
	counts []int
}

func (r *recordingVisitor) VisitTrait(tr *hir.Trait, funcs []hir.TraitFunction, methods []hir.TraitMethod, aliases []hir.TraitTypeAlias, consts []hir.TraitConst, props []hir.TraitProperty) {
	r.counts = append(r.counts, len(funcs))
}
