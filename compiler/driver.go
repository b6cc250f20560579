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

package compiler

import (
	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/lower"
	"github.com/xenonlang/xnc/report"
	"github.com/xenonlang/xnc/resolve"
	"github.com/xenonlang/xnc/token"
	"github.com/xenonlang/xnc/typegen"
)

// Pass names a pipeline stage declares itself under (§4.6's "a pass
// declares Pass::NAME"), used only for logging/diagnostics grouping —
// nothing branches on these strings.
type Pass string

const (
	PassLex        Pass = "lex"
	PassModulePath Pass = "module_path"
	PassSymbolGen  Pass = "symbol_gen"
	PassLowering   Pass = "lowering"
	PassTypeGen    Pass = "type_gen"
	PassUseResolve Pass = "use_resolve"
)

// Unit is one file's worth of pipeline input: its already-parsed top-level
// items (parsing itself is out of scope for this core, §1's Non-goals) and
// the raw source text, which the driver still lexes on its own so the
// token-stream debug surfaces (§6.3) have something to print regardless of
// what tree the caller's parser built.
type Unit struct {
	File  string
	Src   string
	Items []*ast.Item
}

// Result is everything a completed compilation unit produced: the tree
// every later pass reads from, plus the token stream the lexer pass
// produced independently of it.
type Result struct {
	Tree   *hir.Tree
	Tokens *token.Store
}

// CompileUnit runs the full pipeline (§2, §5) over one file in sequence:
// lex, AST context setup, module path resolution for any out-of-line `mod`
// items it declares, symbol generation, AST→HIR lowering, item-level type
// generation, and use-table aggregation. Every stage runs to completion
// even after a stage records errors (§7's accumulate-and-continue model);
// callers check pc.Report.HasErrors() once the whole unit has gone
// through rather than after each stage.
//
// dir is the filesystem directory u.File resolves relative paths from,
// and fsys backs the existence checks §4.4's module path resolution
// performs; pass resolve.MapFS{} when the caller has no real module tree
// to check against (a single free-standing file has no submodules to
// locate).
func CompileUnit(pc *PassContext, fsys resolve.FS, dir string, u Unit) *Result {
	tokens := token.Lex(u.File, u.Src, pc.Names, pc.Puncts, pc.Literals, pc.Spans, pc.Report)

	resolveModulePaths(pc, fsys, dir, u.Items)

	root := ast.Scope{}
	resolve.GenerateSymbols(pc.Ctx, pc.Syms, root, u.Items, pc.Report)

	l := lower.New(pc.Names, pc.Literals, pc.Spans, pc.Ids, pc.Ctx, pc.Report)
	lower.LowerItems(l, root, u.Items)

	typegen.GenerateTypes(l.Tree, pc.TypeReg)

	aggregateUses(pc.Uses, root, u.Items)
	pc.Uses.CheckAmbiguity(pc.Names, pc.Report)

	return &Result{Tree: l.Tree, Tokens: tokens}
}

// resolveModulePaths walks items depth-first, confirming on disk that
// every out-of-line `mod name;` declaration names a real file (§4.4) and
// recording the result in pc.Ctx. It does not parse the file it finds:
// turning that file's own text into items is the caller's job (feed the
// result back in as a further Unit), since this core has no parser of its
// own to do it with.
func resolveModulePaths(pc *PassContext, fsys resolve.FS, dir string, items []*ast.Item) {
	for _, item := range items {
		if item.Kind != ast.ItemModule || item.Module == nil {
			continue
		}
		mod := item.Module
		if mod.Body {
			resolveModulePaths(pc, fsys, dir, mod.Items)
			continue
		}
		data := pc.Ctx.Module(item.NodeID())
		mp, err := resolve.ResolveModulePath(fsys, dir, pc.Names.Text(mod.Name), data.Path, false)
		if err != nil {
			pc.Report.Error(report.EAstInvalidModulePath, item.NodeSpan(), "%s", err.Error())
			continue
		}
		data.Path = &ast.FsPath{mp.FsFile}
	}
}

// aggregateUses is the use-table aggregation pass (§4.9): it walks the
// same item tree symbol generation just walked, this time pulling out
// exactly the ItemUse entries symbol generation skipped, and files each
// UseTree leaf into t under the scope it was declared in.
//
// OpUses and PrecedenceUses are left empty here: this core's `use` surface
// syntax carries no marker distinguishing "this leaf names an operator
// trait or a precedence declaration" from an ordinary item use — that can
// only be known once the leaf's target symbol is looked up, which in turn
// requires symbol generation to have already finished for every module in
// the compilation, not just this one. A driver that needs operator-use
// resolution classifies Direct/Wildcards results against pc.Syms after
// every unit in the compilation has run this pass, rather than during it.
func aggregateUses(t *resolve.RootUseTable, scope ast.Scope, items []*ast.Item) {
	for _, item := range items {
		switch item.Kind {
		case ast.ItemModule:
			if item.Module == nil {
				continue
			}
			child := scope.Child(ast.ScopeSegment{Name: item.Module.Name, Kind: ast.SegmentModule})
			aggregateUses(t, child, item.Module.Items)
		case ast.ItemUse:
			for _, leaf := range item.Uses {
				t.Add(scope, useTreeToPath(item, leaf))
			}
		}
	}
}

func useTreeToPath(item *ast.Item, leaf ast.UseTree) resolve.UsePath {
	path := make([]intern.ID, 0, len(leaf.Path))
	wildcard := leaf.SelfWildcard
	for _, seg := range leaf.Path {
		if seg.Wildcard {
			wildcard = true
			continue
		}
		path = append(path, seg.Name)
	}
	return resolve.UsePath{
		Path:     path,
		Wildcard: wildcard,
		Alias:    leaf.Alias,
		HasAlias: leaf.HasAlias,
		Node:     item.NodeID(),
		Span:     item.NodeSpan(),
	}
}
