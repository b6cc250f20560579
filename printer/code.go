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

package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/hir"
	"github.com/xenonlang/xnc/intern"
)

// CodePrinter renders a Type or a function signature back into
// xenon-shaped source text. It is a best-effort reconstruction from HIR,
// not a byte-accurate one (§1 carves exact formatting out of scope): it
// exists so a function's shape is readable in a dump without the reader
// having to decode intern IDs by hand, grounded on bootstrap/src/hir/
// code_printer.rs's CodePrinter, trimmed to the surface forms this core's
// HIR still carries (no attributes, no patterns beyond a bare name).
type CodePrinter struct {
	w      io.Writer
	names  *intern.Table
	puncts *intern.PunctuationTable
}

// NewCodePrinter returns a printer writing to w.
func NewCodePrinter(w io.Writer, names *intern.Table, puncts *intern.PunctuationTable) *CodePrinter {
	return &CodePrinter{w: w, names: names, puncts: puncts}
}

func (p *CodePrinter) name(id intern.ID) string { return p.names.Text(id) }

// PrintFunction writes fn's signature, e.g. `pub extern "C" fn add(a: i32,
// b: i32) -> i32`. isExtern marks a body-less declaration (the
// ExternFunctionsNoBody collection); abi is shown only when it departs
// from the xenon default, matching §4.5.3's "AbiXenon is the default"
// convention — an fn with an explicit `extern "xenon"` looks the same as
// one with no ABI literal at all once lowered.
func (p *CodePrinter) PrintFunction(isExtern bool, name intern.ID, vis ast.Visibility, generics ast.GenericParams, params []ast.Param, hasSelf bool, ret ast.ReturnSpec, abi ast.Abi) {
	var b strings.Builder
	if vis == ast.VisPublic {
		b.WriteString("pub ")
	}
	if isExtern {
		b.WriteString("extern ")
	}
	if abi != ast.AbiXenon {
		fmt.Fprintf(&b, "%q ", abiLiteral(abi))
	}
	b.WriteString("fn ")
	b.WriteString(p.name(name))
	p.writeGenerics(&b, generics)
	b.WriteByte('(')
	first := true
	if hasSelf {
		b.WriteString("self")
		first = false
	}
	for _, param := range params {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(p.name(param.Name))
		b.WriteString(": ")
		p.writeType(&b, param.Type)
		if param.Default != nil {
			b.WriteString(" = <expr>")
		}
	}
	b.WriteByte(')')
	p.writeReturn(&b, ret)
	fmt.Fprintln(p.w, b.String())
}

func abiLiteral(abi ast.Abi) string {
	switch abi {
	case ast.AbiC:
		return "C"
	case ast.AbiContextless:
		return "contextless"
	default:
		return "xenon"
	}
}

func (p *CodePrinter) writeGenerics(b *strings.Builder, g ast.GenericParams) {
	if len(g.TypeParams) == 0 && len(g.ConstParams) == 0 && g.Pack == nil {
		return
	}
	b.WriteByte('<')
	first := true
	for _, t := range g.TypeParams {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(p.name(t))
	}
	for _, c := range g.ConstParams {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString("const ")
		b.WriteString(p.name(c))
	}
	if g.Pack != nil {
		if !first {
			b.WriteString(", ")
		}
		b.WriteString(p.name(g.Pack.Name))
		b.WriteString("...")
	}
	b.WriteByte('>')
}

func (p *CodePrinter) writeReturn(b *strings.Builder, ret ast.ReturnSpec) {
	if ret.IsNamed() {
		b.WriteString(" -> (")
		for i, slot := range ret.Named {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.name(slot.Name))
			b.WriteString(": ")
			p.writeType(b, slot.Type)
		}
		b.WriteByte(')')
		return
	}
	if ret.Type == nil {
		return
	}
	b.WriteString(" -> ")
	p.writeType(b, ret.Type)
}

// TypeString renders t as xenon-shaped source text.
func (p *CodePrinter) TypeString(t *ast.Type) string {
	var b strings.Builder
	p.writeType(&b, t)
	return b.String()
}

func (p *CodePrinter) writeType(b *strings.Builder, t *ast.Type) {
	if t == nil {
		b.WriteString("_")
		return
	}
	switch t.Kind {
	case ast.TypePath:
		for i, seg := range t.PathSegments {
			if i != 0 {
				b.WriteString("::")
			}
			b.WriteString(p.name(seg))
		}
	case ast.TypeTuple:
		b.WriteByte('(')
		for i, e := range t.Elems {
			if i != 0 {
				b.WriteString(", ")
			}
			p.writeType(b, e)
		}
		b.WriteByte(')')
	case ast.TypeRecord:
		b.WriteString("record { ")
		for i, f := range t.Fields {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.name(f.Name))
			b.WriteString(": ")
			p.writeType(b, f.Type)
		}
		b.WriteString(" }")
	case ast.TypeFn:
		b.WriteString("fn(")
		for i, e := range t.Elems {
			if i != 0 {
				b.WriteString(", ")
			}
			p.writeType(b, e)
		}
		b.WriteByte(')')
		if t.Return != nil {
			b.WriteString(" -> ")
			p.writeType(b, t.Return)
		}
	default:
		b.WriteString("?")
	}
}

// PrintTree writes one signature line per function in tree (bodied ones,
// then extern declarations), then each impl as an `impl Target` header
// line, one signature line per associated function and method, and a
// closing `}` line.
func (p *CodePrinter) PrintTree(tree *hir.Tree) {
	for i := range tree.Functions {
		f := &tree.Functions[i]
		p.PrintFunction(false, f.Name, f.Vis, f.Generics, f.Params, f.HasSelf, f.Return, f.Abi)
	}
	for i := range tree.ExternFunctionsNoBody {
		f := &tree.ExternFunctionsNoBody[i]
		p.PrintFunction(true, f.Name, f.Vis, f.Generics, f.Params, f.HasSelf, f.Return, f.Abi)
	}
	for i := range tree.Impls {
		im := &tree.Impls[i]
		fmt.Fprintf(p.w, "impl %s", p.TypeString(im.Target))
		if im.TraitRef != nil {
			fmt.Fprintf(p.w, " : %s", p.TypeString(im.TraitRef))
		}
		fmt.Fprintln(p.w, " {")
		for j := range tree.ImplFunctions {
			if tree.ImplFunctions[j].Owner != i {
				continue
			}
			fn := tree.ImplFunctions[j].Fn
			p.PrintFunction(false, fn.Name, fn.Vis, fn.Generics, fn.Params, fn.HasSelf, fn.Return, fn.Abi)
		}
		for j := range tree.ImplMethods {
			if tree.ImplMethods[j].Owner != i {
				continue
			}
			fn := tree.ImplMethods[j].Fn
			p.PrintFunction(false, fn.Name, fn.Vis, fn.Generics, fn.Params, fn.HasSelf, fn.Return, fn.Abi)
		}
		fmt.Fprintln(p.w, "}")
	}
}
