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
	"bytes"
	"strings"
	"testing"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
)

func TestCodePrinterTypeString(t *testing.T) {
	names := intern.NewTable()
	puncts := intern.NewPunctuationTable()
	p := NewCodePrinter(&bytes.Buffer{}, names, puncts)

	i32 := names.Intern("i32")
	tup := &ast.Type{Kind: ast.TypeTuple, Elems: []*ast.Type{
		{Kind: ast.TypePath, PathSegments: []intern.ID{i32}},
		{Kind: ast.TypePath, PathSegments: []intern.ID{i32}},
	}}

	got := p.TypeString(tup)
	want := "(i32, i32)"
	if got != want {
		t.Errorf("TypeString = %q, want %q", got, want)
	}
}

func TestCodePrinterFunctionSignature(t *testing.T) {
	names := intern.NewTable()
	puncts := intern.NewPunctuationTable()
	var buf bytes.Buffer
	p := NewCodePrinter(&buf, names, puncts)

	fnName := names.Intern("add")
	aName := names.Intern("a")
	bName := names.Intern("b")
	i32 := names.Intern("i32")
	i32Type := &ast.Type{Kind: ast.TypePath, PathSegments: []intern.ID{i32}}

	p.PrintFunction(false, fnName, ast.VisPublic, ast.GenericParams{}, []ast.Param{
		{Name: aName, Type: i32Type},
		{Name: bName, Type: i32Type},
	}, false, ast.ReturnSpec{Type: i32Type}, ast.AbiXenon)

	got := strings.TrimRight(buf.String(), "\n")
	want := "pub fn add(a: i32, b: i32) -> i32"
	if got != want {
		t.Errorf("PrintFunction output = %q, want %q", got, want)
	}
}

func TestCodePrinterExternAbi(t *testing.T) {
	names := intern.NewTable()
	puncts := intern.NewPunctuationTable()
	var buf bytes.Buffer
	p := NewCodePrinter(&buf, names, puncts)

	fnName := names.Intern("puts")
	p.PrintFunction(true, fnName, ast.VisPrivate, ast.GenericParams{}, nil, false, ast.ReturnSpec{}, ast.AbiC)

	got := strings.TrimRight(buf.String(), "\n")
	want := `extern "C" fn puts()`
	if got != want {
		t.Errorf("PrintFunction output = %q, want %q", got, want)
	}
}

func TestCodePrinterNamedReturn(t *testing.T) {
	names := intern.NewTable()
	puncts := intern.NewPunctuationTable()
	var buf bytes.Buffer
	p := NewCodePrinter(&buf, names, puncts)

	fnName := names.Intern("divmod")
	qName := names.Intern("q")
	rName := names.Intern("r")
	u32 := names.Intern("u32")
	u32Type := &ast.Type{Kind: ast.TypePath, PathSegments: []intern.ID{u32}}

	p.PrintFunction(false, fnName, ast.VisPrivate, ast.GenericParams{}, nil, false, ast.ReturnSpec{
		Named: []ast.NamedReturnSlot{{Name: qName, Type: u32Type}, {Name: rName, Type: u32Type}},
	}, ast.AbiXenon)

	got := strings.TrimRight(buf.String(), "\n")
	want := "fn divmod() -> (q: u32, r: u32)"
	if got != want {
		t.Errorf("PrintFunction output = %q, want %q", got, want)
	}
}
