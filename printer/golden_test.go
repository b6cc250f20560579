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

	"gopkg.in/yaml.v3"

	"github.com/xenonlang/xnc/ast"
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/internal/goldentest"
)

// funcCase is a YAML-described function signature fixture (grounded on
// protocompile's ast/printer test cases, which likewise describe each
// testcase as YAML rather than hand-built Go literals).
type funcCase struct {
	Name   string `yaml:"name"`
	Vis    string `yaml:"vis"`
	Extern bool   `yaml:"extern"`
	Abi    string `yaml:"abi"`
	Params []struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
	} `yaml:"params"`
	Return string `yaml:"return"`
}

func TestCodePrinterGolden(t *testing.T) {
	goldentest.Corpus{
		Root:       "testdata/golden",
		Extensions: []string{"yaml"},
		Render: func(t *testing.T, path, text string) string {
			var c funcCase
			if err := yaml.Unmarshal([]byte(text), &c); err != nil {
				t.Fatalf("parsing %q: %v", path, err)
			}

			names := intern.NewTable()
			puncts := intern.NewPunctuationTable()
			var buf bytes.Buffer
			p := NewCodePrinter(&buf, names, puncts)

			vis := ast.VisPrivate
			if c.Vis == "pub" {
				vis = ast.VisPublic
			}
			abi := ast.AbiXenon
			if c.Abi == "C" {
				abi = ast.AbiC
			}

			var params []ast.Param
			for _, pc := range c.Params {
				params = append(params, ast.Param{
					Name: names.Intern(pc.Name),
					Type: &ast.Type{Kind: ast.TypePath, PathSegments: []intern.ID{names.Intern(pc.Type)}},
				})
			}

			var ret ast.ReturnSpec
			if c.Return != "" {
				ret.Type = &ast.Type{Kind: ast.TypePath, PathSegments: []intern.ID{names.Intern(c.Return)}}
			}

			p.PrintFunction(c.Extern, names.Intern(c.Name), vis, ast.GenericParams{}, params, false, ret, abi)

			return strings.TrimRight(buf.String(), "\n")
		},
	}.Run(t)
}
