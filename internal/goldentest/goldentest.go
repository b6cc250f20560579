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

// Package goldentest provides a small framework for file-based golden
// tests, grounded on protocompile's internal/golden: a [Corpus] walks a
// testdata directory for input fixtures and compares each one's rendered
// output against an on-disk `.want` file, printing a unified diff on
// mismatch.
//
// Unlike the teacher's version this core has no refresh-via-environment-
// variable mode and no parallel subtests — a bootstrap compiler's test
// corpus is small enough that neither is worth the complexity.
package goldentest

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a golden test corpus: every file under Root ending in
// one of Extensions is a fixture; Render produces that fixture's actual
// output, which is compared against the sibling file named
// fixture+".want".
type Corpus struct {
	Root       string
	Extensions []string
	Render     func(t *testing.T, path, text string) string
}

// Run executes every fixture in the corpus as its own subtest.
func (c Corpus) Run(t *testing.T) {
	t.Helper()

	var fixtures []string
	err := filepath.Walk(c.Root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		for _, ext := range c.Extensions {
			if strings.HasSuffix(p, "."+ext) {
				fixtures = append(fixtures, p)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("goldentest: walking %q: %v", c.Root, err)
	}
	sort.Strings(fixtures)

	for _, path := range fixtures {
		path := path
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("goldentest: reading %q: %v", path, err)
			}

			got := c.Render(t, path, string(text))

			wantPath := path + ".want"
			want, err := os.ReadFile(wantPath)
			if err != nil && !os.IsNotExist(err) {
				t.Fatalf("goldentest: reading %q: %v", wantPath, err)
			}

			if diff := CompareAndDiff(got, string(want)); diff != "" {
				t.Errorf("output for %q does not match %q:\n%s", path, wantPath, diff)
			}
		})
	}
}

// CompareAndDiff returns a unified diff between got and want, or the empty
// string if they're equal.
func CompareAndDiff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
