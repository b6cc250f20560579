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
)

func TestIndentLoggerTree(t *testing.T) {
	var buf bytes.Buffer
	log := NewIndentLogger(&buf)

	log.LogIndented("root", func() {
		log.Logln("child-a")
		log.SetLastAtIndent()
		log.LogIndented("child-b", func() {
			log.SetLastAtIndent()
			log.Logln("grandchild")
		})
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"root",
		"|-- child-a",
		"+-- child-b",
		"    +-- grandchild",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLogSliceIndentedEmpty(t *testing.T) {
	var buf bytes.Buffer
	log := NewIndentLogger(&buf)
	LogSliceIndented(log, "empty", []int(nil), func(i int, elem int) {
		t.Fatalf("should not be called for an empty slice")
	})
	if buf.Len() != 0 {
		t.Errorf("expected no output for an empty slice, got %q", buf.String())
	}
}

func TestLogSliceIndentedMarksLastElement(t *testing.T) {
	var buf bytes.Buffer
	log := NewIndentLogger(&buf)
	LogSliceIndented(log, "items", []string{"x", "y", "z"}, func(i int, elem string) {
		log.Logln(elem)
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"items",
		"|-- x",
		"|-- y",
		"+-- z",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
