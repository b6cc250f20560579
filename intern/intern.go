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

// Package intern provides the injective string-interning tables shared by
// the whole front-end: names and custom punctuation text both need a cheap,
// comparable handle with stable identity for the lifetime of a compilation.
package intern

// ID is a handle into a Table. The zero value corresponds to the first
// string interned into a fresh Table; callers that need a sentinel "no ID"
// value should use a separate optional wrapper, mirroring how the rest of
// the front-end treats absence.
type ID int32

// Table is an injective mapping from string text to a small integer ID.
// Interning the same text twice returns the same ID. A zero Table is empty
// and ready to use.
//
// Unlike protocompile's internal/intern.Table, this does not attempt to
// inline short strings into the ID bits (see DESIGN.md): the front-end's
// working set of names and literals is orders of magnitude smaller than a
// descriptor pool assembled from an entire build graph, so the complexity
// of a char6 bit-packing scheme buys nothing here.
type Table struct {
	strings []string
	ids     map[string]ID
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{ids: make(map[string]ID)}
}

// Intern returns the ID for s, adding it to the table if this is the first
// time s has been seen.
func (t *Table) Intern(s string) ID {
	if id, ok := t.ids[s]; ok {
		return id
	}
	if t.ids == nil {
		t.ids = make(map[string]ID)
	}
	id := ID(len(t.strings))
	t.strings = append(t.strings, s)
	t.ids[s] = id
	return id
}

// Lookup returns the ID previously assigned to s, and whether s has been
// interned at all.
func (t *Table) Lookup(s string) (ID, bool) {
	id, ok := t.ids[s]
	return id, ok
}

// Text returns the text that was interned as id. Panics if id was never
// produced by this table.
func (t *Table) Text(id ID) string {
	return t.strings[id]
}

// Len returns the number of distinct strings interned so far.
func (t *Table) Len() int {
	return len(t.strings)
}
