// Copyright 2020-2024 Buf Technologies, Inc.
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

// Package source implements the span registry shared by every pass: a
// single counter walks bytes, characters, lines, and columns of a source
// buffer, and every downstream artifact (token, AST node, HIR item) refers
// to a location through a small interned SpanId rather than owning its own
// copy of the position.
package source

import "fmt"

// TabstopWidth is the default width a tab character expands a column by.
const TabstopWidth = 4

// Id is an interned handle into a Registry.
type Id int32

// NoSpan is the sentinel for "no span known".
const NoSpan Id = -1

// Span is the full position record for one Id: row/column (1-indexed),
// byte and character offsets (0-indexed), and byte/character lengths.
type Span struct {
	File       string
	Row        int
	Column     int
	ByteOffset int
	CharOffset int
	ByteLen    int
	CharLen    int
}

// String renders a span as "file:row:column".
func (s Span) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Row, s.Column)
}

// End returns a zero-length span at the byte and character offsets
// immediately after s. Its row and column are those of s itself (see
// endRowColumn).
func (s Span) End() Span {
	e := s
	e.Row, e.Column = s.endRowColumn()
	e.ByteOffset += s.ByteLen
	e.CharOffset += s.CharLen
	e.ByteLen, e.CharLen = 0, 0
	return e
}

func (s Span) endRowColumn() (int, int) {
	// A Span does not carry its text, so the row and column after it are
	// not derived here: single-line and multi-line spans alike keep their
	// start row/column. Callers that need exact end positions re-derive
	// them from the Tracker.
	return s.Row, s.Column
}

// Registry interns Spans and hands back stable Ids for them.
type Registry struct {
	spans []Span
}

// NewRegistry creates an empty span registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add interns a new span, returning its Id.
func (r *Registry) Add(s Span) Id {
	r.spans = append(r.spans, s)
	return Id(len(r.spans) - 1)
}

// Get looks up a previously interned span. Panics if id is out of range;
// callers are expected to only ever pass back Ids this Registry produced.
func (r *Registry) Get(id Id) Span {
	return r.spans[id]
}

// Join returns the smallest span covering both a and b, which must name the
// same file.
func (r *Registry) Join(a, b Id) Id {
	sa, sb := r.Get(a), r.Get(b)
	if sb.ByteOffset < sa.ByteOffset {
		sa, sb = sb, sa
	}
	joined := sa
	end := sb.ByteOffset + sb.ByteLen - sa.ByteOffset
	joined.ByteLen = end
	joined.CharLen = sb.CharOffset + sb.CharLen - sa.CharOffset
	return r.Add(joined)
}
