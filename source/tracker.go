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

package source

import "github.com/rivo/uniseg"

// Tracker walks a source buffer one grapheme cluster at a time, advancing
// byte offset, character offset, line, and column as it goes. A single
// Tracker instance is shared by a whole lexical analysis: every emitted
// token captures its Span at the Tracker's current position before
// advancing past the token's text.
//
// Columns advance by display width, the same way a terminal would: a tab
// expands to the next TabstopWidth boundary, and each grapheme cluster
// advances by its display width rather than its rune count (a letter with
// a combining accent is one column, a wide emoji two), just as
// protocompile's report.stringWidth does for diagnostic rendering.
type Tracker struct {
	file       string
	tabWidth   int
	byteOffset int
	charOffset int
	row        int
	column     int
}

// NewTracker creates a Tracker positioned at the start of file, using the
// default TabstopWidth.
func NewTracker(file string) *Tracker {
	return &Tracker{file: file, tabWidth: TabstopWidth, row: 1, column: 1}
}

// WithTabWidth overrides the tab width used for column advancement.
func (t *Tracker) WithTabWidth(w int) *Tracker {
	t.tabWidth = w
	return t
}

// Here returns a zero-length Span at the Tracker's current position.
func (t *Tracker) Here() Span {
	return Span{
		File:       t.file,
		Row:        t.row,
		Column:     t.column,
		ByteOffset: t.byteOffset,
		CharOffset: t.charOffset,
	}
}

// Advance walks past text, updating the Tracker's position, and returns a
// Span covering exactly that text starting from the position before the
// call.
func (t *Tracker) Advance(text string) Span {
	start := t.Here()

	charLen := 0
	state := -1
	rest := text
	for rest != "" {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.StepString(rest, state)
		charLen++

		switch {
		case cluster == "\r\n":
			t.row++
			t.column = 1
		case cluster == "\n" || cluster == "\r":
			t.row++
			t.column = 1
		case cluster == "\t":
			t.column += t.tabWidth - ((t.column - 1) % t.tabWidth)
		default:
			if width == 0 {
				width = 1
			}
			t.column += width
		}
	}

	t.byteOffset += len(text)
	t.charOffset += charLen

	return Span{
		File:       start.File,
		Row:        start.Row,
		Column:     start.Column,
		ByteOffset: start.ByteOffset,
		CharOffset: start.CharOffset,
		ByteLen:    len(text),
		CharLen:    charLen,
	}
}
