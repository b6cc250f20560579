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

package token

import "github.com/xenonlang/xnc/report"

// bomEncoding names one non-UTF-8 byte-order-mark this front end rejects,
// paired with the byte prefix that identifies it and the number of bytes to
// blame the diagnostic on.
type bomEncoding struct {
	prefix []byte
	name   string
}

// rejectedBOMs is checked in order; only the first matching prefix fires.
var rejectedBOMs = []bomEncoding{
	{[]byte{0xFE, 0xFF}, "utf-16 (be)"},
	{[]byte{0xFF, 0xFE, 0x00, 0x00}, "utf-32 (le)"},
	{[]byte{0xFF, 0xFE}, "utf-16 (le)"},
	{[]byte{0x00, 0x00, 0xFE, 0xFF}, "utf-32 (be)"},
	{[]byte{0x2B, 0x2F, 0x76}, "utf-7"},
	{[]byte{0xF7, 0x64, 0x4C}, "utf-1"},
	{[]byte{0xDD, 0x73, 0x66, 0x73}, "utf-ebcdic"},
	{[]byte{0x0E, 0xFE, 0xFF}, "scsu"},
	{[]byte{0xFB, 0xEE, 0x28}, "bocu-1"},
	{[]byte{0x84, 0x31, 0x95, 0x33}, "gb18030"},
}

const utf8BOM = "\xEF\xBB\xBF"

// lexBOM consumes a leading UTF-8 BOM if present, or records an error and
// consumes the offending prefix if the file opens with a BOM for any other
// encoding. Byte-order marks for encodings other than UTF-8 can never be
// followed by valid source text, so this check runs before anything else.
func (l *Lexer) lexBOM() {
	if len(l.cursor) >= 3 && l.cursor[:3] == utf8BOM {
		l.store.HasBOM = true
		l.consume(utf8BOM)
		return
	}

	bytes := []byte(l.cursor)
	for _, enc := range rejectedBOMs {
		if len(bytes) >= len(enc.prefix) && string(bytes[:len(enc.prefix)]) == string(enc.prefix) {
			sp := l.spanFor(l.cursor[:len(enc.prefix)])
			l.errorAt(sp, report.ELexInvalidBOM, "source file starts with a %s byte-order mark, which is not supported", enc.name)
			return
		}
	}
}

// lexShebang consumes a leading `#!...` line, recording its text (without
// the `#!` marker or trailing newline) on the Store.
func (l *Lexer) lexShebang() {
	if len(l.cursor) < 2 || l.cursor[:2] != "#!" {
		return
	}

	end := findNextNewline(l.cursor)
	if end < 0 {
		end = len(l.cursor)
	}
	stop := end
	if stop > 2 && l.cursor[stop-1] == '\r' {
		stop--
	}
	shebang := l.cursor[2:stop]

	consumeLen := end
	if consumeLen < len(l.cursor) {
		consumeLen++ // also eat the newline itself
	}
	l.consume(l.cursor[:consumeLen])
	l.store.Shebang = shebang
}
