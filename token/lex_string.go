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

import (
	"strings"
	"unicode/utf8"

	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/report"
)

// horizontalWhitespace is the set of characters a multi-line string literal
// may skip past when resuming after a line-continuation backslash.
func isHorizontalWhitespace(ch byte) bool { return ch == ' ' || ch == '\t' }

func (l *Lexer) lexCharLit() {
	if len(l.cursor) <= 3 {
		l.errorHere(report.ELexTruncatedChar, l.cursor, "unterminated character literal")
		return
	}

	if l.cursor[1] != '\\' {
		ch, size := utf8.DecodeRuneInString(l.cursor[1:])
		text := l.cursor[:1+size+1]
		sp := l.spanFor(text)
		id := l.literals.Add(intern.Literal{Kind: intern.LiteralChar, Char: ch})
		l.push(Token{Kind: KindLiteral, Literal: id}, sp)
		return
	}

	ch, n, ok := l.lexCharEscape(l.cursor[2:])
	if !ok {
		// Error already recorded by lexCharEscape; still consume something
		// so the lexer makes progress.
		l.errorHere(report.ELexInvalidEscape, l.cursor[:3], "invalid escape in character literal")
		return
	}
	total := 2 + n
	if total >= len(l.cursor) || l.cursor[total] != '\'' {
		l.errorHere(report.ELexTruncatedChar, l.cursor, "unterminated character literal")
		return
	}
	text := l.cursor[:total+1]
	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{Kind: intern.LiteralChar, Char: ch})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}

// lexCharEscape decodes a single escape sequence starting right after the
// backslash in rest, returning the decoded rune and the number of bytes of
// rest it consumed.
func (l *Lexer) lexCharEscape(rest string) (rune, int, bool) {
	if rest == "" {
		return 0, 0, false
	}
	switch rest[0] {
	case '0':
		return '\x00', 1, true
	case 't':
		return '\t', 1, true
	case 'n':
		return '\n', 1, true
	case 'r':
		return '\r', 1, true
	case '"':
		return '"', 1, true
	case '\'':
		return '\'', 1, true
	case '\\':
		return '\\', 1, true
	case 'x':
		if len(rest) < 3 {
			return 0, 0, false
		}
		hi, err1 := lexDigit(rest[1], digitHex)
		lo, err2 := lexDigit(rest[2], digitHex)
		if err1 != nil || err2 != nil {
			l.errorHere(report.ELexInvalidHexInChar, rest[:3], "invalid hex digit in \\x escape")
			return 0, 0, false
		}
		return rune(hi<<4 | lo), 3, true
	case 'u':
		if len(rest) < 2 || rest[1] != '{' {
			l.errorHere(report.ELexInvalidUnicodeEscape, rest[:min(len(rest), 2)], "expected '{' after \\u")
			return 0, 0, false
		}
		end := strings.IndexByte(rest[2:], '}')
		if end < 0 {
			return 0, 0, false
		}
		end += 2
		if end-2 == 0 || end-2 > 6 {
			l.errorHere(report.ELexInvalidUnicodeEscape, rest[:end+1], "\\u{...} must contain 1-6 hex digits")
			return 0, 0, false
		}
		var code uint32
		for i := 2; i < end; i++ {
			d, err := lexDigit(rest[i], digitHex)
			if err != nil {
				l.errorHere(report.ELexInvalidUnicodeEscape, rest[:end+1], "invalid hex digit in \\u{...}")
				return 0, 0, false
			}
			code = code<<4 | uint32(d)
		}
		if code > 0x10FFFF {
			l.errorHere(report.ELexInvalidUnicodeCodepoint, rest[:end+1], "codepoint out of range")
			return 0, 0, false
		}
		return rune(code), end + 1, true
	default:
		l.errorHere(report.ELexInvalidEscape, rest[:1], "unrecognized escape sequence")
		return 0, 0, false
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// lexStringLit handles a double-quoted string, including the line-
// continuation rule: a line ending in an unescaped backslash joins with the
// next line, with any leading horizontal whitespace on that next line
// skipped.
func (l *Lexer) lexStringLit() {
	rest := l.cursor[1:]
	end := 1
	var content strings.Builder

	for {
		next := strings.IndexAny(rest, "\"\n")
		if next < 0 {
			l.errorHere(report.ELexTruncatedString, l.cursor, "unterminated string literal")
			return
		}
		end += next + 1

		if content.Len() != 0 {
			start := 0
			for start < len(rest) && isHorizontalWhitespace(rest[start]) {
				start++
			}
			rest = rest[start:]
			next -= start
		}

		if next < len(rest) && rest[next] == '\n' {
			if next == 0 || rest[next-1] != '\\' {
				l.errorHere(report.ELexTruncatedString, l.cursor, "string literal has no continuation backslash before newline")
				return
			}
			content.WriteString(rest[:next-1])
		} else if next < 2 || rest[next-1] != '\\' {
			content.WriteString(rest[:next])
			break
		} else {
			content.WriteString(rest[:next])
		}
		rest = rest[next+1:]
	}

	text := l.cursor[:end]
	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{Kind: intern.LiteralString, Str: content.String()})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}

// lexRawStringLit handles `r#...#"..."#...#` with a matching number of
// hashes on each side and no escape processing at all.
func (l *Lexer) lexRawStringLit() {
	numHashes := 0
	for numHashes+1 < len(l.cursor) && l.cursor[1+numHashes] == '#' {
		numHashes++
	}

	if len(l.cursor) < 2*numHashes+2 || l.cursor[numHashes+1] != '"' {
		l.errorHere(report.ELexTruncatedRawString, l.cursor, "invalid raw string opening delimiter")
		return
	}

	start := numHashes + 2
	body := l.cursor[start:]
	ending := "\"" + strings.Repeat("#", numHashes)
	end := strings.Index(body, ending)
	if end < 0 {
		l.errorHere(report.ELexTruncatedRawString, l.cursor, "unterminated raw string literal")
		return
	}

	raw := body[:end]
	text := l.cursor[:start+end+numHashes+1]
	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{Kind: intern.LiteralString, Str: raw})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}
