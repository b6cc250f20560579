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
	"unicode"
	"unicode/utf8"

	"github.com/xenonlang/xnc/report"
)

func (l *Lexer) addPunctuation(text string) {
	p := PunctuationFromStr(text, l.puncts)
	sp := l.spanFor(text)
	l.push(Token{Kind: KindPunctuation, Punct: p}, sp)
}

// lexPunctuation handles everything that isn't an identifier, literal,
// bracket, or whitespace/comment: the dot family, single-character symbols,
// and custom multi-character operator sequences built from opChars and
// `\name` escapes.
func (l *Lexer) lexPunctuation(ch rune) {
	if ch == '.' {
		switch {
		case strings.HasPrefix(l.cursor, "..."):
			l.addPunctuation("...")
		case strings.HasPrefix(l.cursor, "..="):
			l.addPunctuation("..=")
		case strings.HasPrefix(l.cursor, ".."):
			l.addPunctuation("..")
		default:
			l.addPunctuation(".")
		}
		return
	}

	if singleSymbols[ch] {
		l.addPunctuation(l.cursor[:1])
		return
	}

	var seq strings.Builder
	remaining := l.cursor
	for remaining != "" {
		r, size := utf8.DecodeRuneInString(remaining)
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || singleSymbols[r] || openClose[r] {
			break
		}
		if r == '\\' {
			decoded, consumed, ok := l.lexOpNameEscape(remaining[1:])
			if !ok {
				// Still consume the escape itself so the lexer makes
				// progress past the bad name rather than looping.
				remaining = remaining[1+consumed:]
				break
			}
			seq.WriteRune(decoded)
			remaining = remaining[1+consumed:]
			continue
		}
		if !opChars[r] {
			sp := l.spanFor(remaining[:size])
			l.errorAt(sp, report.ELexInvalidCharInOp, "%q is not allowed in an operator sequence", r)
			return
		}
		seq.WriteRune(r)
		remaining = remaining[size:]
	}

	consumedBytes := len(l.cursor) - len(remaining)
	if consumedBytes == 0 {
		// Nothing recognizable; consume one rune so the lexer still makes
		// progress past this character.
		_, size := utf8.DecodeRuneInString(l.cursor)
		sp := l.spanFor(l.cursor[:size])
		l.errorAt(sp, report.ELexInvalidCharInOp, "unexpected character")
		return
	}

	text := seq.String()
	raw := l.cursor[:consumedBytes]
	if text == "" {
		// The only token material here was a rejected `\name` escape,
		// already reported; just skip past it.
		l.consume(raw)
		return
	}
	p := PunctuationFromStr(text, l.puncts)
	sp := l.spanFor(raw)
	l.push(Token{Kind: KindPunctuation, Punct: p}, sp)
}

// lexOpNameEscape decodes a `\name` escape used inside an operator
// sequence, returning the codepoint it names and the number of bytes of
// rest (the text right after the backslash) it consumed.
func (l *Lexer) lexOpNameEscape(rest string) (rune, int, bool) {
	n := identRunLen(rest)
	name := rest[:n]
	ch, ok := opNameSequences[name]
	if !ok {
		l.errorAt(l.spans.Add(l.tracker.Here()), report.ELexUnknownOpNameSequence, "%q is not a known operator-name escape", name)
		return 0, n, false
	}
	return ch, n, true
}
