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

	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/report"
	"github.com/xenonlang/xnc/source"
)

// Lexer turns source text into a Store. One Lexer lexes exactly one file;
// construct a fresh one per file (mirrors the teacher's per-file Parser).
type Lexer struct {
	file     string
	cursor   string // the unconsumed remainder of the source
	tracker  *source.Tracker
	spans    *source.Registry
	names    *intern.Table
	puncts   *intern.PunctuationTable
	literals *intern.LiteralTable
	store    *Store
	rep      *report.Report

	pendingMeta []MetaElem
	brackets    []bracketFrame
}

// bracketFrame records one still-open bracket, for matching on close.
type bracketFrame struct {
	kind BracketKind
	span source.Id
}

// digitMode selects which digits lexDigit accepts, mirroring the source
// lexer's three numeric bases (binary literals are packed by a separate,
// non-nibble algorithm; see lexBinaryLit).
type digitMode uint8

const (
	digitOct digitMode = iota
	digitDec
	digitHex
)

// Lex tokenizes src in full, recording any errors into rep and continuing
// past them (a lexical error only aborts the token currently being
// produced, never the whole file). The returned Store always has consistent
// parallel Tokens/Metadata slices, even when errors were recorded.
func Lex(file, src string, names *intern.Table, puncts *intern.PunctuationTable, literals *intern.LiteralTable, spans *source.Registry, rep *report.Report) *Store {
	l := &Lexer{
		file:     file,
		cursor:   src,
		tracker:  source.NewTracker(file),
		spans:    spans,
		names:    names,
		puncts:   puncts,
		literals: literals,
		store:    NewStore(names),
		rep:      rep,
	}
	l.run()
	return l.store
}

func (l *Lexer) run() {
	if l.cursor == "" {
		return
	}
	l.lexBOM()
	l.lexShebang()

	for l.cursor != "" {
		ch, _ := utf8.DecodeRuneInString(l.cursor)

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.lexWhitespace()
		case ch == '/' && strings.HasPrefix(l.cursor, "//"):
			l.lexLineComment()
		case ch == '/' && strings.HasPrefix(l.cursor, "/*"):
			l.lexBlockComment()
		case ch == '\'':
			l.lexCharLit()
		case ch == '"':
			l.lexStringLit()
		case ch == 'r' && rawStringStart(l.cursor):
			l.lexRawStringLit()
		case ch == '0' && len(l.cursor) > 1 && (l.cursor[1] == 'b' || l.cursor[1] == 'B'):
			l.lexBinaryLit()
		case ch == '0' && len(l.cursor) > 1 && (l.cursor[1] == 'o' || l.cursor[1] == 'O'):
			l.lexOctalLit()
		case ch == '0' && len(l.cursor) > 1 && (l.cursor[1] == 'x' || l.cursor[1] == 'X'):
			l.lexHexLit()
		case isAsciiDigit(ch):
			l.lexDecimalLit()
		case ch == '_' && identRunLen(l.cursor) == 1:
			l.addUnderscore()
		case unicode.IsLetter(ch) || ch == '_':
			l.lexIdent()
		case ch == '(' :
			l.pushOpen(BracketParen)
		case ch == '{':
			l.pushOpen(BracketBrace)
		case ch == '[':
			l.pushOpen(BracketBracket)
		case ch == ')':
			l.popClose(BracketParen)
		case ch == '}':
			l.popClose(BracketBrace)
		case ch == ']':
			l.popClose(BracketBracket)
		default:
			l.lexPunctuation(ch)
		}
	}
	l.store.TailMeta = l.flushMeta()

	for _, frame := range l.brackets {
		l.errorAt(frame.span, report.ELexNoOpeningSym, "unclosed %q has no matching closing bracket", frame.kind.OpenStr())
	}
}

func rawStringStart(cursor string) bool {
	if !strings.HasPrefix(cursor, "r") {
		return false
	}
	rest := cursor[1:]
	i := 0
	for i < len(rest) && rest[i] == '#' {
		i++
	}
	return i < len(rest) && rest[i] == '"'
}

func isAsciiDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func identRunLen(s string) int {
	i := 0
	for i < len(s) {
		ch, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			break
		}
		i += size
	}
	return i
}

// consume advances the cursor and the position tracker together by text,
// which must be a prefix of the current cursor.
func (l *Lexer) consume(text string) {
	l.tracker.Advance(text)
	l.cursor = l.cursor[len(text):]
}

// spanFor consumes text and registers the span it occupied.
func (l *Lexer) spanFor(text string) source.Id {
	sp := l.tracker.Advance(text)
	l.cursor = l.cursor[len(text):]
	return l.spans.Add(sp)
}

func (l *Lexer) errorAt(span source.Id, code report.Code, format string, args ...any) {
	l.rep.Error(code, span, format, args...)
}

func (l *Lexer) errorHere(code report.Code, text string, format string, args ...any) {
	sp := l.spanFor(text)
	l.rep.Error(code, sp, format, args...)
}

// flushMeta attaches any pending trivia to the token about to be pushed.
func (l *Lexer) flushMeta() []MetaElem {
	meta := l.pendingMeta
	l.pendingMeta = nil
	return meta
}

func (l *Lexer) push(tok Token, span source.Id) {
	l.store.Push(tok, Metadata{Span: span, Meta: l.flushMeta()})
}

func (l *Lexer) lexWhitespace() {
	i := 0
	for i < len(l.cursor) {
		ch, size := utf8.DecodeRuneInString(l.cursor[i:])
		if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
			break
		}
		i += size
	}
	text := l.cursor[:i]
	l.consume(text)
	l.pendingMeta = append(l.pendingMeta, MetaElem{Kind: MetaWhitespace, Text: text})
}

func findNextNewline(s string) int {
	return strings.IndexByte(s, '\n')
}

func (l *Lexer) lexLineComment() {
	end := findNextNewline(l.cursor)
	if end < 0 {
		end = len(l.cursor)
	}
	isDoc, isTop := false, false
	if end > 2 {
		switch l.cursor[2] {
		case '/':
			isDoc = true
		case '!':
			isDoc, isTop = true, true
		}
	}
	start := 2
	if isDoc {
		start = 3
	}
	text := l.cursor[start:end]
	kind := MetaLineComment
	if isDoc && isTop {
		kind = MetaLineTopDocComment
	} else if isDoc {
		kind = MetaLineDocComment
	}
	consumed := l.cursor[:end]
	l.consume(consumed)
	l.pendingMeta = append(l.pendingMeta, MetaElem{Kind: kind, Text: text})
}

func (l *Lexer) lexBlockComment() {
	isDoc, isTop := false, false
	if len(l.cursor) > 3 {
		switch l.cursor[2] {
		case '*':
			isDoc = true
		case '!':
			isDoc, isTop = true, true
		}
	}
	start := 2
	if isDoc {
		start = 3
	}

	depth := 1
	pos := start
	for {
		rest := l.cursor[pos:]
		next := strings.IndexAny(rest, "*/")
		if next < 0 || next+1 >= len(rest) {
			l.errorHere(report.ELexUnclosedBlockComment, l.cursor, "unclosed block comment")
			return
		}
		if rest[next] == '*' && rest[next+1] == '/' {
			depth--
		} else if rest[next] == '/' && rest[next+1] == '*' {
			depth++
		}
		pos += next + 2
		if depth == 0 {
			break
		}
	}

	text := l.cursor[start : pos-2]
	kind := MetaBlockComment
	if isDoc && isTop {
		kind = MetaBlockTopDocComment
	} else if isDoc {
		kind = MetaBlockDocComment
	}
	consumed := l.cursor[:pos]
	l.consume(consumed)
	l.pendingMeta = append(l.pendingMeta, MetaElem{Kind: kind, Text: text})
}

func (l *Lexer) addUnderscore() {
	sp := l.spanFor("_")
	l.push(Token{Kind: KindUnderscore}, sp)
}

// suffixedKeywords extends a plain identifier run with one more character
// when that turns it into a distinct strong keyword (`as` + `?`/`!`, `try`
// + `!`): these are lexed as a single token rather than two, mirroring the
// source lexer's special-cased `('a', 2)`/`('t', 3)` dispatch arms.
var suffixedKeywords = map[string]map[byte]StrongKeyword{
	"as":  {'?': KwAsQuestion, '!': KwAsExclaim},
	"try": {'!': KwTryExclaim},
}

func (l *Lexer) lexIdent() {
	n := identRunLen(l.cursor)
	text := l.cursor[:n]

	if suffixes, ok := suffixedKeywords[text]; ok && n < len(l.cursor) {
		if kw, ok := suffixes[l.cursor[n]]; ok {
			sp := l.spanFor(l.cursor[:n+1])
			l.push(Token{Kind: KindStrongKw, StrongKw: kw}, sp)
			return
		}
	}

	if kw, ok := LookupStrongKeyword(text); ok {
		sp := l.spanFor(text)
		l.push(Token{Kind: KindStrongKw, StrongKw: kw}, sp)
		return
	}
	if kw, ok := LookupWeakKeyword(text); ok {
		sp := l.spanFor(text)
		l.push(Token{Kind: KindWeakKw, WeakKw: kw}, sp)
		return
	}

	id := l.names.Intern(text)
	sp := l.spanFor(text)
	l.push(Token{Kind: KindName, Name: id}, sp)
}

func (l *Lexer) pushOpen(b BracketKind) {
	sp := l.spanFor(l.cursor[:1])
	l.brackets = append(l.brackets, bracketFrame{kind: b, span: sp})
	l.push(Token{Kind: KindOpenSymbol, Bracket: b}, sp)
}

func (l *Lexer) popClose(b BracketKind) {
	sp := l.spanFor(l.cursor[:1])
	if len(l.brackets) == 0 || l.brackets[len(l.brackets)-1].kind != b {
		l.errorAt(sp, report.ELexMismatchedCloseSym, "mismatched closing %q", b.CloseStr())
	} else {
		l.brackets = l.brackets[:len(l.brackets)-1]
	}
	l.push(Token{Kind: KindCloseSymbol, Bracket: b}, sp)
}
