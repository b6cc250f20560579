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

// Package token holds the lexer's output types (Token, Store,
// MetaElem) and the Lex entry point itself.
package token

import (
	"fmt"

	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/source"
)

// Kind discriminates the variant carried by a Token.
type Kind uint8

const (
	KindStrongKw Kind = iota
	KindWeakKw
	KindName
	KindPunctuation
	KindOpenSymbol
	KindCloseSymbol
	KindLiteral
	KindUnderscore
)

// Token is one lexical unit. Exactly one of the fields named after Kind is
// meaningful, selected by Kind itself; this mirrors the source enum's
// variant-with-payload shape using a tagged struct, which is the idiomatic
// Go rendering of a Rust sum type here (see DESIGN.md).
type Token struct {
	Kind        Kind
	StrongKw    StrongKeyword
	WeakKw      WeakKeyword
	Name        intern.ID
	Punct       Punctuation
	Bracket     BracketKind
	Literal     intern.LiteralID
}

// AsDisplayStr renders the token's class for diagnostics, without resolving
// any interned payload.
func (t Token) AsDisplayStr(punctuations *intern.PunctuationTable) string {
	switch t.Kind {
	case KindStrongKw:
		return t.StrongKw.String()
	case KindWeakKw:
		return t.WeakKw.String()
	case KindName:
		return "name"
	case KindPunctuation:
		return t.Punct.AsDisplayStr()
	case KindOpenSymbol:
		return t.Bracket.OpenStr()
	case KindCloseSymbol:
		return t.Bracket.CloseStr()
	case KindLiteral:
		return "literal"
	case KindUnderscore:
		return "_"
	default:
		return fmt.Sprintf("token.Kind(%d)", t.Kind)
	}
}

// MetaKind discriminates the kind of trivia a MetaElem carries.
type MetaKind uint8

const (
	MetaWhitespace MetaKind = iota
	MetaLineComment
	MetaLineDocComment
	MetaLineTopDocComment
	MetaBlockComment
	MetaBlockDocComment
	MetaBlockTopDocComment
)

// IsDoc reports whether this trivia is a doc comment (/// or /** */).
func (k MetaKind) IsDoc() bool { return k == MetaLineDocComment || k == MetaBlockDocComment }

// IsTopDoc reports whether this trivia is a top-level doc comment (//! or
// /*! */), which documents the enclosing item rather than the next token.
func (k MetaKind) IsTopDoc() bool {
	return k == MetaLineTopDocComment || k == MetaBlockTopDocComment
}

// MetaElem is one piece of trivia (whitespace or a comment) attached to the
// token that follows it in the stream, or to Store.TailMeta if it
// trails the last token.
type MetaElem struct {
	Kind MetaKind
	Text string
}

// Metadata holds everything about a Token besides its content: the span it
// occupies and any trivia immediately preceding it.
type Metadata struct {
	Span  source.Id
	Meta  []MetaElem
}

// Store is the lexer's full output: the token sequence, parallel metadata,
// trailing trivia, and prefix flags (BOM/shebang).
type Store struct {
	HasBOM  bool
	Shebang string // empty means "no shebang"

	Tokens   []Token
	Metadata []Metadata
	TailMeta []MetaElem

	// weakKeywordNames maps each WeakKeyword to the NameId registered for
	// its own text, so a parser can recover the Name form of a weak
	// keyword used as an ordinary identifier.
	weakKeywordNames [numWeakKeywords]intern.ID
}

// NewStore creates an empty Store, pre-registering every weak keyword's
// text into names.
func NewStore(names *intern.Table) *Store {
	s := &Store{}
	for kw, text := range WeakKeywordNames {
		s.weakKeywordNames[kw] = names.Intern(text)
	}
	return s
}

// Push appends one token and its metadata.
func (s *Store) Push(tok Token, meta Metadata) {
	s.Tokens = append(s.Tokens, tok)
	s.Metadata = append(s.Metadata, meta)
}

// NameForWeakKeyword returns the NameId registered for kw's own text.
func (s *Store) NameForWeakKeyword(kw WeakKeyword) intern.ID {
	return s.weakKeywordNames[kw]
}

// Len returns the number of tokens in the stream.
func (s *Store) Len() int { return len(s.Tokens) }
