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

import "github.com/xenonlang/xnc/intern"

// PunctKind distinguishes predefined punctuation (one of the fixed set
// below) from a custom operator sequence interned through a
// intern.PunctuationTable.
type PunctKind uint8

const (
	PunctDot PunctKind = iota
	PunctDotDot
	PunctDotDotDot
	PunctDotDotEquals
	PunctSemicolon
	PunctAt
	PunctAtExclaim
	PunctColon
	PunctColonEquals
	PunctComma
	PunctExclaim
	PunctCaret
	PunctAmpersand
	PunctQuestion
	PunctQuestionDot
	PunctOr
	PunctEquals
	PunctAndAnd

	PunctSingleArrowR
	PunctSingleArrowL
	PunctDoubleArrow

	// Special cases: textual operators that lex like punctuation but read
	// like words (`in`, `!in`).
	PunctContains
	PunctNotContains

	PunctCustom
)

var punctDisplay = map[PunctKind]string{
	PunctDot: ".", PunctDotDot: "..", PunctDotDotDot: "...", PunctDotDotEquals: "..=",
	PunctSemicolon: ";", PunctAt: "@", PunctAtExclaim: "@!",
	PunctColon: ":", PunctColonEquals: ":=", PunctComma: ",",
	PunctExclaim: "!", PunctCaret: "^", PunctAmpersand: "&",
	PunctQuestion: "?", PunctQuestionDot: "?.", PunctOr: "|",
	PunctEquals: "=", PunctAndAnd: "&&",
	PunctSingleArrowR: "->", PunctSingleArrowL: "<-", PunctDoubleArrow: "=>",
	PunctContains: "in", PunctNotContains: "!in",
	PunctCustom: "custom_punct",
}

// predefinedPunctText maps each predefined punctuation's text to its kind.
// PunctuationFromStr compares a whole lexed sequence (see lex_punct.go)
// against it for an exact match, so the order of the entries does not
// affect the result.
var predefinedPunctText = []struct {
	text string
	kind PunctKind
}{
	{"...", PunctDotDotDot},
	{"..=", PunctDotDotEquals},
	{"->", PunctSingleArrowR},
	{"<-", PunctSingleArrowL},
	{"=>", PunctDoubleArrow},
	{"&&", PunctAndAnd},
	{"?.", PunctQuestionDot},
	{":=", PunctColonEquals},
	{"@!", PunctAtExclaim},
	{"..", PunctDotDot},
	{".", PunctDot},
	{";", PunctSemicolon},
	{"@", PunctAt},
	{":", PunctColon},
	{",", PunctComma},
	{"!", PunctExclaim},
	{"^", PunctCaret},
	{"&", PunctAmpersand},
	{"?", PunctQuestion},
	{"|", PunctOr},
	{"=", PunctEquals},
}

// Punctuation is a fully resolved punctuation token: either one of the
// predefined kinds, or a Custom kind carrying the interned text of a
// user-defined operator sequence.
type Punctuation struct {
	Kind   PunctKind
	Custom intern.PunctuationID
}

// AsStr renders the punctuation's display text, resolving Custom through
// punctuations.
func (p Punctuation) AsStr(punctuations *intern.PunctuationTable) string {
	if p.Kind == PunctCustom {
		return punctuations.Text(p.Custom)
	}
	return p.AsDisplayStr()
}

// AsDisplayStr renders the kind's canonical text, ignoring Custom's actual
// interned text (used for diagnostics that only need the token class).
func (p Punctuation) AsDisplayStr() string {
	return punctDisplay[p.Kind]
}

// PunctuationFromStr classifies s against the predefined table, falling
// back to interning it as a custom sequence.
func PunctuationFromStr(s string, punctuations *intern.PunctuationTable) Punctuation {
	for _, entry := range predefinedPunctText {
		if entry.text == s {
			return Punctuation{Kind: entry.kind}
		}
	}
	return Punctuation{Kind: PunctCustom, Custom: punctuations.Intern(s)}
}

// BracketKind identifies which of the three open/close bracket families a
// Token::OpenSymbol/CloseSymbol belongs to.
type BracketKind uint8

const (
	BracketParen BracketKind = iota
	BracketBrace
	BracketBracket
)

// OpenStr and CloseStr return a bracket kind's open/close text.
func (b BracketKind) OpenStr() string {
	return [...]string{"(", "{", "["}[b]
}

func (b BracketKind) CloseStr() string {
	return [...]string{")", "}", "]"}[b]
}
