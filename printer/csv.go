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

// Package printer holds the debug-surface dumpers this core exposes to a
// driver: the token CSV dump (§6.3) and the HIR node logger/code printer
// (§2 stage 11). The spec's own Non-goals explicitly carve out
// byte-accurate formatting of these as an external concern ("logger output
// formatting and CSV dump formatters" are listed as out of scope in §1),
// so this package favors a straightforward, readable rendering over
// chasing a particular reference tool's exact byte output.
package printer

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/source"
	"github.com/xenonlang/xnc/token"
)

// WriteTokenCSV writes store's tokens as one CSV row each, columns
// exactly as §6.3 names them: token,value,line,column,char_offset,
// byte_offset,char_len,byte_len. Double-quoting and doubling embedded
// quotes inside a value is encoding/csv's own job — the same escaping
// §6.3 calls for on string literal values falls out of using the stdlib
// writer rather than a hand-rolled one.
func WriteTokenCSV(w io.Writer, store *token.Store, spans *source.Registry, names *intern.Table, literals *intern.LiteralTable, puncts *intern.PunctuationTable) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"token", "value", "line", "column", "char_offset", "byte_offset", "char_len", "byte_len"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, tok := range store.Tokens {
		span := spans.Get(store.Metadata[i].Span)
		row := []string{
			tok.AsDisplayStr(puncts),
			tokenValue(tok, names, literals, puncts),
			strconv.Itoa(span.Row),
			strconv.Itoa(span.Column),
			strconv.Itoa(span.CharOffset),
			strconv.Itoa(span.ByteOffset),
			strconv.Itoa(span.CharLen),
			strconv.Itoa(span.ByteLen),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// tokenValue renders the payload text for tok's value column: the
// interned name for an identifier, the rendered literal for a literal
// token, the keyword/punctuation/bracket text otherwise.
func tokenValue(tok token.Token, names *intern.Table, literals *intern.LiteralTable, puncts *intern.PunctuationTable) string {
	switch tok.Kind {
	case token.KindName:
		return names.Text(tok.Name)
	case token.KindLiteral:
		return literals.Get(tok.Literal).String()
	case token.KindStrongKw:
		return tok.StrongKw.String()
	case token.KindWeakKw:
		return tok.WeakKw.String()
	case token.KindPunctuation:
		return tok.Punct.AsStr(puncts)
	case token.KindOpenSymbol:
		return tok.Bracket.OpenStr()
	case token.KindCloseSymbol:
		return tok.Bracket.CloseStr()
	case token.KindUnderscore:
		return "_"
	default:
		return ""
	}
}
