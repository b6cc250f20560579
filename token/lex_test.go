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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/report"
	"github.com/xenonlang/xnc/source"
)

func lexAll(t *testing.T, src string) (*Store, *report.Report) {
	t.Helper()
	names := intern.NewTable()
	puncts := intern.NewPunctuationTable()
	literals := intern.NewLiteralTable()
	spans := source.NewRegistry()
	rep := report.NewReport()
	store := Lex("test.xn", src, names, puncts, literals, spans, rep)
	return store, rep
}

func TestLexBinaryLiteral(t *testing.T) {
	cases := []struct {
		src  string
		want []byte
	}{
		{"0b0", []byte{0}},
		{"0b00000000", []byte{0}},
		{"0b0000_0000", []byte{0}},
		{"0b1", []byte{1}},
		{"0b0001", []byte{1}},
	}
	for _, c := range cases {
		names := intern.NewTable()
		puncts := intern.NewPunctuationTable()
		literals := intern.NewLiteralTable()
		spans := source.NewRegistry()
		rep := report.NewReport()
		store := Lex("t.xn", c.src, names, puncts, literals, spans, rep)
		require.False(t, rep.HasErrors(), c.src)
		require.Equal(t, 1, store.Len())
		lit := literals.Get(store.Tokens[0].Literal)
		require.Equal(t, intern.LiteralBinary, lit.Kind)
		require.Equal(t, c.want, lit.Bytes)
	}
}

func TestLexOctalLiteral(t *testing.T) {
	store, rep := lexAll(t, "0o12345670")
	require.False(t, rep.HasErrors())
	require.Equal(t, 1, store.Len())
}

func TestLexIdentifierVsKeyword(t *testing.T) {
	store, rep := lexAll(t, "let x = foo")
	require.False(t, rep.HasErrors())
	require.Equal(t, 4, store.Len())
	require.Equal(t, KindStrongKw, store.Tokens[0].Kind)
	require.Equal(t, KwLet, store.Tokens[0].StrongKw)
	require.Equal(t, KindName, store.Tokens[1].Kind)
	require.Equal(t, KindPunctuation, store.Tokens[2].Kind)
	require.Equal(t, KindName, store.Tokens[3].Kind)
}

func TestLexAsSuffixes(t *testing.T) {
	store, rep := lexAll(t, "as as? as!")
	require.False(t, rep.HasErrors())
	require.Equal(t, 3, store.Len())
	require.Equal(t, KwAs, store.Tokens[0].StrongKw)
	require.Equal(t, KwAsQuestion, store.Tokens[1].StrongKw)
	require.Equal(t, KwAsExclaim, store.Tokens[2].StrongKw)
}

func TestLexBracketMismatch(t *testing.T) {
	_, rep := lexAll(t, "(]")
	require.True(t, rep.HasErrors())
}

func TestLexStringContinuation(t *testing.T) {
	store, rep := lexAll(t, "\"abc\\\n   def\"")
	require.False(t, rep.HasErrors())
	require.Equal(t, 1, store.Len())
}

func TestLexRawString(t *testing.T) {
	store, rep := lexAll(t, `r#"has a " inside"#`)
	require.False(t, rep.HasErrors())
	require.Equal(t, 1, store.Len())
}
