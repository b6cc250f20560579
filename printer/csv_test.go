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

package printer

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/source"
	"github.com/xenonlang/xnc/token"
)

func TestWriteTokenCSVHeader(t *testing.T) {
	names := intern.NewTable()
	lits := intern.NewLiteralTable()
	puncts := intern.NewPunctuationTable()
	spans := source.NewRegistry()
	store := token.NewStore(names)

	var buf bytes.Buffer
	if err := WriteTokenCSV(&buf, store, spans, names, lits, puncts); err != nil {
		t.Fatalf("WriteTokenCSV: %v", err)
	}

	r := csv.NewReader(strings.NewReader(buf.String()))
	header, err := r.Read()
	if err != nil {
		t.Fatalf("reading header: %v", err)
	}
	want := []string{"token", "value", "line", "column", "char_offset", "byte_offset", "char_len", "byte_len"}
	if len(header) != len(want) {
		t.Fatalf("header length = %d, want %d", len(header), len(want))
	}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}
}

func TestWriteTokenCSVRows(t *testing.T) {
	names := intern.NewTable()
	lits := intern.NewLiteralTable()
	puncts := intern.NewPunctuationTable()
	spans := source.NewRegistry()
	store := token.NewStore(names)

	id := names.Intern("foo")
	span := spans.Add(source.Span{File: "a.xn", Row: 1, Column: 1, ByteOffset: 0, CharOffset: 0, ByteLen: 3, CharLen: 3})
	store.Push(token.Token{Kind: token.KindName, Name: id}, token.Metadata{Span: span})

	litID := lits.Add(intern.Literal{Kind: intern.LiteralString, Str: "hi"})
	span2 := spans.Add(source.Span{File: "a.xn", Row: 1, Column: 5, ByteOffset: 4, CharOffset: 4, ByteLen: 4, CharLen: 4})
	store.Push(token.Token{Kind: token.KindLiteral, Literal: litID}, token.Metadata{Span: span2})

	var buf bytes.Buffer
	if err := WriteTokenCSV(&buf, store, spans, names, lits, puncts); err != nil {
		t.Fatalf("WriteTokenCSV: %v", err)
	}

	r := csv.NewReader(strings.NewReader(buf.String()))
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	if len(rows) != 3 { // header + 2 tokens
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[1][1] != "foo" {
		t.Errorf("row[1].value = %q, want %q", rows[1][1], "foo")
	}
	if rows[2][1] != "hi" {
		t.Errorf("row[2].value = %q, want %q", rows[2][1], "hi")
	}
	if rows[2][3] != "5" {
		t.Errorf("row[2].column = %q, want %q", rows[2][3], "5")
	}
}
