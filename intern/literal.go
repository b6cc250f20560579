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

package intern

import "fmt"

// LiteralID is a handle into a LiteralTable.
type LiteralID int32

// LiteralKind tags which variant of Literal a value holds.
type LiteralKind uint8

const (
	LiteralBinary LiteralKind = iota
	LiteralOctal
	LiteralHexInt
	LiteralHexFp
	LiteralDecimal
	LiteralChar
	LiteralString
)

// HexFp is the payload of a HexInt literal continued as a hex float:
// 0x1.ABCDp-EF lexes to initial_digit=true (the leading "1"), mantissa
// [0xAB,0xCD], exp_sign=false ('-'), exponent=[0xEF].
type HexFp struct {
	InitialDigit bool // true selects '1', false selects '0'.
	Mantissa     []byte
	ExpSign      bool // true for '+' (or absent sign), false for '-'.
	Exponent     []byte
}

// Decimal is the payload of a decimal literal with optional fractional and
// exponent parts, e.g. 1.2e3 -> {Int: [1], Frac: [2], ExpSign: true, Exp: [3]}.
type Decimal struct {
	Int     []byte
	Frac    []byte
	ExpSign bool
	Exp     []byte
}

// Literal is a tagged union over every literal shape the lexer recognizes.
// Digit streams are stored MSB-first with leading zeros stripped, except a
// Decimal's Frac, which keeps its leading zeros because they are
// significant ("1.02" != "1.2").
type Literal struct {
	Kind LiteralKind

	Bytes   []byte // Binary, Octal, HexInt: MSB-first digit/nibble stream.
	HexFp   HexFp
	Decimal Decimal
	Char    rune
	Str     string
}

// String implements fmt.Stringer, mirroring the teacher's `Display for
// Literal` used by the token CSV dump.
func (l Literal) String() string {
	switch l.Kind {
	case LiteralBinary, LiteralOctal, LiteralHexInt:
		return fmt.Sprintf("%x", l.Bytes)
	case LiteralHexFp:
		return fmt.Sprintf("0x%d.%xp%s%x", boolToInt(l.HexFp.InitialDigit), l.HexFp.Mantissa, signStr(l.HexFp.ExpSign), l.HexFp.Exponent)
	case LiteralDecimal:
		return fmt.Sprintf("%x.%xe%s%x", l.Decimal.Int, l.Decimal.Frac, signStr(l.Decimal.ExpSign), l.Decimal.Exp)
	case LiteralChar:
		return fmt.Sprintf("%q", l.Char)
	case LiteralString:
		return l.Str
	default:
		return "<invalid literal>"
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func signStr(positive bool) string {
	if positive {
		return "+"
	}
	return "-"
}

// LiteralTable stores Literal values in an append-only arena. Unlike Table,
// it does not deduplicate: structurally equal literals (two occurrences of
// "1.2e3" in the source are two distinct tokens with two distinct spans)
// each get their own ID.
type LiteralTable struct {
	literals []Literal
}

// NewLiteralTable creates an empty literal table.
func NewLiteralTable() *LiteralTable {
	return &LiteralTable{}
}

// Add appends a literal and returns its ID.
func (t *LiteralTable) Add(l Literal) LiteralID {
	t.literals = append(t.literals, l)
	return LiteralID(len(t.literals) - 1)
}

// Get returns a previously added literal.
func (t *LiteralTable) Get(id LiteralID) Literal {
	return t.literals[id]
}

// StripLeadingZeros removes leading zero bytes from an MSB-first digit
// stream, keeping at least one element (so an all-zero run collapses to a
// single zero, per the worked example `0b0000_0000` -> Binary([0])).
func StripLeadingZeros(digits []byte) []byte {
	i := 0
	for i < len(digits)-1 && digits[i] == 0 {
		i++
	}
	return digits[i:]
}
