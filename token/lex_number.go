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
	"github.com/xenonlang/xnc/intern"
	"github.com/xenonlang/xnc/report"
)

// digitRunLen returns the length of the run of digits (of the given base)
// and underscores starting at the front of s.
func digitRunLen(s string, mode digitMode) int {
	i := 0
	for i < len(s) {
		ch := s[i]
		if ch == '_' {
			i++
			continue
		}
		if _, err := lexDigit(ch, mode); err != nil {
			break
		}
		i++
	}
	return i
}

// lexDigit converts one ASCII digit character to its numeric value under
// mode, rejecting digits the base does not allow.
func lexDigit(ch byte, mode digitMode) (byte, error) {
	switch {
	case ch >= '0' && ch <= '7':
		return ch - '0', nil
	case ch >= '8' && ch <= '9':
		if mode != digitOct {
			return ch - '0', nil
		}
	case ch >= 'a' && ch <= 'f':
		if mode == digitHex {
			return 10 + ch - 'a', nil
		}
	case ch >= 'A' && ch <= 'F':
		if mode == digitHex {
			return 10 + ch - 'A', nil
		}
	}
	return 0, errInvalidDigit
}

var errInvalidDigit = &digitError{}

type digitError struct{}

func (*digitError) Error() string { return "invalid digit" }

// lexLitDigits packs a run of digit characters (underscores allowed and
// ignored) two-to-a-byte, most significant nibble first, mirroring the
// source lexer's lex_lit_digits: digits are consumed from the least
// significant end, accumulated into nibble pairs, and the whole byte slice
// is reversed at the end so index 0 holds the most significant byte.
//
// When keepPrecedingZeroes is false, trailing zero bytes (which after the
// reversal are the most-significant end, i.e. insignificant leading zeroes)
// are stripped, always leaving at least one byte. A decimal literal's
// fractional part passes true, since "1.02" and "1.2" are not the same
// value.
func lexLitDigits(digits string, mode digitMode, keepPrecedingZeroes bool) ([]byte, bool) {
	bytes := make([]byte, 0, (len(digits)+1)/2)

	var acc byte
	idx := 0
	for i := len(digits) - 1; i >= 0; i-- {
		ch := digits[i]
		if ch == '_' {
			continue
		}
		val, err := lexDigit(ch, mode)
		if err != nil {
			return nil, false
		}

		nibbleIdx := idx & 1
		idx++
		shift := nibbleIdx * 4

		acc |= val << shift
		if nibbleIdx == 1 {
			bytes = append(bytes, acc)
			acc = 0
		}
	}
	if idx&1 == 1 {
		bytes = append(bytes, acc)
	}

	if !keepPrecedingZeroes {
		for len(bytes) > 1 && bytes[len(bytes)-1] == 0 {
			bytes = bytes[:len(bytes)-1]
		}
	}

	reverse(bytes)

	if keepPrecedingZeroes {
		for len(bytes) > 1 && bytes[len(bytes)-1] == 0 {
			bytes = bytes[:len(bytes)-1]
		}
	}

	return bytes, true
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

func isHexDigitOrUnderscore(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F') || ch == '_'
}

func isDecDigitOrUnderscore(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '_'
}

// lexBinaryLit packs a 0b... literal 8 bits to a byte, LSB-first during
// accumulation and then reversed, which is deliberately a different packing
// scheme from lexLitDigits: the source lexer only ever strips a single
// trailing zero byte here (via one `if`, not a loop), unlike the other
// bases' loop-strip. This asymmetry is preserved faithfully rather than
// "fixed", since it is an intentional property of the algorithm this lexer
// is ported from.
func (l *Lexer) lexBinaryLit() {
	n := 2 + digitRunLen(l.cursor[2:], digitDec) // digits 0/1 only, checked below
	text := l.cursor[:n]

	bytes := make([]byte, 0, (len(text)-2+7)/8)
	var acc byte
	idx := 0
	ok := true
	for i := len(text) - 1; i >= 2; i-- {
		ch := text[i]
		if ch == '_' {
			continue
		}
		if ch != '0' && ch != '1' {
			ok = false
			break
		}
		shift := idx & 7
		idx++
		val := ch - '0'
		acc |= val << shift
		if shift == 7 {
			bytes = append(bytes, acc)
			acc = 0
		}
	}
	if !ok {
		l.errorHere(report.ELexInvalidDigit, text, "invalid digit in binary literal")
		return
	}
	if idx&7 != 0 {
		bytes = append(bytes, acc)
	}
	if len(bytes) > 1 && bytes[len(bytes)-1] == 0 {
		bytes = bytes[:len(bytes)-1]
	}
	reverse(bytes)

	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{Kind: intern.LiteralBinary, Bytes: bytes})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}

func (l *Lexer) lexOctalLit() {
	n := 2 + digitRunLen(l.cursor[2:], digitOct)
	text := l.cursor[:n]

	digits, ok := lexLitDigits(text[2:], digitOct, false)
	if !ok {
		l.errorHere(report.ELexInvalidDigit, text, "invalid digit in octal literal")
		return
	}
	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{Kind: intern.LiteralOctal, Bytes: digits})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}

func (l *Lexer) lexHexLit() {
	if len(l.cursor) >= 4 && l.cursor[3] == '.' {
		l.lexHexFloatLit()
		return
	}
	n := 2 + digitRunLen(l.cursor[2:], digitHex)
	text := l.cursor[:n]

	digits, ok := lexLitDigits(text[2:], digitHex, false)
	if !ok {
		l.errorHere(report.ELexInvalidDigit, text, "invalid digit in hex literal")
		return
	}
	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{Kind: intern.LiteralHexInt, Bytes: digits})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}

func (l *Lexer) lexHexFloatLit() {
	initialDigit := false
	switch l.cursor[2] {
	case '0':
		initialDigit = false
	case '1':
		initialDigit = true
	default:
		l.errorHere(report.ELexInvalidLeadingHexFpDigit, l.cursor[:4], "a hex float's leading digit must be 0 or 1")
		return
	}

	pIdx := -1
	for i := 4; i < len(l.cursor); i++ {
		if l.cursor[i] == 'p' {
			pIdx = i
			break
		}
		if !isHexDigitOrUnderscore(l.cursor[i]) {
			break
		}
	}
	if pIdx < 0 {
		l.errorHere(report.ELexMissingHexFpIndicator, l.cursor[:4], "hex float is missing its 'p' exponent indicator")
		return
	}

	mantissa, ok := lexLitDigits(l.cursor[4:pIdx], digitHex, true)
	if !ok {
		l.errorHere(report.ELexInvalidDigit, l.cursor[:pIdx], "invalid digit in hex float mantissa")
		return
	}

	rest := l.cursor[pIdx+1:]
	expSign, hasSign, offset := true, false, 0
	switch {
	case len(rest) > 0 && rest[0] == '+':
		expSign, hasSign, offset = true, true, 1
	case len(rest) > 0 && rest[0] == '-':
		expSign, hasSign, offset = false, true, 1
	case len(rest) > 0 && isHexDigitOrUnderscore(rest[0]):
		expSign, hasSign, offset = true, false, 0
	default:
		l.errorHere(report.ELexInvalidDigit, l.cursor, "invalid hex float exponent")
		return
	}
	rest = rest[offset:]

	end := digitRunLen(rest, digitHex)
	expDigits, ok := lexLitDigits(rest[:end], digitHex, false)
	if !ok {
		l.errorHere(report.ELexInvalidDigit, rest[:end], "invalid digit in hex float exponent")
		return
	}

	total := pIdx + 1 + end
	if hasSign {
		total++
	}
	text := l.cursor[:total]
	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{
		Kind: intern.LiteralHexFp,
		HexFp: intern.HexFp{
			InitialDigit: initialDigit,
			Mantissa:     mantissa,
			ExpSign:      expSign,
			Exponent:     expDigits,
		},
	})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}

func (l *Lexer) lexDecimalLit() {
	intLen := digitRunLen(l.cursor, digitDec)
	intStr := l.cursor[:intLen]
	intDigits, ok := lexLitDigits(intStr, digitDec, false)
	if !ok {
		l.errorHere(report.ELexInvalidDigit, intStr, "invalid digit in decimal literal")
		return
	}

	end := intLen
	var fracDigits, expDigits []byte
	expSign := true

	if len(l.cursor) > intLen && l.cursor[intLen] == '.' {
		fracStart := intLen + 1
		fracLen := digitRunLen(l.cursor[fracStart:], digitDec)
		if fracLen > 0 {
			fracStr := l.cursor[fracStart : fracStart+fracLen]
			fracDigits, ok = lexLitDigits(fracStr, digitDec, true)
			if !ok {
				l.errorHere(report.ELexInvalidDigit, fracStr, "invalid digit in decimal fraction")
				return
			}
			end = fracStart + fracLen

			if len(l.cursor) > end+1 && l.cursor[end] == 'e' {
				expStart := end + 1
				switch l.cursor[expStart] {
				case '-':
					expSign, expStart = false, expStart+1
				case '+':
					expSign, expStart = true, expStart+1
				default:
					expSign = true
				}
				expLen := digitRunLen(l.cursor[expStart:], digitDec)
				expStr := l.cursor[expStart : expStart+expLen]
				expDigits, ok = lexLitDigits(expStr, digitDec, false)
				if !ok {
					l.errorHere(report.ELexInvalidDigit, expStr, "invalid digit in decimal exponent")
					return
				}
				end = expStart + expLen
			}
		}
	}

	text := l.cursor[:end]
	sp := l.spanFor(text)
	id := l.literals.Add(intern.Literal{
		Kind: intern.LiteralDecimal,
		Decimal: intern.Decimal{
			Int:     intDigits,
			Frac:    fracDigits,
			ExpSign: expSign,
			Exp:     expDigits,
		},
	})
	l.push(Token{Kind: KindLiteral, Literal: id}, sp)
}
