// Copyright 2020-2024 Buf Technologies, Inc.
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

// Package report contains the diagnostic types used by every pass of the
// front-end: an accumulate-and-continue Report, a fixed Code taxonomy, and a
// renderer that produces the "E####: message (file:line:col)" text form.
package report

import "fmt"

// Code is an enumerated diagnostic code drawn from one of the reserved
// ranges in the error taxonomy:
//
//	E0000-E0999: internal compiler errors
//	E1000-E1999: lexer errors
//	E2000-E2999: parser errors
//	E3000-E3999: AST/lowering errors
type Code int

// Internal invariant violations. A Code in this range should never be
// reachable from well-formed input; seeing one means a pass broke one of
// its own contracts (an empty stack pop, a missing context slot, ...).
const EInternal Code = 0

// Lexer codes, E1000+.
const (
	ELexInvalidBOM Code = 1000 + iota
	ELexInvalidDigit
	ELexInvalidLeadingHexFpDigit
	ELexMissingHexFpIndicator
	ELexUnclosedBlockComment
	ELexTruncatedChar
	ELexTruncatedString
	ELexTruncatedRawString
	ELexInvalidEscape
	ELexInvalidHexInChar
	ELexInvalidUnicodeEscape
	ELexInvalidUnicodeCodepoint
	ELexNoOpeningSym
	ELexMismatchedCloseSym
	ELexInvalidCharInOp
	ELexUnknownOpNameSequence
)

// Parser codes, E2000+, are out of scope for this core (the parser is an
// external collaborator); reserved here only so the numeric ranges stay
// contiguous for a future parser implementation.
const EParse Code = 2000

// AST/lowering codes, E3000+.
const (
	EAstVariadicMultiple Code = 3000 + iota
	EAstVariadicInvalidPattern
	EAstParamMultipleNamesWithDefVal
	EAstParamReqAfterOpt
	EAstMultipleStructComplete
	EAstInvalidUninitVarDecl
	EAstInvalidLiteral
	EAstInvalidAbiLiteral
	EAstInvalidModulePath
	EAstInvalidAttributeData
	EAstRedefinition
	EAstParamPackExpectedTypeDef
	EAstParamPackExpectedExprDef
	EAstUseAmbiguity
)

// String renders the code as its "E####" form.
func (c Code) String() string {
	return fmt.Sprintf("E%04d", int(c))
}
