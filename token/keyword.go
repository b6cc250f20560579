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

// StrongKeyword is an identifier that is always reserved, in every
// context: a bare exact-match lookup against the identifier text is enough
// to recognize one (see lexIdent in lex.go).
type StrongKeyword uint8

const (
	KwAs StrongKeyword = iota
	KwAsQuestion
	KwAsExclaim
	KwAssert
	KwB8
	KwB16
	KwB32
	KwB64
	KwBitfield
	KwBool
	KwBreak
	KwChar
	KwChar7
	KwChar8
	KwChar16
	KwChar32
	KwConst
	KwConstraint
	KwContinue
	KwCStr
	KwDefer
	KwDo
	KwDyn
	KwElse
	KwEnum
	KwErrDefer
	KwExclaimIn
	KwExclaimIs
	KwExtern
	KwF16
	KwF32
	KwF64
	KwF128
	KwFalse
	KwFallthrough
	KwFn
	KwFor
	KwI8
	KwI16
	KwI32
	KwI64
	KwI128
	KwIf
	KwImpl
	KwIs
	KwIn
	KwIsize
	KwLet
	KwLoop
	KwMatch
	KwMod
	KwMove
	KwMut
	KwPub
	KwSelfTy
	KwSelfName
	KwStatic
	KwStr
	KwStr7
	KwStr8
	KwStr16
	KwStr32
	KwStruct
	KwThrow
	KwTrait
	KwTrue
	KwTry
	KwTryExclaim
	KwType
	KwRef
	KwReturn
	KwU8
	KwU16
	KwU32
	KwU64
	KwU128
	KwUnion
	KwUnsafe
	KwUse
	KwUsize
	KwWhen
	KwWhere
	KwWhile

	// Reserved for future use; recognized as keywords but not bound to any
	// construct yet.
	KwAsync
	KwAwait
	KwYield

	numStrongKeywords
)

var strongKeywordText = [numStrongKeywords]string{
	KwAs: "as", KwAsQuestion: "as?", KwAsExclaim: "as!", KwAssert: "assert",
	KwB8: "b8", KwB16: "b16", KwB32: "b32", KwB64: "b64",
	KwBitfield: "bitfield", KwBool: "bool", KwBreak: "break",
	KwChar: "char", KwChar7: "char7", KwChar8: "char8", KwChar16: "char16", KwChar32: "char32",
	KwConst: "const", KwConstraint: "constraint", KwContinue: "continue", KwCStr: "cstr",
	KwDefer: "defer", KwDo: "do", KwDyn: "dyn",
	KwElse: "else", KwEnum: "enum", KwErrDefer: "errdefer",
	KwExclaimIn: "!in", KwExclaimIs: "!is", KwExtern: "extern",
	KwF16: "f16", KwF32: "f32", KwF64: "f64", KwF128: "f128",
	KwFalse: "false", KwFallthrough: "fallthrough", KwFn: "fn", KwFor: "for",
	KwI8: "i8", KwI16: "i16", KwI32: "i32", KwI64: "i64", KwI128: "i128",
	KwIf: "if", KwImpl: "impl", KwIs: "is", KwIn: "in", KwIsize: "isize",
	KwLet: "let", KwLoop: "loop",
	KwMatch: "match", KwMod: "mod", KwMove: "move", KwMut: "mut",
	KwPub: "pub", KwRef: "ref", KwReturn: "return",
	KwSelfName: "self", KwSelfTy: "Self", KwStatic: "static",
	KwStr: "str", KwStr7: "str7", KwStr8: "str8", KwStr16: "str16", KwStr32: "str32",
	KwStruct: "struct", KwThrow: "throw", KwTrait: "trait",
	KwTrue: "true", KwTry: "try", KwTryExclaim: "try!", KwType: "type",
	KwU8: "u8", KwU16: "u16", KwU32: "u32", KwU64: "u64", KwU128: "u128",
	KwUnion: "union", KwUnsafe: "unsafe", KwUse: "use", KwUsize: "usize",
	KwWhen: "when", KwWhere: "where", KwWhile: "while",
	KwAsync: "async", KwAwait: "await", KwYield: "yield",
}

var strongKeywordsByText = func() map[string]StrongKeyword {
	m := make(map[string]StrongKeyword, numStrongKeywords)
	for kw, text := range strongKeywordText {
		m[text] = StrongKeyword(kw)
	}
	return m
}()

// String returns the keyword's source text.
func (k StrongKeyword) String() string { return strongKeywordText[k] }

// LookupStrongKeyword looks up an identifier run against the strong
// keyword table. Strong keywords are reserved in every context.
func LookupStrongKeyword(s string) (StrongKeyword, bool) {
	kw, ok := strongKeywordsByText[s]
	return kw, ok
}

// WeakKeyword is an identifier that is only a keyword in a context the
// parser recognizes; everywhere else, it lexes as an ordinary Name. The
// lexer always emits WeakKw for an exact match, but also registers the
// keyword's own text in the NameTable (see Store.weakKeywordNames) so
// a parser can recover the Name form when the keyword is used as an
// ordinary identifier.
type WeakKeyword uint8

const (
	KwAssign WeakKeyword = iota
	KwAssociativity
	KwDistinct
	KwFlag
	KwGet
	KwHigherThan
	KwInfix
	KwInvar
	KwLib
	KwLowerThan
	KwOp
	KwOpaque
	KwOverride
	KwPackage
	KwPost
	KwPostfix
	KwPre
	KwPrecedence
	KwPrefix
	KwProperty
	KwRecord
	KwSealed
	KwSet
	KwSuper
	KwTls

	numWeakKeywords
)

// WeakKeywordNames holds every weak keyword's text, in declaration order;
// NewStore uses it to pre-seed the NameTable with one NameId per weak
// keyword so a WeakKw token can always be mapped back to a Name.
var WeakKeywordNames = [numWeakKeywords]string{
	KwAssign: "assign", KwAssociativity: "associativity", KwDistinct: "distinct",
	KwFlag: "flag", KwGet: "get", KwHigherThan: "higher_than", KwInfix: "infix",
	KwInvar: "invar", KwLib: "lib", KwLowerThan: "lower_than", KwOp: "op",
	KwOpaque: "opaque", KwOverride: "override", KwPackage: "package",
	KwPost: "post", KwPostfix: "postfix", KwPre: "pre", KwPrecedence: "precedence",
	KwPrefix: "prefix", KwProperty: "property", KwRecord: "record",
	KwSealed: "sealed", KwSet: "set", KwSuper: "super", KwTls: "tls",
}

var weakKeywordsByText = func() map[string]WeakKeyword {
	m := make(map[string]WeakKeyword, numWeakKeywords)
	for kw, text := range WeakKeywordNames {
		m[text] = WeakKeyword(kw)
	}
	return m
}()

// String returns the keyword's source text.
func (k WeakKeyword) String() string { return WeakKeywordNames[k] }

// LookupWeakKeyword looks up an identifier run against the weak keyword
// table.
func LookupWeakKeyword(s string) (WeakKeyword, bool) {
	kw, ok := weakKeywordsByText[s]
	return kw, ok
}
