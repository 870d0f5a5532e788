// Package lexer implements the tolerant tokenizer (C2) and token stream
// (C3). Its shape — a loop that dispatches on the current rune to one
// lex* function per token class — is a generalization of a template
// lexer to a JSON-ish grammar instead of Django template syntax.
package lexer

import "github.com/flosch/jsonrepair/internal/cursor"

// TokenType classifies a Token, playing the same role a template
// lexer's TokenType plays for template tokens.
type TokenType int

const (
	TokenLBrace TokenType = iota
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenColon
	TokenComma
	TokenString
	TokenNumber
	TokenLiteral
	TokenIdentifier
	TokenWhitespace
	TokenComment
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenLBrace:
		return "{"
	case TokenRBrace:
		return "}"
	case TokenLBracket:
		return "["
	case TokenRBracket:
		return "]"
	case TokenColon:
		return ":"
	case TokenComma:
		return ","
	case TokenString:
		return "String"
	case TokenNumber:
		return "Number"
	case TokenLiteral:
		return "Literal"
	case TokenIdentifier:
		return "Identifier"
	case TokenWhitespace:
		return "Whitespace"
	case TokenComment:
		return "Comment"
	case TokenEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// StringFlags is a bit-set over the anomalies a string token can carry
// on an otherwise-plain string token.
type StringFlags uint16

const (
	FlagWasUnterminated StringFlags = 1 << iota
	FlagHadInvalidEscapes
	FlagUsedSingleQuotes
	FlagHadUnescapedControls
	FlagHadInvalidUnicode
	FlagHadLoneSurrogate
	FlagHadSurrogatePair
)

func (f StringFlags) Has(flag StringFlags) bool { return f&flag != 0 }

// NumberKind is a bit-set over the anomalies a number token can carry.
// A single malformed number routinely needs more than one repair at
// once (e.g. "+01" is both leadingPlus and leadingZeros), so this type
// tracks every anomaly that applies and exposes Primary() for call
// sites that want one representative classification. See DESIGN.md for
// why this is a bit-set rather than a single-valued enum.
type NumberKind uint16

const (
	NumberLeadingPlus NumberKind = 1 << iota
	NumberLeadingZeros
	NumberBareDot
	NumberTrailingDot
	NumberIncompleteExp
	NumberHasUnderscores
	NumberHexLiteral
	NumberOctalLiteral
	NumberInvalid
)

// NumberValid is the zero value: no anomaly flags set.
const NumberValid NumberKind = 0

func (k NumberKind) Has(flag NumberKind) bool { return k&flag != 0 }

// Primary returns one representative flag for diagnostics, preferring
// the flag that most affects grammar validity.
func (k NumberKind) Primary() NumberKind {
	for _, f := range []NumberKind{
		NumberInvalid, NumberHexLiteral, NumberOctalLiteral, NumberBareDot,
		NumberTrailingDot, NumberIncompleteExp, NumberLeadingZeros,
		NumberLeadingPlus, NumberHasUnderscores,
	} {
		if k.Has(f) {
			return f
		}
	}
	return NumberValid
}

// LiteralValue is the canonical value a literal token maps to, after
// alias resolution (e.g. "True"/"tru" both resolve to LiteralTrue).
type LiteralValue int

const (
	LiteralTrue LiteralValue = iota
	LiteralFalse
	LiteralNull
	LiteralUndefined
	LiteralNaN
	LiteralInfinity
)

// Token is the lossless, classified lexical unit the tokenizer emits.
// Every token carries its raw source lexeme so invariant 1 (lossless
// reconstruction) holds, plus a canonicalized payload and repair flags
// appropriate to its Type.
type Token struct {
	Type  TokenType
	Start cursor.Position
	Raw   string

	// TokenString
	StringValue string
	StringFlags StringFlags

	// TokenNumber
	NumberCanonical string
	NumberKind      NumberKind

	// TokenLiteral
	LiteralValue LiteralValue

	// TokenIdentifier
	Identifier string
}
