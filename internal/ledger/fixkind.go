package ledger

// Kind is the closed taxonomy of repairs the engine can record, shared
// by the fix ledger and strict validation. It plays the role a
// template lexer's TokenType plays for tokens: a small closed enum with a
// String() method for diagnostics.
type Kind int

const (
	// Structural repairs.
	KindMissingOpenBrace Kind = iota
	KindMissingCloseBrace
	KindMissingOpenBracket
	KindMissingCloseBracket
	KindMissingColon
	KindMissingComma
	KindExtraComma
	KindCrossTypeClosure
	KindAutoClosedBracket
	KindInsertedColon
	KindInsertedComma

	// String repairs.
	KindUnterminatedString
	KindUnquotedKey
	KindUnquotedValue
	KindInvalidEscape
	KindInvalidUnicode
	KindUnescapedControl
	KindSingleQuotes
	KindSurrogateRepaired
	KindLoneSurrogate

	// Number repairs.
	KindLeadingPlus
	KindLeadingZeros
	KindBareDot
	KindTrailingDot
	KindIncompleteExponent
	KindNumericSeparators
	KindHexNumber
	KindOctalNumber
	KindInvalidNumber

	// Literal repairs.
	KindNormalizedLiteral
	KindCompletedLiteral
	KindSpacedLiteral
	KindUnknownIdentifier

	// Misc repairs.
	KindMultipleRoots
	KindTrailingContent
	KindNonJSONWhitespace
	KindDuplicateKey
	KindWrapNDJSON
	KindLimitReached
)

var kindNames = map[Kind]string{
	KindMissingOpenBrace:    "missingOpenBrace",
	KindMissingCloseBrace:   "missingCloseBrace",
	KindMissingOpenBracket:  "missingOpenBracket",
	KindMissingCloseBracket: "missingCloseBracket",
	KindMissingColon:        "missingColon",
	KindMissingComma:        "missingComma",
	KindExtraComma:          "extraComma",
	KindCrossTypeClosure:    "crossTypeClosure",
	KindAutoClosedBracket:   "autoClosedBracket",
	KindInsertedColon:       "insertedColon",
	KindInsertedComma:       "insertedComma",

	KindUnterminatedString: "unterminatedString",
	KindUnquotedKey:        "unquotedKey",
	KindUnquotedValue:      "unquotedValue",
	KindInvalidEscape:      "invalidEscape",
	KindInvalidUnicode:     "invalidUnicode",
	KindUnescapedControl:   "unescapedControl",
	KindSingleQuotes:       "singleQuotes",
	KindSurrogateRepaired:  "surrogateRepaired",
	KindLoneSurrogate:      "loneSurrogate",

	KindLeadingPlus:        "leadingPlus",
	KindLeadingZeros:       "leadingZeros",
	KindBareDot:            "bareDot",
	KindTrailingDot:        "trailingDot",
	KindIncompleteExponent: "incompleteExponent",
	KindNumericSeparators:  "numericSeparators",
	KindHexNumber:          "hexNumber",
	KindOctalNumber:        "octalNumber",
	KindInvalidNumber:      "invalidNumber",

	KindNormalizedLiteral: "normalizedLiteral",
	KindCompletedLiteral:  "completedLiteral",
	KindSpacedLiteral:     "spacedLiteral",
	KindUnknownIdentifier: "unknownIdentifier",

	KindMultipleRoots:     "multipleRoots",
	KindTrailingContent:   "trailingContent",
	KindNonJSONWhitespace: "nonJSONWhitespace",
	KindDuplicateKey:      "duplicateKey",
	KindWrapNDJSON:        "wrapNDJSON",
	KindLimitReached:      "limitReached",
}

// String renders the kind by its public name, used both in
// detailed fix messages and validation error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Severity classifies a Kind for strict validation output.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// SeverityFor maps a fix Kind to its validation severity. ndjson
// indicates whether the ledger's NDJSON flag was set, since
// multipleRoots maps to info only in that case.
func SeverityFor(k Kind, ndjson bool) Severity {
	switch k {
	case KindDuplicateKey:
		return SeverityWarning
	case KindNonJSONWhitespace, KindWrapNDJSON:
		return SeverityInfo
	case KindMultipleRoots:
		if ndjson {
			return SeverityInfo
		}
		return SeverityError
	default:
		return SeverityError
	}
}
