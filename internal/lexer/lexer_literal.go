package lexer

import (
	"strings"

	"github.com/flosch/jsonrepair/internal/cursor"
	"github.com/flosch/jsonrepair/internal/ledger"
)

// lexIdentifierOrLiteral scans a run of identifier characters, applies
// the one-space keyword-rejoin look-ahead, and classifies the result as
// a recognized literal, a partial-prefix literal, or a plain identifier.
func (l *Lexer) lexIdentifierOrLiteral(start cursor.Position) Token {
	from := start.Offset
	l.scanIdentRun()
	text := l.cur.Slice(from, l.cur.Pos().Offset)

	spaced := false
	if l.cur.PeekRune() == ' ' && isIdentStart(l.cur.Peek(1)) {
		save := l.cur.Pos()
		l.cur.Advance(1) // the space
		secondFrom := l.cur.Pos().Offset
		l.scanIdentRun()
		second := l.cur.Slice(secondFrom, l.cur.Pos().Offset)
		merged := text + second
		if isKnownWord(strings.ToLower(merged)) {
			text = merged
			spaced = true
		} else {
			l.cur.RewindTo(save)
		}
	}

	lower := strings.ToLower(text)
	raw := text
	if spaced {
		raw = l.cur.Slice(from, l.cur.Pos().Offset)
	}

	if lv, ok := classifyWord(lower); ok {
		if spaced {
			l.led.Add(ledger.Fix{Kind: ledger.KindSpacedLiteral, Position: start, Message: "split keyword '" + raw + "' rejoined"})
		} else if needsNormalization(lower, lv) {
			l.led.Add(ledger.Fix{Kind: ledger.KindNormalizedLiteral, Position: start, Message: "'" + text + "' normalized to its JSON literal"})
		}
		return Token{Type: TokenLiteral, Start: start, Raw: raw, LiteralValue: lv}
	}

	if len(lower) >= 2 {
		if lv, ok := partialPrefixMatch(lower); ok {
			l.led.Add(ledger.Fix{Kind: ledger.KindCompletedLiteral, Position: start, Message: "'" + text + "' completed to a literal"})
			return Token{Type: TokenLiteral, Start: start, Raw: raw, LiteralValue: lv}
		}
	}

	l.led.Add(ledger.Fix{Kind: ledger.KindUnknownIdentifier, Position: start, Message: "unrecognized bare word '" + text + "'"})
	return Token{Type: TokenIdentifier, Start: start, Raw: raw, Identifier: text}
}

func (l *Lexer) scanIdentRun() {
	if !isIdentStart(l.cur.PeekRune()) {
		return
	}
	l.cur.Advance(1)
	for isIdentCont(l.cur.PeekRune()) {
		l.cur.Advance(1)
	}
}

func isKnownWord(lower string) bool {
	_, ok := classifyWord(lower)
	return ok
}

// classifyWord maps a lowercased word to its LiteralValue if it's one
// of the recognized keywords or aliases.
func classifyWord(lower string) (LiteralValue, bool) {
	switch {
	case trueAliases[lower]:
		return LiteralTrue, true
	case falseAliases[lower]:
		return LiteralFalse, true
	case nullAliases[lower]:
		return LiteralNull, true
	}
	if lv, ok := specialWords[lower]; ok {
		return lv, true
	}
	return 0, false
}

// needsNormalization reports whether the matched word differs from the
// canonical spelling of its literal, i.e. it's an alias like "yes" or
// "nil" rather than "true"/"false"/"null" themselves. undefined/nan/
// infinity report false here: the parser records their mapping to null,
// gated by normalize_special_literals.
func needsNormalization(lower string, lv LiteralValue) bool {
	switch lv {
	case LiteralTrue:
		return lower != "true"
	case LiteralFalse:
		return lower != "false"
	case LiteralNull:
		return lower != "null"
	default:
		return false
	}
}

// partialPrefixMatch implements the partial-prefix heuristic: a
// lowercased run of at least 2 characters that is a prefix of "true",
// "false" or "null" is treated as that literal.
func partialPrefixMatch(lower string) (LiteralValue, bool) {
	switch {
	case strings.HasPrefix("true", lower):
		return LiteralTrue, true
	case strings.HasPrefix("false", lower):
		return LiteralFalse, true
	case strings.HasPrefix("null", lower):
		return LiteralNull, true
	}
	return 0, false
}
