package lexer

import (
	"strconv"
	"strings"

	"github.com/flosch/jsonrepair/internal/config"
	"github.com/flosch/jsonrepair/internal/cursor"
	"github.com/flosch/jsonrepair/internal/ledger"
)

// keyword/alias tables for literal lexing. Grouped by the canonical
// token they resolve to.
var (
	trueAliases  = map[string]bool{"true": true, "yes": true, "on": true}
	falseAliases = map[string]bool{"false": true, "no": true, "off": true}
	nullAliases  = map[string]bool{"null": true, "nil": true, "none": true}
	specialWords = map[string]LiteralValue{
		"undefined": LiteralUndefined,
		"undef":     LiteralUndefined,
		"nan":       LiteralNaN,
		"infinity":  LiteralInfinity,
		"inf":       LiteralInfinity,
	}
)

const identChars = "_$-"

func isIdentStart(r rune) bool {
	return isLetter(r) || r == '_' || r == '$'
}

func isIdentCont(r rune) bool {
	return isLetter(r) || isDigit(r) || strings.ContainsRune(identChars, r)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Lexer is the tokenizer (C2). next dispatches on the current rune to
// one lex* function per token class, the shape of a template lexer
// retargeted from template syntax to a forgiving JSON grammar.
type Lexer struct {
	cur    *cursor.Cursor
	led    *ledger.Ledger
	opts   config.Options
	tokens []Token
}

// New returns a Lexer over input. led receives every repair the
// tokenizer makes, in left-to-right discovery order.
func New(input string, led *ledger.Ledger, opts config.Options) *Lexer {
	return &Lexer{cur: cursor.New(input), led: led, opts: opts}
}

// Run tokenizes the entire input and returns the token sequence,
// terminated by a TokenEOF token.
func (l *Lexer) Run() []Token {
	for {
		tok, done := l.next()
		l.tokens = append(l.tokens, tok)
		if done {
			break
		}
	}
	return l.tokens
}

// next produces the single next token (or the terminal EOF token).
func (l *Lexer) next() (Token, bool) {
	if l.cur.Done() {
		return Token{Type: TokenEOF, Start: l.cur.Pos()}, true
	}

	start := l.cur.Pos()
	r := l.cur.PeekRune()

	switch r {
	case '{':
		return l.emitSimple(TokenLBrace, start), false
	case '}':
		return l.emitSimple(TokenRBrace, start), false
	case '[':
		return l.emitSimple(TokenLBracket, start), false
	case ']':
		return l.emitSimple(TokenRBracket, start), false
	case ':':
		return l.emitSimple(TokenColon, start), false
	case ',':
		return l.emitSimple(TokenComma, start), false
	case '"', '\'':
		return l.lexString(start), false
	}

	if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
		return l.lexWhitespace(start), false
	}
	if r == 0xA0 {
		l.cur.Advance(1)
		l.led.Add(ledger.Fix{Kind: ledger.KindNonJSONWhitespace, Position: start, Message: "non-breaking space treated as whitespace"})
		return Token{Type: TokenWhitespace, Start: start, Raw: " "}, false
	}
	if r == '/' && (l.cur.Peek(1) == '/' || l.cur.Peek(1) == '*') {
		return l.lexComment(start), false
	}
	if isDigit(r) || ((r == '+' || r == '-') && isNumberStart(l.cur, 1)) || (r == '.' && isDigit(l.cur.Peek(1))) {
		return l.lexNumber(start), false
	}
	if isIdentStart(r) {
		return l.lexIdentifierOrLiteral(start), false
	}

	// Unrecognized single character: emit it as a one-character
	// identifier; the parser then handles it like any other bare word.
	l.cur.Advance(1)
	raw := l.cur.Slice(offsetOf(start), l.cur.Pos().Offset)
	return Token{Type: TokenIdentifier, Start: start, Raw: raw, Identifier: raw}, false
}

func isNumberStart(c *cursor.Cursor, k int) bool {
	return isDigit(c.Peek(k)) || (c.Peek(k) == '.' && isDigit(c.Peek(k+1)))
}

func offsetOf(p cursor.Position) int { return p.Offset }

func (l *Lexer) emitSimple(t TokenType, start cursor.Position) Token {
	raw := string(l.cur.PeekRune())
	l.cur.Advance(1)
	return Token{Type: t, Start: start, Raw: raw}
}

// lexWhitespace consumes a run of ASCII space/tab/CR/LF.
func (l *Lexer) lexWhitespace(start cursor.Position) Token {
	from := start.Offset
	for {
		r := l.cur.PeekRune()
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			l.cur.Advance(1)
			continue
		}
		break
	}
	raw := l.cur.Slice(from, l.cur.Pos().Offset)
	return Token{Type: TokenWhitespace, Start: start, Raw: raw}
}

// lexComment consumes "//...<EOL>" or "/*...*/" (unclosed block comments
// run to end-of-input).
func (l *Lexer) lexComment(start cursor.Position) Token {
	from := start.Offset
	l.cur.Advance(2) // '//' or '/*'
	if l.cur.Slice(from, from+2) == "//" {
		for {
			r := l.cur.PeekRune()
			if r == cursor.EOF || r == '\n' {
				break
			}
			l.cur.Advance(1)
		}
	} else {
		for {
			if l.cur.Done() {
				break
			}
			if l.cur.PeekRune() == '*' && l.cur.Peek(1) == '/' {
				l.cur.Advance(2)
				break
			}
			l.cur.Advance(1)
		}
	}
	raw := l.cur.Slice(from, l.cur.Pos().Offset)
	return Token{Type: TokenComment, Start: start, Raw: raw}
}

// lexString lexes a quoted string, handling both JSON-standard and
// forgiving escapes.
func (l *Lexer) lexString(start cursor.Position) Token {
	opener := l.cur.PeekRune()
	from := start.Offset
	l.cur.Advance(1)

	var flags StringFlags
	if opener == '\'' {
		flags |= FlagUsedSingleQuotes
	}

	var value strings.Builder
	unterminated := false

loop:
	for {
		r := l.cur.PeekRune()
		switch {
		case r == cursor.EOF:
			unterminated = true
			break loop
		case r == opener:
			l.cur.Advance(1)
			break loop
		case r == '\\':
			pos := l.cur.Pos()
			l.cur.Advance(1)
			l.lexEscape(&value, &flags, pos)
		case r < 0x20:
			flags |= FlagHadUnescapedControls
			l.led.Add(ledger.Fix{
				Kind: ledger.KindUnescapedControl, Position: l.cur.Pos(),
				Message: "unescaped control character inside string",
			})
			value.WriteRune(r)
			l.cur.Advance(1)
		default:
			value.WriteRune(r)
			l.cur.Advance(1)
		}
	}

	raw := l.cur.Slice(from, l.cur.Pos().Offset)
	if unterminated {
		flags |= FlagWasUnterminated
		raw += string(opener)
		l.led.Add(ledger.Fix{
			Kind: ledger.KindUnterminatedString, Position: start,
			Message: "string was not closed; a closing quote was added", Original: raw[:len(raw)-1],
		})
	}
	if flags.Has(FlagUsedSingleQuotes) {
		l.led.Add(ledger.Fix{Kind: ledger.KindSingleQuotes, Position: start, Message: "single-quoted string rewritten with double quotes"})
	}

	return Token{
		Type: TokenString, Start: start, Raw: raw,
		StringValue: value.String(), StringFlags: flags,
	}
}

// lexEscape handles the content right after a consumed backslash.
// pos is the position of the backslash itself, used for fix records.
func (l *Lexer) lexEscape(value *strings.Builder, flags *StringFlags, pos cursor.Position) {
	r := l.cur.PeekRune()
	switch r {
	case '"', '\\', '/':
		value.WriteRune(r)
		l.cur.Advance(1)
	case 'b':
		value.WriteByte('\b')
		l.cur.Advance(1)
	case 'f':
		value.WriteByte('\f')
		l.cur.Advance(1)
	case 'n':
		value.WriteByte('\n')
		l.cur.Advance(1)
	case 'r':
		value.WriteByte('\r')
		l.cur.Advance(1)
	case 't':
		value.WriteByte('\t')
		l.cur.Advance(1)
	case 'u':
		l.cur.Advance(1)
		l.lexUnicodeEscape(value, flags, pos)
	case cursor.EOF:
		// Backslash at end of input: leave as-is, the outer loop's
		// EOF branch will mark the string unterminated.
	default:
		*flags |= FlagHadInvalidEscapes
		l.led.Add(ledger.Fix{
			Kind: ledger.KindInvalidEscape, Position: pos,
			Message: "unrecognized escape sequence; backslash dropped",
		})
		value.WriteRune(r)
		l.cur.Advance(1)
	}
}

// lexUnicodeEscape handles \uXXXX, including surrogate-pair combination.
func (l *Lexer) lexUnicodeEscape(value *strings.Builder, flags *StringFlags, pos cursor.Position) {
	unit, ok := l.readHex4()
	if !ok {
		*flags |= FlagHadInvalidUnicode
		l.led.Add(ledger.Fix{Kind: ledger.KindInvalidUnicode, Position: pos, Message: "invalid \\u escape; replaced with U+FFFD"})
		value.WriteRune('�')
		return
	}

	switch {
	case unit >= 0xD800 && unit <= 0xDBFF: // high surrogate
		if l.cur.PeekRune() == '\\' && l.cur.Peek(1) == 'u' {
			save := l.cur.Pos()
			l.cur.Advance(2)
			lo, ok := l.readHex4()
			if ok && lo >= 0xDC00 && lo <= 0xDFFF {
				combined := rune(0x10000 + (int(unit)-0xD800)*0x400 + (int(lo) - 0xDC00))
				*flags |= FlagHadSurrogatePair
				l.led.Add(ledger.Fix{Kind: ledger.KindSurrogateRepaired, Position: pos, Message: "combined surrogate pair escape into one code point"})
				value.WriteRune(combined)
				return
			}
			// Not a valid low surrogate: rewind and treat the high
			// surrogate as lone.
			l.rewindTo(save)
		}
		*flags |= FlagHadLoneSurrogate
		l.led.Add(ledger.Fix{Kind: ledger.KindLoneSurrogate, Position: pos, Message: "lone high surrogate replaced with U+FFFD"})
		value.WriteRune('�')
	case unit >= 0xDC00 && unit <= 0xDFFF: // lone low surrogate
		*flags |= FlagHadLoneSurrogate
		l.led.Add(ledger.Fix{Kind: ledger.KindLoneSurrogate, Position: pos, Message: "lone low surrogate replaced with U+FFFD"})
		value.WriteRune('�')
	default:
		value.WriteRune(rune(unit))
	}
}

// readHex4 consumes exactly 4 hex digits and returns their value, or
// false (consuming nothing) if the next 4 runes aren't all hex digits.
func (l *Lexer) readHex4() (uint32, bool) {
	for k := 0; k < 4; k++ {
		if !isHexDigit(l.cur.Peek(k)) {
			return 0, false
		}
	}
	start := l.cur.Pos().Offset
	l.cur.Advance(4)
	text := l.cur.Slice(start, l.cur.Pos().Offset)
	v, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// rewindTo restores the cursor to a previously captured position. Only
// ever used to undo a tentative low-surrogate lookahead, so it never
// needs to rewind line/column bookkeeping across a line break.
func (l *Lexer) rewindTo(p cursor.Position) {
	l.cur.RewindTo(p)
}
