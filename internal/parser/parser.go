// Package parser implements the single-pass state-machine parser: it
// consumes a token stream once, left to right, without
// backtracking, and builds a best-effort tree.Node forest plus fix
// records. Its Peek/Consume vocabulary over the token stream is the
// direct descendant of a template parser's Peek/Consume vocabulary
// operating over *Token; what changes is the grammar it drives (a
// forgiving JSON grammar instead of template tag syntax) and that it
// never returns a Go error — every malformed input reaches a terminal
// state that still yields a tree.
package parser

import (
	"strings"

	"github.com/flosch/jsonrepair/internal/config"
	"github.com/flosch/jsonrepair/internal/ledger"
	"github.com/flosch/jsonrepair/internal/lexer"
	"github.com/flosch/jsonrepair/internal/tree"
)

// Parser drives a state machine over a token stream, accumulating
// repairs on led and building a tree.Node forest.
type Parser struct {
	stream *lexer.Stream
	led    *ledger.Ledger
	opts   config.Options
	text   string // raw input, used only for NDJSON line-count corroboration
}

// New returns a Parser over tokens (typically the output of a
// lexer.Lexer). text is the original source, kept only to count
// non-empty lines for NDJSON auto-detection.
func New(tokens []lexer.Token, text string, led *ledger.Ledger, opts config.Options) *Parser {
	return &Parser{stream: lexer.NewStream(tokens), led: led, opts: opts, text: text}
}

// Parse consumes the entire token stream and returns the root values
// found, recording every structural repair and the NDJSON/multipleRoots
// flag on the ledger.
func (p *Parser) Parse() []*tree.Node {
	var roots []*tree.Node
	for {
		p.stream.SkipTrivia()
		if p.stream.AtEOF() {
			break
		}
		tok := p.stream.Peek(0)
		if len(roots) > 0 && !isValueStart(tok) {
			p.led.Add(ledger.Fix{
				Kind: ledger.KindTrailingContent, Position: tok.Start,
				Message: "unexpected content after the first complete value",
			})
			break
		}
		roots = append(roots, p.parseValue())
	}

	p.finalizeMultiRoot(roots)

	maxDepth := 0
	for _, r := range roots {
		if d := r.Depth(); d > maxDepth {
			maxDepth = d
		}
	}
	p.led.SetMaxDepth(maxDepth)

	return roots
}

// finalizeMultiRoot decides whether a multi-root input should be
// treated as newline-delimited JSON: ndjson_mode forces the NDJSON flag
// outright; without it, detection requires the root count to equal the
// number of non-empty source lines.
func (p *Parser) finalizeMultiRoot(roots []*tree.Node) {
	if len(roots) <= 1 {
		return
	}
	if p.opts.NDJSONMode {
		p.led.SetNDJSON(true)
		return
	}
	if countNonEmptyLines(p.text) == len(roots) {
		p.led.SetNDJSON(true)
		return
	}
	p.led.Add(ledger.Fix{
		Kind: ledger.KindMultipleRoots, Position: roots[0].Start,
		Message: "input contained more than one root value",
	})
}

func countNonEmptyLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

// isValueStart reports whether tok can begin a value.
func isValueStart(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.TokenLBrace, lexer.TokenLBracket, lexer.TokenString,
		lexer.TokenNumber, lexer.TokenLiteral, lexer.TokenIdentifier:
		return true
	default:
		return false
	}
}

// parseValue parses exactly one value starting at the current stream
// position, recursing into parseObject/parseArray for containers.
func (p *Parser) parseValue() *tree.Node {
	tok := p.stream.Peek(0)
	switch tok.Type {
	case lexer.TokenLBrace:
		return p.parseObject()
	case lexer.TokenLBracket:
		return p.parseArray()
	case lexer.TokenString:
		p.stream.Consume()
		return &tree.Node{Kind: tree.KindString, Start: tok.Start, StringValue: tok.StringValue, RawLexeme: tok.Raw}
	case lexer.TokenNumber:
		p.stream.Consume()
		return &tree.Node{Kind: tree.KindNumber, Start: tok.Start, NumberLexeme: tok.NumberCanonical}
	case lexer.TokenLiteral:
		p.stream.Consume()
		return p.literalNode(tok)
	case lexer.TokenIdentifier:
		p.stream.Consume()
		p.led.Add(ledger.Fix{Kind: ledger.KindUnquotedValue, Position: tok.Start, Message: "unquoted bare word treated as a string value"})
		return &tree.Node{Kind: tree.KindString, Start: tok.Start, StringValue: tok.Identifier}
	default:
		// Unreachable from a value-start position; collapse to a bounded
		// one-token skip and fall back to null.
		p.stream.Consume()
		return &tree.Node{Kind: tree.KindNull, Start: tok.Start}
	}
}

func (p *Parser) literalNode(tok lexer.Token) *tree.Node {
	switch tok.LiteralValue {
	case lexer.LiteralTrue:
		return &tree.Node{Kind: tree.KindBoolean, Start: tok.Start, BoolValue: true}
	case lexer.LiteralFalse:
		return &tree.Node{Kind: tree.KindBoolean, Start: tok.Start, BoolValue: false}
	default:
		// null, undefined, nan, infinity all canonicalize to null.
		// normalize_special_literals governs whether that mapping is
		// itself reported as a repair for undefined, nan and infinity;
		// the lexer leaves those three to this check.
		if tok.LiteralValue != lexer.LiteralNull && p.opts.NormalizeSpecialLiterals {
			p.led.Add(ledger.Fix{Kind: ledger.KindNormalizedLiteral, Position: tok.Start, Message: "special literal normalized to null"})
		}
		return &tree.Node{Kind: tree.KindNull, Start: tok.Start}
	}
}
