package parser

import (
	"github.com/flosch/jsonrepair/internal/lexer"
	"github.com/flosch/jsonrepair/internal/ledger"
	"github.com/flosch/jsonrepair/internal/tree"
)

type objectState int

const (
	objExpectKey objectState = iota
	objExpectColon
	objExpectValue
	objExpectCommaOrClose
)

// parseObject drives the object frame's state machine, cycling through
// key, colon, value, and comma-or-close expectations. The `{` token has
// already been peeked, not consumed, when this is called; the leading
// `{` is consumed here.
func (p *Parser) parseObject() *tree.Node {
	start := p.stream.Peek(0).Start
	p.stream.Consume() // '{'

	node := &tree.Node{Kind: tree.KindObject, Start: start}
	seen := map[string]bool{}
	lastIdx := -1

	// numberRun accumulates the comma-separated numbers parsed since the
	// most recent colon, so an unexpected ']' can be recognized as a
	// missing '[' and the run retroactively wrapped into an array (spec
	// §4.4 "Value parsing", §9 "Look-back for missing-open-bracket").
	var numberRun []*tree.Node

	state := objExpectKey
	for {
		tok := p.stream.Peek(0)

		switch state {
		case objExpectKey:
			switch tok.Type {
			case lexer.TokenString:
				p.stream.Consume()
				if seen[tok.StringValue] {
					p.led.Add(ledger.Fix{Kind: ledger.KindDuplicateKey, Position: tok.Start, Message: "duplicate object key '" + tok.StringValue + "'"})
				}
				seen[tok.StringValue] = true
				node.Members = append(node.Members, tree.Member{Key: tok.StringValue})
				lastIdx = len(node.Members) - 1
				numberRun = nil
				state = objExpectColon
			case lexer.TokenIdentifier:
				p.stream.Consume()
				p.led.Add(ledger.Fix{Kind: ledger.KindUnquotedKey, Position: tok.Start, Message: "unquoted key '" + tok.Identifier + "' quoted"})
				if seen[tok.Identifier] {
					p.led.Add(ledger.Fix{Kind: ledger.KindDuplicateKey, Position: tok.Start, Message: "duplicate object key '" + tok.Identifier + "'"})
				}
				seen[tok.Identifier] = true
				node.Members = append(node.Members, tree.Member{Key: tok.Identifier, KeyRaw: tok.Identifier})
				lastIdx = len(node.Members) - 1
				numberRun = nil
				state = objExpectColon
			case lexer.TokenRBrace:
				p.stream.Consume()
				node.End = tok.Start
				return node
			case lexer.TokenComma:
				p.stream.Consume()
				p.led.Add(ledger.Fix{Kind: ledger.KindExtraComma, Position: tok.Start, Message: "stray comma before object key"})
			case lexer.TokenEOF:
				node.End = tok.Start
				p.led.Add(ledger.Fix{Kind: ledger.KindMissingCloseBrace, Position: tok.Start, Message: "object was never closed"})
				return node
			default:
				p.stream.Consume()
			}

		case objExpectColon:
			if tok.Type == lexer.TokenColon {
				p.stream.Consume()
			} else {
				p.led.Add(ledger.Fix{Kind: ledger.KindMissingColon, Position: tok.Start, Message: "missing ':' after object key"})
			}
			state = objExpectValue

		case objExpectValue:
			switch {
			case tok.Type == lexer.TokenRBrace:
				p.stream.Consume()
				if lastIdx >= 0 && node.Members[lastIdx].Value == nil {
					node.Members[lastIdx].Value = &tree.Node{Kind: tree.KindNull, Start: tok.Start}
				}
				node.End = tok.Start
				return node
			case tok.Type == lexer.TokenRBracket:
				// Missing-open-bracket heuristic: an unexpected ']' right
				// after a value position only makes sense if we're sitting
				// on a run of bare numbers that should have been an array.
				if len(numberRun) > 0 {
					p.stream.Consume()
					arr := wrapNumberRun(numberRun)
					if lastIdx >= 0 {
						node.Members[lastIdx].Value = arr
					}
					p.led.Add(ledger.Fix{Kind: ledger.KindMissingOpenBracket, Position: arr.Start, Message: "missing '[' before a run of numbers inferred from context"})
					numberRun = nil
					state = objExpectCommaOrClose
				} else {
					p.stream.Consume()
					if lastIdx >= 0 && node.Members[lastIdx].Value == nil {
						node.Members[lastIdx].Value = &tree.Node{Kind: tree.KindNull, Start: tok.Start}
					}
					p.led.Add(ledger.Fix{Kind: ledger.KindCrossTypeClosure, Position: tok.Start, Message: "object closed with ']'"})
					node.End = tok.Start
					return node
				}
			case tok.Type == lexer.TokenEOF:
				if lastIdx >= 0 && node.Members[lastIdx].Value == nil {
					node.Members[lastIdx].Value = &tree.Node{Kind: tree.KindNull, Start: tok.Start}
				}
				p.led.Add(ledger.Fix{Kind: ledger.KindMissingCloseBrace, Position: tok.Start, Message: "object was never closed"})
				node.End = tok.Start
				return node
			default:
				val := p.parseValue()
				if lastIdx >= 0 {
					node.Members[lastIdx].Value = val
				}
				if val.Kind == tree.KindNumber {
					numberRun = []*tree.Node{val}
				} else {
					numberRun = nil
				}
				state = objExpectCommaOrClose
			}

		case objExpectCommaOrClose:
			switch {
			case tok.Type == lexer.TokenComma && len(numberRun) > 0 && p.stream.Peek(1).Type == lexer.TokenNumber:
				// Part of a suspected missing-open-bracket numeric run:
				// keep collecting instead of treating this as the next
				// object member.
				p.stream.Consume()
				numTok := p.stream.Consume()
				numberRun = append(numberRun, &tree.Node{Kind: tree.KindNumber, Start: numTok.Start, NumberLexeme: numTok.NumberCanonical})
			case tok.Type == lexer.TokenComma:
				p.stream.Consume()
				numberRun = nil
				if p.stream.Peek(0).Type == lexer.TokenRBrace {
					p.led.Add(ledger.Fix{Kind: ledger.KindExtraComma, Position: tok.Start, Message: "trailing comma before '}'"})
				}
				state = objExpectKey
			case tok.Type == lexer.TokenRBrace:
				p.stream.Consume()
				node.End = tok.Start
				return node
			case tok.Type == lexer.TokenRBracket:
				if len(numberRun) > 0 {
					p.stream.Consume()
					arr := wrapNumberRun(numberRun)
					if lastIdx >= 0 {
						node.Members[lastIdx].Value = arr
					}
					p.led.Add(ledger.Fix{Kind: ledger.KindMissingOpenBracket, Position: arr.Start, Message: "missing '[' before a run of numbers inferred from context"})
					numberRun = nil
					continue
				}
				p.stream.Consume()
				p.led.Add(ledger.Fix{Kind: ledger.KindCrossTypeClosure, Position: tok.Start, Message: "object closed with ']'"})
				node.End = tok.Start
				return node
			case tok.Type == lexer.TokenString || tok.Type == lexer.TokenIdentifier:
				p.led.Add(ledger.Fix{Kind: ledger.KindMissingComma, Position: tok.Start, Message: "missing ',' between object members"})
				numberRun = nil
				state = objExpectKey
			case tok.Type == lexer.TokenEOF:
				p.led.Add(ledger.Fix{Kind: ledger.KindMissingCloseBrace, Position: tok.Start, Message: "object was never closed"})
				node.End = tok.Start
				return node
			default:
				p.stream.Consume()
			}
		}
	}
}

// wrapNumberRun synthesizes the array node the missing-open-bracket
// heuristic recovers: the array must actually contain the parsed
// prefix numbers, not be left empty.
func wrapNumberRun(nums []*tree.Node) *tree.Node {
	return &tree.Node{Kind: tree.KindArray, Start: nums[0].Start, End: nums[len(nums)-1].Start, Elements: nums}
}
