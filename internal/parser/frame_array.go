package parser

import (
	"github.com/flosch/jsonrepair/internal/lexer"
	"github.com/flosch/jsonrepair/internal/ledger"
	"github.com/flosch/jsonrepair/internal/tree"
)

type arrayState int

const (
	arrExpectValue arrayState = iota
	arrExpectCommaOrClose
)

// parseArray drives the array frame's state machine, the array-side
// counterpart of parseObject's transition table.
func (p *Parser) parseArray() *tree.Node {
	start := p.stream.Peek(0).Start
	p.stream.Consume() // '['

	node := &tree.Node{Kind: tree.KindArray, Start: start}
	state := arrExpectValue

	for {
		tok := p.stream.Peek(0)

		switch state {
		case arrExpectValue:
			switch tok.Type {
			case lexer.TokenRBracket:
				p.stream.Consume()
				node.End = tok.Start
				return node
			case lexer.TokenRBrace:
				p.stream.Consume()
				p.led.Add(ledger.Fix{Kind: ledger.KindCrossTypeClosure, Position: tok.Start, Message: "array closed with '}'"})
				node.End = tok.Start
				return node
			case lexer.TokenComma:
				p.stream.Consume()
				p.led.Add(ledger.Fix{Kind: ledger.KindExtraComma, Position: tok.Start, Message: "stray comma before array element"})
			case lexer.TokenEOF:
				p.led.Add(ledger.Fix{Kind: ledger.KindMissingCloseBracket, Position: tok.Start, Message: "array was never closed"})
				node.End = tok.Start
				return node
			default:
				val := p.parseValue()
				node.Elements = append(node.Elements, val)
				state = arrExpectCommaOrClose
			}

		case arrExpectCommaOrClose:
			switch tok.Type {
			case lexer.TokenComma:
				p.stream.Consume()
				if p.stream.Peek(0).Type == lexer.TokenRBracket {
					p.led.Add(ledger.Fix{Kind: ledger.KindExtraComma, Position: tok.Start, Message: "trailing comma before ']'"})
				}
				state = arrExpectValue
			case lexer.TokenRBracket:
				p.stream.Consume()
				node.End = tok.Start
				return node
			case lexer.TokenRBrace:
				p.stream.Consume()
				p.led.Add(ledger.Fix{Kind: ledger.KindCrossTypeClosure, Position: tok.Start, Message: "array closed with '}'"})
				node.End = tok.Start
				return node
			case lexer.TokenEOF:
				p.led.Add(ledger.Fix{Kind: ledger.KindMissingCloseBracket, Position: tok.Start, Message: "array was never closed"})
				node.End = tok.Start
				return node
			default:
				// A value-start token here means a comma was omitted
				// between elements.
				if isValueStart(tok) {
					p.led.Add(ledger.Fix{Kind: ledger.KindMissingComma, Position: tok.Start, Message: "missing ',' between array elements"})
					state = arrExpectValue
				} else {
					p.stream.Consume()
				}
			}
		}
	}
}
