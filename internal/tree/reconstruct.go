package tree

import (
	"strings"

	"github.com/flosch/jsonrepair/internal/ledger"
)

// indentUnit is the two-space-per-level indent the reconstructor uses.
const indentUnit = "  "

// Options controls the reconstructor's multi-root behavior; it mirrors
// the relevant fields of the public façade's Config.
type Options struct {
	WrapMultiRoot bool
	ForceNDJSON   bool
}

// Render walks roots and emits canonical, pretty-printed JSON text the
// way a template document's Execute walks its child nodes and
// joins their rendered output — except here the walk produces JSON
// layout decisions instead of executing template nodes. led is read
// for the NDJSON flag and receives the wrapNDJSON repair; it must be
// the same ledger the parser populated.
func Render(roots []*Node, opts Options, led *ledger.Ledger) string {
	if len(roots) == 0 {
		return "{}"
	}
	if len(roots) == 1 {
		return renderNode(roots[0], 0)
	}

	ndjson := led.NDJSON() || opts.ForceNDJSON
	if ndjson {
		led.Add(ledger.Fix{
			Kind:     ledger.KindWrapNDJSON,
			Position: roots[0].Start,
			Message:  "preserved newline-delimited layout for multiple root values",
		})
		lines := make([]string, len(roots))
		for i, r := range roots {
			lines[i] = renderNode(r, 0)
		}
		return strings.Join(lines, "\n")
	}

	if !opts.WrapMultiRoot {
		return renderNode(roots[0], 0)
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, r := range roots {
		b.WriteString(strings.Repeat(indentUnit, 1))
		b.WriteString(renderNode(r, 1))
		if i < len(roots)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}

func renderNode(n *Node, depth int) string {
	switch n.Kind {
	case KindObject:
		return renderObject(n, depth)
	case KindArray:
		return renderArray(n, depth)
	case KindString:
		return QuoteString(n.StringValue)
	case KindNumber:
		return n.NumberLexeme
	case KindBoolean:
		if n.BoolValue {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return "null"
	}
}

// renderObject always spreads members one per line; non-empty objects
// are never rendered inline, unlike short arrays.
func renderObject(n *Node, depth int) string {
	if len(n.Members) == 0 {
		return "{}"
	}
	inner := indentStr(depth + 1)
	var b strings.Builder
	b.WriteString("{\n")
	for i, m := range n.Members {
		b.WriteString(inner)
		b.WriteString(QuoteString(m.Key))
		b.WriteString(": ")
		b.WriteString(renderNode(m.Value, depth+1))
		if i < len(n.Members)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indentStr(depth))
	b.WriteString("}")
	return b.String()
}

// renderArray inlines the array when it has at most three elements and
// every element is a scalar or an empty container; otherwise it spreads
// one element per line.
func renderArray(n *Node, depth int) string {
	if len(n.Elements) == 0 {
		return "[]"
	}
	if shouldInline(n) {
		parts := make([]string, len(n.Elements))
		for i, e := range n.Elements {
			parts[i] = renderNode(e, depth)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}

	inner := indentStr(depth + 1)
	var b strings.Builder
	b.WriteString("[\n")
	for i, e := range n.Elements {
		b.WriteString(inner)
		b.WriteString(renderNode(e, depth+1))
		if i < len(n.Elements)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(indentStr(depth))
	b.WriteString("]")
	return b.String()
}

func shouldInline(n *Node) bool {
	if len(n.Elements) > 3 {
		return false
	}
	for _, e := range n.Elements {
		if !e.IsScalarOrEmpty() {
			return false
		}
	}
	return true
}

func indentStr(depth int) string {
	return strings.Repeat(indentUnit, depth)
}
