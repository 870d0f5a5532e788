package ledger

import (
	"fmt"

	"github.com/flosch/jsonrepair/internal/cursor"
)

// Fix is a single categorized repair record.
type Fix struct {
	Kind        Kind
	Position    cursor.Position
	Message     string
	Original    string
	Replacement string
}

// Short renders the human-facing one-line message used in
// FixResult.Fixes.
func (f Fix) Short() string {
	return f.Message
}

// Detailed renders "[<Kind>] Line L:C - <message>" for verbose output.
func (f Fix) Detailed() string {
	return fmt.Sprintf("[%s] Line %d:%d - %s", f.Kind, f.Position.Line, f.Position.Column, f.Message)
}
