// Package ledger implements the repair ledger (C5): an
// append-only, capped record of every repair a fix pass makes, plus the
// metrics finalized from it. The accumulate-then-finalize shape mirrors
// a template engine's node wrapper, which collects child
// nodes during parsing and is only queried as a whole once parsing of
// its block finishes.
package ledger

import (
	"sort"

	"github.com/flosch/jsonrepair/internal/jlog"
	"github.com/juju/errors"
)

// DefaultMaxFixes is the ledger's default cap.
const DefaultMaxFixes = 1000

// Ledger accumulates Fix records up to a hard cap. Once the cap is
// reached a single terminal limitReached record is appended and further
// Add calls are silently dropped.
type Ledger struct {
	maxFixes int
	fixes    []Fix
	hitMax   bool
	ndjson   bool
	maxDepth int
	tokens   int
}

// New returns a Ledger capped at maxFixes. A maxFixes <= 0 falls back
// to DefaultMaxFixes, the same defensive fallback a parser applies when
// handed a non-positive limit.
func New(maxFixes int) *Ledger {
	if maxFixes <= 0 {
		maxFixes = DefaultMaxFixes
	}
	return &Ledger{maxFixes: maxFixes, fixes: make([]Fix, 0, 16)}
}

// Add appends a Fix unless the cap has already been hit. Reaching the
// cap on this call appends one KindLimitReached record instead of fix
// and marks the ledger as saturated; errors.Annotatef is used so a caller
// inspecting a bug report sees where the overflow was first observed,
// in the style of an annotated-error wrapping convention.
func (l *Ledger) Add(fix Fix) {
	if l.hitMax {
		return
	}
	if len(l.fixes) >= l.maxFixes {
		l.hitMax = true
		l.fixes = append(l.fixes, Fix{
			Kind:     KindLimitReached,
			Position: fix.Position,
			Message:  "maximum number of repairs reached; remaining issues were not recorded",
		})
		jlog.Logger.Debugf("%v", errors.Annotatef(errCapReached, "ledger capped at %d fixes", l.maxFixes))
		return
	}
	l.fixes = append(l.fixes, fix)
}

var errCapReached = errors.New("fix cap reached")

// Len returns the number of recorded fixes, including a trailing
// KindLimitReached record if the cap was hit.
func (l *Ledger) Len() int {
	return len(l.fixes)
}

// Fixes returns the recorded fixes left-to-right by input offset. The
// sort is stable, so at the same offset tokenizer repairs stay ahead of
// parser repairs and parser repairs ahead of reconstructor repairs; a
// terminal KindLimitReached record stays last.
func (l *Ledger) Fixes() []Fix {
	out := make([]Fix, len(l.fixes))
	copy(out, l.fixes)
	n := len(out)
	if l.hitMax {
		n--
	}
	sort.SliceStable(out[:n], func(i, j int) bool {
		return out[i].Position.Offset < out[j].Position.Offset
	})
	return out
}

// HitMax reports whether the cap was reached.
func (l *Ledger) HitMax() bool {
	return l.hitMax
}

// SetNDJSON records whether the parser detected an NDJSON-shaped
// multi-root input.
func (l *Ledger) SetNDJSON(v bool) {
	l.ndjson = v
}

// NDJSON reports the NDJSON flag set by SetNDJSON.
func (l *Ledger) NDJSON() bool {
	return l.ndjson
}

// SetMaxDepth records the maximum tree depth observed, used by the
// metrics payload.
func (l *Ledger) SetMaxDepth(d int) {
	if d > l.maxDepth {
		l.maxDepth = d
	}
}

// SetTokensProcessed records how many tokens the tokenizer produced,
// used by the metrics payload and by the "bounded work" testable
// property.
func (l *Ledger) SetTokensProcessed(n int) {
	l.tokens = n
}

// CountByKind returns a map from fix-kind name to occurrence count,
// computed at finalization.
func (l *Ledger) CountByKind() map[string]uint32 {
	counts := make(map[string]uint32, len(l.fixes))
	for _, f := range l.fixes {
		counts[f.Kind.String()]++
	}
	return counts
}

// MaxDepth returns the deepest tree level observed.
func (l *Ledger) MaxDepth() int {
	return l.maxDepth
}

// TokensProcessed returns the token count recorded via
// SetTokensProcessed.
func (l *Ledger) TokensProcessed() int {
	return l.tokens
}
