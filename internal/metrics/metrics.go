// Package metrics turns a finalized repair ledger into the read-only
// counters the public façade's FixResult reports, the same
// accumulate-then-snapshot split the ledger itself uses between Add and
// its CountByKind/MaxDepth/TokensProcessed finalizers.
package metrics

import (
	"time"

	"github.com/flosch/jsonrepair/internal/ledger"
)

// Snapshot is the read-only view of a finalized ledger's counters,
// shaped to match the metrics object of a FixResult.
type Snapshot struct {
	FixCount        int
	FixCountByKind  map[string]uint32
	MaxDepth        int
	TokensProcessed int
	ElapsedMS       float64
	HitMaxFixes     bool
}

// Collect snapshots led's finalized counters. elapsed is the duration
// of the whole Fix call, measured by the façade since
// this package has no business owning a clock.
func Collect(led *ledger.Ledger, elapsed time.Duration) Snapshot {
	return Snapshot{
		FixCount:        led.Len(),
		FixCountByKind:  led.CountByKind(),
		MaxDepth:        led.MaxDepth(),
		TokensProcessed: led.TokensProcessed(),
		ElapsedMS:       float64(elapsed) / float64(time.Millisecond),
		HitMaxFixes:     led.HitMax(),
	}
}
