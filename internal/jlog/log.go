// Package jlog centralizes the engine's diagnostic logging on top of
// github.com/juju/loggo, the leveled logger declared in the original
// go.mod. Logging here is purely diagnostic: nothing in the public
// façade depends on it, mirroring how pongo2's own juju/loggo
// dependency never shapes template output.
package jlog

import "github.com/juju/loggo"

// Logger is the shared logger for the repair pipeline. Call sites use
// it the way a juju-stack service logs recoverable conditions: Tracef
// for per-token noise, Debugf for ledger/parser decisions, Warningf
// for conditions a caller should notice in their own logs.
var Logger = loggo.GetLogger("jsonrepair")
