package jsonrepair

import (
	"time"

	"github.com/flosch/jsonrepair/internal/config"
	"github.com/flosch/jsonrepair/internal/ledger"
	"github.com/flosch/jsonrepair/internal/lexer"
	"github.com/flosch/jsonrepair/internal/metrics"
	"github.com/flosch/jsonrepair/internal/parser"
	"github.com/flosch/jsonrepair/internal/tree"
)

// Config is the public-facing configuration for Fix.
type Config struct {
	// WrapMultiRoot wraps multiple root values in a top-level array when
	// true; when false, only the first root is returned. Ignored when
	// the input is detected (or forced) as NDJSON.
	WrapMultiRoot bool
	// NDJSONMode forces newline-delimited output for multi-root input,
	// bypassing the line-count corroboration auto-detection normally
	// requires.
	NDJSONMode bool
	// NormalizeSpecialLiterals maps undefined/NaN/Infinity to null and
	// records the substitution as a repair.
	NormalizeSpecialLiterals bool
	// PreserveNumberLexemes keeps legal number spellings unchanged
	// (reserved for future lexeme-preserving canonicalization modes;
	// the current reconstructor always emits the canonical lexeme the
	// tokenizer already computed).
	PreserveNumberLexemes bool
	// MaxFixes caps the number of repair records kept in the ledger.
	MaxFixes int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	d := config.Default()
	return Config{
		WrapMultiRoot:            d.WrapMultiRoot,
		NDJSONMode:               d.NDJSONMode,
		NormalizeSpecialLiterals: d.NormalizeSpecialLiterals,
		PreserveNumberLexemes:    d.PreserveNumberLexemes,
		MaxFixes:                 d.MaxFixes,
	}
}

func (c Config) toOptions() config.Options {
	return config.Options{
		WrapMultiRoot:            c.WrapMultiRoot,
		NDJSONMode:               c.NDJSONMode,
		NormalizeSpecialLiterals: c.NormalizeSpecialLiterals,
		PreserveNumberLexemes:    c.PreserveNumberLexemes,
		MaxFixes:                 c.MaxFixes,
	}
}

// Metrics is the metrics object of a FixResult.
type Metrics struct {
	FixCount        int
	FixCountByKind  map[string]uint32
	MaxDepth        int
	TokensProcessed int
	ElapsedMS       float64
	HitMaxFixes     bool
}

// FixResult is the outcome of a Fix call.
type FixResult struct {
	Fixed            string
	WasFixed         bool
	Messages         []string
	DetailedMessages []string
	Metrics          Metrics
}

// Severity classifies a ValidationError.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

// ValidationError is one issue found by Validate or Parse.
type ValidationError struct {
	Line       int
	Column     int
	Message    string
	Severity   Severity
	Suggestion string
}

// pipeline runs the tokenizer and parser stages and returns the roots plus the ledger that
// accumulated every repair; shared by Fix, Validate, and Parse so the
// three operations can never drift out of sync with each other.
func pipeline(text string, opts config.Options) ([]*tree.Node, *ledger.Ledger) {
	led := ledger.New(opts.MaxFixes)
	toks := lexer.New(text, led, opts).Run()
	led.SetTokensProcessed(len(toks))
	roots := parser.New(toks, text, led, opts).Parse()
	return roots, led
}

// Fix runs the full repair pipeline and never fails: every issue the
// tokenizer or parser encounters becomes a ledger entry instead of an
// aborted call.
func Fix(text string, cfg Config) FixResult {
	start := time.Now()
	opts := cfg.toOptions()
	roots, led := pipeline(text, opts)

	fixed := tree.Render(roots, tree.Options{WrapMultiRoot: opts.WrapMultiRoot}, led)

	messages := make([]string, 0, led.Len())
	detailed := make([]string, 0, led.Len())
	for _, f := range led.Fixes() {
		messages = append(messages, f.Short())
		detailed = append(detailed, f.Detailed())
	}

	return FixResult{
		Fixed:            fixed,
		WasFixed:         led.Len() > 0,
		Messages:         messages,
		DetailedMessages: detailed,
		Metrics:          toPublicMetrics(metrics.Collect(led, time.Since(start))),
	}
}

func toPublicMetrics(s metrics.Snapshot) Metrics {
	return Metrics{
		FixCount:        s.FixCount,
		FixCountByKind:  s.FixCountByKind,
		MaxDepth:        s.MaxDepth,
		TokensProcessed: s.TokensProcessed,
		ElapsedMS:       s.ElapsedMS,
		HitMaxFixes:     s.HitMaxFixes,
	}
}

// Validate runs the pipeline in effectively strict mode and reports
// every repair the engine would otherwise have silently applied as a
// ValidationError instead.
func Validate(text string) []ValidationError {
	opts := config.Default()
	_, led := pipeline(text, opts)

	errs := make([]ValidationError, 0, led.Len())
	for _, f := range led.Fixes() {
		sev := ledger.SeverityFor(f.Kind, led.NDJSON())
		errs = append(errs, ValidationError{
			Line:       f.Position.Line,
			Column:     f.Position.Column,
			Message:    f.Message,
			Severity:   Severity(sev),
			Suggestion: f.Replacement,
		})
	}
	return errs
}

// ParseResult is the outcome of a strict Parse call.
type ParseResult struct {
	Root   *tree.Node
	Errors []ValidationError
}

// Parse performs a strict parse: the tree is still built with the same
// tolerant recovery Fix uses internally (the parser never panics and
// always yields a best-effort tree), but every repair that
// would have been applied is surfaced as a ValidationError instead of
// being treated as silently successful.
func Parse(text string) ParseResult {
	opts := config.Default()
	roots, led := pipeline(text, opts)

	errs := make([]ValidationError, 0, led.Len())
	for _, f := range led.Fixes() {
		sev := ledger.SeverityFor(f.Kind, led.NDJSON())
		errs = append(errs, ValidationError{
			Line:       f.Position.Line,
			Column:     f.Position.Column,
			Message:    f.Message,
			Severity:   Severity(sev),
			Suggestion: f.Replacement,
		})
	}

	var root *tree.Node
	if len(roots) > 0 {
		root = roots[0]
	}
	return ParseResult{Root: root, Errors: errs}
}
