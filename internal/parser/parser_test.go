package parser

import (
	"testing"

	"github.com/flosch/jsonrepair/internal/config"
	"github.com/flosch/jsonrepair/internal/ledger"
	"github.com/flosch/jsonrepair/internal/lexer"
	"github.com/flosch/jsonrepair/internal/tree"
)

// run lexes and parses input with the given options, returning the
// roots, the ledger that accumulated every repair, and the canonical
// rendering — exercising the whole C2→C3→C4→C6 pipeline the way the
// façade will, without going through it.
func run(t *testing.T, input string, opts config.Options) ([]*tree.Node, *ledger.Ledger, string) {
	t.Helper()
	led := ledger.New(opts.MaxFixes)
	toks := lexer.New(input, led, opts).Run()
	roots := New(toks, input, led, opts).Parse()
	rendered := tree.Render(roots, tree.Options{WrapMultiRoot: opts.WrapMultiRoot}, led)
	return roots, led, rendered
}

func hasFix(led *ledger.Ledger, k ledger.Kind) bool {
	for _, f := range led.Fixes() {
		if f.Kind == k {
			return true
		}
	}
	return false
}

func TestScenarioUnquotedKeySingleQuoteLeadingPlusZeros(t *testing.T) {
	_, led, out := run(t, `{name: 'Alice', age: +01}`, config.Default())
	want := "{\n  \"name\": \"Alice\",\n  \"age\": 1\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	for _, k := range []ledger.Kind{ledger.KindUnquotedKey, ledger.KindSingleQuotes, ledger.KindLeadingPlus, ledger.KindLeadingZeros} {
		if !hasFix(led, k) {
			t.Fatalf("missing expected fix %s; got %v", k, led.Fixes())
		}
	}
}

func TestScenarioMissingOpenBracketPopulatesElements(t *testing.T) {
	roots, led, out := run(t, `{"coordinates": -0.1695, 51.4865]}`, config.Default())
	want := "{\n  \"coordinates\": [-0.1695, 51.4865]\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !hasFix(led, ledger.KindMissingOpenBracket) {
		t.Fatalf("expected missingOpenBracket fix, got %v", led.Fixes())
	}
	arr := roots[0].Members[0].Value
	if arr.Kind != tree.KindArray || len(arr.Elements) != 2 {
		t.Fatalf("synthesized array should contain both parsed numbers, got %+v", arr)
	}
}

func TestScenarioMultipleRootsWrapped(t *testing.T) {
	_, led, out := run(t, "{\"a\":1}{\"b\":2}\n", config.Default())
	want := "[\n  {\n    \"a\": 1\n  },\n  {\n    \"b\": 2\n  }\n]"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !hasFix(led, ledger.KindMultipleRoots) {
		t.Fatalf("expected multipleRoots fix, got %v", led.Fixes())
	}
}

func TestScenarioNDJSONModeForcesLineLayout(t *testing.T) {
	opts := config.Default()
	opts.NDJSONMode = true
	_, led, out := run(t, "{\"a\":1}\n{\"b\":2}\n", opts)
	want := "{\n  \"a\": 1\n}\n{\n  \"b\": 2\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !led.NDJSON() {
		t.Fatalf("expected NDJSON flag set")
	}
	if !hasFix(led, ledger.KindWrapNDJSON) {
		t.Fatalf("expected wrapNDJSON fix, got %v", led.Fixes())
	}
}

func TestScenarioNDJSONAutoDetectByLineCount(t *testing.T) {
	_, led, _ := run(t, "{\"a\":1}\n{\"b\":2}\n", config.Default())
	if !led.NDJSON() {
		t.Fatalf("two roots across two non-empty lines should auto-detect as NDJSON")
	}
	if hasFix(led, ledger.KindMultipleRoots) {
		t.Fatalf("auto-detected NDJSON should not also report multipleRoots")
	}
}

func TestScenarioLoneSurrogateBecomesReplacementChar(t *testing.T) {
	_, led, out := run(t, `{"s": "hi\uD83D"}`, config.Default())
	want := "{\n  \"s\": \"hi�\"\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !hasFix(led, ledger.KindLoneSurrogate) {
		t.Fatalf("expected loneSurrogate fix, got %v", led.Fixes())
	}
}

func TestScenarioHexAndUnderscoreNumbers(t *testing.T) {
	_, led, out := run(t, `{"n": 0xFF, "m": 1_000}`, config.Default())
	want := "{\n  \"n\": 255,\n  \"m\": 1000\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	for _, k := range []ledger.Kind{ledger.KindHexNumber, ledger.KindNumericSeparators} {
		if !hasFix(led, k) {
			t.Fatalf("missing expected fix %s", k)
		}
	}
}

func TestDuplicateKeyReportedOnceAndRetained(t *testing.T) {
	roots, led, out := run(t, `{"a": 1, "a": 2}`, config.Default())
	want := "{\n  \"a\": 1,\n  \"a\": 2\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	count := 0
	for _, f := range led.Fixes() {
		if f.Kind == ledger.KindDuplicateKey {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("duplicateKey should be reported once, got %d", count)
	}
	if len(roots[0].Members) != 2 {
		t.Fatalf("both occurrences of the duplicate key should be retained, got %+v", roots[0].Members)
	}
}

func TestStrictRoundTripUnchangedForValidJSON(t *testing.T) {
	input := `{"a":1,"b":[1,2,3],"c":{"d":true,"e":null}}`
	_, led, out := run(t, input, config.Default())
	if len(led.Fixes()) != 0 {
		t.Fatalf("strictly valid JSON should produce no fixes, got %v", led.Fixes())
	}
	want := "{\n  \"a\": 1,\n  \"b\": [1, 2, 3],\n  \"c\": {\n    \"d\": true,\n    \"e\": null\n  }\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestMissingCommaBetweenMembersRecovered(t *testing.T) {
	_, led, out := run(t, `{"a": 1 "b": 2}`, config.Default())
	want := "{\n  \"a\": 1,\n  \"b\": 2\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !hasFix(led, ledger.KindMissingComma) {
		t.Fatalf("expected missingComma fix, got %v", led.Fixes())
	}
}

func TestUnclosedObjectRecoveredAtEOF(t *testing.T) {
	_, led, out := run(t, `{"a": 1`, config.Default())
	want := "{\n  \"a\": 1\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !hasFix(led, ledger.KindMissingCloseBrace) {
		t.Fatalf("expected missingCloseBrace fix, got %v", led.Fixes())
	}
}

func TestObjectClosedWithBracketBeforeValueBackfillsNull(t *testing.T) {
	roots, led, out := run(t, `{"a": ]}`, config.Default())
	want := "{\n  \"a\": null\n}"
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
	if !hasFix(led, ledger.KindCrossTypeClosure) {
		t.Fatalf("expected crossTypeClosure fix, got %v", led.Fixes())
	}
	if roots[0].Members[0].Value == nil {
		t.Fatalf("member value should be backfilled with a null placeholder, got nil")
	}
}
