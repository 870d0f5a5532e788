package jsonrepair

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFixScenario1UnquotedKeySingleQuoteLeadingZeros(t *testing.T) {
	res := Fix(`{name: 'Alice', age: +01}`, DefaultConfig())
	assertStrictJSON(t, res.Fixed)
	want := "{\n  \"name\": \"Alice\",\n  \"age\": 1\n}"
	if res.Fixed != want {
		t.Fatalf("got:\n%s\nwant:\n%s", res.Fixed, want)
	}
	if !res.WasFixed {
		t.Fatalf("expected WasFixed=true")
	}
	for _, kind := range []string{"unquotedKey", "singleQuotes", "leadingPlus", "leadingZeros"} {
		if res.Metrics.FixCountByKind[kind] == 0 {
			t.Fatalf("expected a %s repair, got %v", kind, res.Metrics.FixCountByKind)
		}
	}
}

func TestFixScenario2MissingOpenBracket(t *testing.T) {
	res := Fix(`{"coordinates": -0.1695, 51.4865]}`, DefaultConfig())
	assertStrictJSON(t, res.Fixed)
	want := "{\n  \"coordinates\": [-0.1695, 51.4865]\n}"
	if res.Fixed != want {
		t.Fatalf("got:\n%s\nwant:\n%s", res.Fixed, want)
	}
}

func TestFixScenario3MultipleRootsWrapped(t *testing.T) {
	res := Fix("{\"a\":1}{\"b\":2}\n", DefaultConfig())
	assertStrictJSON(t, res.Fixed)
	want := "[\n  {\n    \"a\": 1\n  },\n  {\n    \"b\": 2\n  }\n]"
	if res.Fixed != want {
		t.Fatalf("got:\n%s\nwant:\n%s", res.Fixed, want)
	}
}

func TestFixScenario4NDJSONModePreserved(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NDJSONMode = true
	res := Fix("{\"a\":1}\n{\"b\":2}\n", cfg)
	want := "{\n  \"a\": 1\n}\n{\n  \"b\": 2\n}"
	if res.Fixed != want {
		t.Fatalf("got:\n%s\nwant:\n%s", res.Fixed, want)
	}
}

func TestFixScenario5LoneSurrogate(t *testing.T) {
	res := Fix(`{"s": "hi\uD83D"}`, DefaultConfig())
	assertStrictJSON(t, res.Fixed)
	if res.Metrics.FixCountByKind["loneSurrogate"] == 0 {
		t.Fatalf("expected a loneSurrogate repair")
	}
}

func TestFixScenario6HexAndUnderscoreNumbers(t *testing.T) {
	res := Fix(`{"n": 0xFF, "m": 1_000}`, DefaultConfig())
	assertStrictJSON(t, res.Fixed)
	want := "{\n  \"n\": 255,\n  \"m\": 1000\n}"
	if res.Fixed != want {
		t.Fatalf("got:\n%s\nwant:\n%s", res.Fixed, want)
	}
}

func TestFixIsIdempotent(t *testing.T) {
	input := `{name: 'Alice', age: +01}`
	first := Fix(input, DefaultConfig())
	second := Fix(first.Fixed, DefaultConfig())
	if second.Fixed != first.Fixed {
		t.Fatalf("fix is not idempotent: first=%q second=%q", first.Fixed, second.Fixed)
	}
	if second.WasFixed {
		t.Fatalf("re-fixing already-fixed output should report no repairs, got %v", second.Messages)
	}
}

func TestFixStrictRoundTripReportsNoRepairs(t *testing.T) {
	input := `{"a":1,"b":[1,2,3],"c":{"d":true,"e":null}}`
	res := Fix(input, DefaultConfig())
	if res.WasFixed {
		t.Fatalf("strictly valid JSON should not be reported as fixed, got %v", res.Messages)
	}
}

func TestFixCapsAtMaxFixesPlusOne(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFixes = 3
	input := strings.Repeat(`{a: 1}`+" ", 20) // twenty roots, each with an unquoted key, record far more than three repairs
	res := Fix(input, cfg)
	if res.Metrics.FixCount > cfg.MaxFixes+1 {
		t.Fatalf("fix count %d exceeds max_fixes+1 (%d)", res.Metrics.FixCount, cfg.MaxFixes+1)
	}
}

func TestValidateReportsSeverities(t *testing.T) {
	errs := Validate(`{"a": 1, "a": 2}`)
	found := false
	for _, e := range errs {
		if e.Message != "" && e.Severity == SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected at least one warning-severity validation error for a duplicate key, got %+v", errs)
	}
}

func TestParseReturnsTreeAndErrors(t *testing.T) {
	res := Parse(`{name: 'Alice'}`)
	if res.Root == nil {
		t.Fatalf("expected a parsed root even for malformed input")
	}
	if len(res.Errors) == 0 {
		t.Fatalf("expected validation errors for malformed input")
	}
}

func assertStrictJSON(t *testing.T, s string) {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("output does not parse as strict JSON: %v\n%s", err, s)
	}
}
