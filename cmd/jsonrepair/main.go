// Command jsonrepair is a thin CLI collaborator: an external consumer
// of the engine's three operations. It reads
// stdin or a file argument, calls Fix or Validate, and prints the
// result. It is deliberately thin — no editor, no clipboard, no export
// converters — everything beyond flag parsing and I/O is delegated to
// the jsonrepair package.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/flosch/jsonrepair"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsonrepair", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		validate   = fs.Bool("validate", false, "run strict validation instead of repairing")
		maxFixes   = fs.Int("max-fixes", 0, "cap the number of repairs recorded (0 keeps the config-file/default value)")
		ndjson     = fs.Bool("ndjson", false, "force newline-delimited output for multi-root input")
		noWrap     = fs.Bool("no-wrap", false, "do not wrap multiple roots in an array; keep only the first")
		configPath = fs.String("config", "", "optional YAML file of default Config values")
		verbose    = fs.Bool("v", false, "print detailed fixes and metrics to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := jsonrepair.DefaultConfig()
	fd, err := loadFileDefaults(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "jsonrepair: reading config: %v\n", err)
		return 2
	}
	cfg = fd.apply(cfg)
	if *maxFixes > 0 {
		cfg.MaxFixes = *maxFixes
	}
	if *ndjson {
		cfg.NDJSONMode = true
	}
	if *noWrap {
		cfg.WrapMultiRoot = false
	}

	text, err := readInput(fs.Args(), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "jsonrepair: %v\n", err)
		return 1
	}

	if *validate {
		return runValidate(text, stdout, stderr)
	}
	return runFix(text, cfg, stdout, stderr, *verbose)
}

func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(args[0])
	return string(data), err
}

func runFix(text string, cfg jsonrepair.Config, stdout, stderr io.Writer, verbose bool) int {
	result := jsonrepair.Fix(text, cfg)
	fmt.Fprintln(stdout, result.Fixed)
	if verbose {
		for _, m := range result.DetailedMessages {
			fmt.Fprintln(stderr, m)
		}
		fmt.Fprintf(stderr, "fix_count=%d max_depth=%d tokens_processed=%d elapsed_ms=%.3f hit_max_fixes=%t\n",
			result.Metrics.FixCount, result.Metrics.MaxDepth, result.Metrics.TokensProcessed,
			result.Metrics.ElapsedMS, result.Metrics.HitMaxFixes)
	}
	return 0
}

func runValidate(text string, stdout, stderr io.Writer) int {
	errs := jsonrepair.Validate(text)
	exitCode := 0
	for _, e := range errs {
		fmt.Fprintf(stdout, "%d:%d %s %s\n", e.Line, e.Column, e.Severity, e.Message)
		if e.Severity == jsonrepair.SeverityError {
			exitCode = 1
		}
	}
	return exitCode
}
