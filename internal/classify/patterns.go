package classify

import "regexp"

// The tables below are the whole detection surface. Supporting a new test
// runner's output idiom means appending a pattern here, never touching the
// scan logic in classify.go.

// Skip indicators. These match lines reporting an actually skipped, ignored
// or pending test; summary noise ("0 skipped") is filtered per line by
// skipExcludePatterns.
var skipPatterns = compileInsensitive(
	`\s+skipped\b`,
	`SKIPPED\b`,
	`\s+ignored\b`,
	`\bpending\b`,
	`\bTODO\b`,
	`\[-\]`, // some runners mark skipped cases with [-]
	`\bskip:`,
	`\bSkip:`,
)

// Lines that look like a skip lexically but are not one. Exclusion is scoped
// to the matching line only, so genuine skips elsewhere in the same run still
// count.
var skipExcludePatterns = compileInsensitive(
	`\b0 ignored\b`,
	`\b0 skipped\b`,
	`skipped 0`,
	`Skipped:\s*0`,
	`> Task :.*SKIPPED`, // Gradle prints SKIPPED for up-to-date tasks
	`^=== RUN`,          // go test run markers can contain "ignored" in test names
	`\b0 pending\b`,     // busted summary line
)

var warningPatterns = compileInsensitive(
	`warning:`,
	`WARNING:`,
	`Warning:`,
)

// Build/test warnings that do not indicate a problem with the binding under
// audit (locale setup, compiler lints about test scaffolding, packager
// chatter).
var warningExcludePatterns = compileInsensitive(
	`locale`,
	`Setting locale failed`,
	`LANGUAGE`,
	`LC_ALL`,
	// rust/cargo lints
	`unused variable`,
	`unused import`,
	`never used`,
	`never read`,
	`unnecessary parentheses`,
	`generated \d+ warnings?\b`,
	`run `+"`"+`cargo fix`,
	// gcc/clang lint flags echoed in diagnostics
	`-Wunused`,
	`-Wdeprecated`,
	`prerequisite`, // perl prereq warnings
	`localstorage-file`,
)

// Ordered test-count extraction patterns, each with exactly one capture
// group. The first pattern that matches the combined output wins, so more
// specific formats must come before generic ones. Matching is case-sensitive
// and unanchored across the whole output.
var testCountPatterns = compile(
	`(\d+) tests passed`,
	`====\s+(\d+)\s+passed`, // pytest
	`Tests:\s+(\d+)\s+passed`,
	`Tests:\s+(\d+) passed,\s+\d+ total`, // jest
	`Executed (\d+) tests, with 0 failures`, // XCTest
	`\[Audit\] Tests: (\d+), Skipped: \d+`,  // strict harness marker (Kotlin)
	`test result: ok\. (\d+) passed`, // cargo
	`Tests run:\s+(\d+), Failures: 0`, // maven
	`Files=\d+, Tests=(\d+)`, // TAP / prove
	`OK \((\d+) tests?[,\)]`, // PHPUnit
	`^Tests:\s*(\d+)`,
	`\[\s*FAIL\s*\d+\s*\|\s*WARN\s*\d+\s*\|\s*SKIP\s*\d+\s*\|\s*PASS\s*(\d+)\s*\]`, // R testthat
	`^(\d+) successes / \d+ failures / \d+ errors`, // lua busted
	`(\d+) runs, \d+ assertions`, // ruby minitest
	`\+(\d+): All tests passed`,  // dart
	`(\d+)/\d+ tests passed`,
	`Passed:\s+(\d+)`, // dotnet
)

// Fallback strategies, applied in this order only when no pattern above
// matched.
var (
	// CTest summary: "100% tests passed, 0 tests failed out of 12".
	ctestTotalPattern = regexp.MustCompile(`\d+% tests passed, \d+ tests failed out of (\d+)`)

	// XCTest repeats "Executed N tests" per suite and once for the aggregate;
	// the maximum N is the aggregate total.
	executedTestsPattern = regexp.MustCompile(`Executed (\d+) tests`)

	// go test prints one "ok <pkg>" line per passing package and no grand
	// total; the resulting count is packages, not tests.
	goPackageOKPattern = regexp.MustCompile(`(?m)^ok\s+`)
)

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(p))
	}
	return out
}

func compileInsensitive(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}
