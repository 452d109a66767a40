// Package classify turns raw build/test console output into the handful of
// facts the audit verdict needs: skip and warning counts, a best-effort test
// count, and a final verdict.
//
// The classifier is a best-effort heuristic over dozens of uncoordinated
// test-runner text formats, not a parser of any one of them. It is total over
// all string inputs: malformed or binary-ish text yields zero counts and an
// Unknown test count, never an error.
package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TestCountUnknown is the sentinel for "could not determine how many tests
// ran". It is distinct from "0": zero tests is an alarming, meaningful
// outcome and must never be conflated with a failed extraction.
const TestCountUnknown = "Unknown"

// Result is derived purely from the combined output text. The same input
// always yields the same Result.
type Result struct {
	Skips    int `json:"skips"`
	Warnings int `json:"warnings"`

	// TestCount is a decimal count, a unit-qualified count such as "7 pkgs",
	// or TestCountUnknown.
	TestCount string `json:"test_count"`
}

// Analyze classifies a test run's captured stdout and stderr.
func Analyze(stdout, stderr string) Result {
	combined := stdout + "\n" + stderr
	return Result{
		Skips:     countMatchingLines(combined, skipPatterns, skipExcludePatterns),
		Warnings:  countMatchingLines(combined, warningPatterns, warningExcludePatterns),
		TestCount: extractTestCount(combined),
	}
}

// countMatchingLines counts lines where at least one detect pattern matches
// and no exclude pattern matches that same line. A line counts once no matter
// how many detect patterns hit it. Exclusion is line-scoped on purpose:
// a summary like "0 skipped" must not count, but suppressing the pattern
// globally would also discard genuine skips elsewhere in the run.
func countMatchingLines(text string, detect, exclude []*regexp.Regexp) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if !matchesAny(line, detect) {
			continue
		}
		if matchesAny(line, exclude) {
			continue
		}
		count++
	}
	return count
}

func matchesAny(line string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// extractTestCount tries each registered pattern against the whole output in
// registry order and returns the first capture. Only when no pattern matches
// do the fallback strategies apply, in a fixed order.
func extractTestCount(combined string) string {
	for _, p := range testCountPatterns {
		if m := p.FindStringSubmatch(combined); m != nil {
			return m[1]
		}
	}

	if m := ctestTotalPattern.FindStringSubmatch(combined); m != nil {
		return m[1]
	}

	if ms := executedTestsPattern.FindAllStringSubmatch(combined, -1); len(ms) > 0 {
		best := 0
		for _, m := range ms {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
		return strconv.Itoa(best)
	}

	if n := len(goPackageOKPattern.FindAllString(combined, -1)); n > 0 {
		// Counts packages, not tests; the unit keeps the report honest.
		return fmt.Sprintf("%d pkgs", n)
	}

	if n := strings.Count(combined, "=== RUN"); n > 0 {
		return strconv.Itoa(n)
	}

	return TestCountUnknown
}
