// Package audit defines the per-binding outcome record shared by the engine
// and the output sinks.
package audit

import "bindaudit/internal/classify"

// BuildStatus records how far a binding got before testing.
type BuildStatus string

const (
	BuildOK          BuildStatus = "OK"
	BuildSetupFailed BuildStatus = "FAIL_SETUP"
	BuildFailed      BuildStatus = "FAIL_BUILD"
)

// Outcome is one binding's audit result. It is created once per binding per
// run and is immutable afterwards; outcomes are appended in configuration
// order, which is also the report's row order.
type Outcome struct {
	Binding string      `json:"binding"`
	Build   BuildStatus `json:"build"`

	// Analyzed is false when setup, build or test invocation failed before
	// any output classification could happen. Classification fields are then
	// meaningless and sinks render them as N/A.
	Analyzed bool `json:"analyzed"`

	Tests    string          `json:"tests"`
	Skips    int             `json:"skips"`
	Warnings int             `json:"warnings"`
	Checks   map[string]bool `json:"checks,omitempty"`

	TestExitCode int              `json:"test_exit_code"`
	Verdict      classify.Verdict `json:"verdict"`
}
