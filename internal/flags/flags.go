// Package flags defines canonical CLI flag names shared across the CLI and
// engine. Keeping these as constants helps avoid drift between Cobra flag
// wiring and other code paths that reference flags (e.g. remediation text).
// IMPORTANT: These are flag *names* without leading dashes.
package flags
const (
	// Audit
	FlagToolchain = "toolchain"
	FlagWorkDir   = "workdir"
	FlagSkipClean = "skip-clean"
	FlagDryRun    = "dry-run"

	// Checks
	FlagChecks = "checks"

	// Output
	FlagConsoleFormat = "console-format"
	FlagReport        = "report"
	FlagOut           = "out"
	FlagOutFormat     = "out-format"
	FlagEmit          = "emit"
	FlagNoConsole     = "no-console"

	// Runtime
	FlagVerbose = "verbose"

	// Publish
	FlagPublic      = "public"
	FlagDescription = "description"
)
