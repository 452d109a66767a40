package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bindaudit",
	Short: "Certify that every language binding passes an equivalent test suite",
	Long: `BindAudit runs each configured binding's build and test commands, scans the
raw console output, and renders a pass/fail verdict per binding into a report.

A binding is certified only when its tests exit cleanly, its output contains
zero skipped tests and zero warnings, and every required semantic check
marker appears in the output.

Examples:
	# Show available commands and global flags
	bindaudit --help

	# Run the full certification audit
	bindaudit audit

	# List semantic checks
	bindaudit checks list

	# Probe binding prerequisites before a long run
	bindaudit doctor

	# Print build info
	bindaudit version

Output:
	By default, commands write human-readable output to stdout and a Markdown
	report to FINAL_AUDIT_REPORT.md.
	Structured output is available via emitter flags (see "bindaudit audit --help").`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Enable verbose diagnostics (driver command failures, full error details)")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
