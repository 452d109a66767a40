package cli

import (
	"context"
	"os"

	"bindaudit/internal/config"
	"bindaudit/internal/engine"
	"bindaudit/internal/flags"
	"bindaudit/internal/runner"

	"github.com/spf13/cobra"
)

var cfg = config.New()

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Run the full certification audit across all bindings",
	Long: `Run the certification audit: clean the environment, then for each binding
in toolchain order run setup, an optional build, and the test suite, classify
the captured console output, and render one verdict per binding.

Bindings run strictly one at a time, in configuration order, because their
build and test commands compete for shared local resources (package caches,
compiler toolchains, ports).

Verdict priority (first applicable wins):
	1. non-zero test exit code
	2. skipped/ignored/pending tests detected
	3. build or test warnings detected
	4. required semantic check marker missing
	5. certified

Output:
	Console output is controlled by --console-format (default: text).
	The Markdown report is written to --report (default: FINAL_AUDIT_REPORT.md).
	Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --emit: write an additional structured stream to stdout (json or ndjson)
	- --no-console: suppress the console sink (use with --emit/--out for machine output)

	NDJSON mode emits one JSON object per line. Objects are lifecycle Events
	with a "type" field (run.started, binding.started, binding.result,
	binding.finished, run.finished). Binding outcomes are represented as an
	Event with type "binding.result" and a nested "outcome" object.

Exit codes:
	0 = every binding certified
	1 = verdict failures (skips, warnings, exit codes, semantic checks)
	2 = partial failure (some bindings could not be set up, built or run)
	3 = fatal error (audit did not run)

Examples:
	# Full audit with the default toolchain.json
	bindaudit audit

	# YAML toolchain, report to a custom path
	bindaudit audit --toolchain toolchain.yaml --report audit.md

	# Only require one semantic check
	bindaudit audit --checks dup-names

	# Machine-readable event stream on stdout
	bindaudit audit --no-console --emit ndjson
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cfg.Validate(); err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			os.Exit(3)
		}

		eng := engine.NewEngine(runner.NewShellRunner(cfg.Audit.WorkDir))
		os.Exit(eng.Run(context.Background(), cfg))
	},
}

func init() {
	rootCmd.AddCommand(auditCmd)

	// Audit
	auditCmd.Flags().StringVar(&cfg.Audit.Toolchain, flags.FlagToolchain, cfg.Audit.Toolchain, "Toolchain descriptor path (.json, .yaml or .yml)")
	auditCmd.Flags().StringVar(&cfg.Audit.WorkDir, flags.FlagWorkDir, "", "Working directory for driver commands (default: current dir)")
	auditCmd.Flags().BoolVar(&cfg.Audit.SkipClean, flags.FlagSkipClean, false, "Skip the global clean before auditing")
	auditCmd.Flags().BoolVar(&cfg.Audit.DryRun, flags.FlagDryRun, false, "Resolve the toolchain and checks and print the plan without running anything")

	// Checks
	auditCmd.Flags().StringVar(&cfg.Checks.Selector, flags.FlagChecks, "", "Required semantic checks as a comma-separated ID list (empty = all)")

	// Output
	auditCmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	auditCmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, cfg.Output.Report, "Write the Markdown audit report to this path (empty = no report)")
	auditCmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	auditCmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	auditCmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	auditCmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out/--report)")
}
