package cli

import (
	"fmt"
	"os"

	"bindaudit/internal/engine"
	"bindaudit/internal/flags"
	"bindaudit/internal/runner"
	"bindaudit/internal/toolchain"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Probe binding prerequisites before an audit run",
	Long: `Probe every external tool the toolchain's bindings declare under
"requires" by running "<tool> --version".

A long audit run that fails halfway because a compiler is missing wastes a
lot of time; doctor finds those gaps up front. Probes are read-only and run
concurrently.

Exit codes:
	0 = all declared tools available
	1 = at least one tool missing
	3 = toolchain descriptor could not be loaded

Examples:
  bindaudit doctor
  bindaudit doctor --toolchain toolchain.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		tc, err := toolchain.Load(cfg.Audit.Toolchain)
		if err != nil {
			cmd.PrintErrf("Error loading toolchain: %v\n", err)
			os.Exit(3)
		}

		statuses, err := engine.Doctor(cmd.Context(), runner.NewShellRunner(cfg.Audit.WorkDir), tc)
		if err != nil {
			cmd.PrintErrf("Error probing tools: %v\n", err)
			os.Exit(3)
		}
		if len(statuses) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No bindings declare required tools; nothing to probe.")
			return
		}

		ok := color.New(color.FgGreen)
		missing := color.New(color.FgRed, color.Bold)
		anyMissing := false
		for _, st := range statuses {
			if st.Available {
				ok.Fprintf(cmd.OutOrStdout(), "[ok]      ")
			} else {
				anyMissing = true
				missing.Fprintf(cmd.OutOrStdout(), "[missing] ")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", st.Tool, st.Binding, st.Detail)
		}

		if anyMissing {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&cfg.Audit.Toolchain, flags.FlagToolchain, cfg.Audit.Toolchain, "Toolchain descriptor path (.json, .yaml or .yml)")
	doctorCmd.Flags().StringVar(&cfg.Audit.WorkDir, flags.FlagWorkDir, "", "Working directory for probe commands (default: current dir)")
}
