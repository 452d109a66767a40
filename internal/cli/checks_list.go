package cli

import (
	"fmt"
	"io"
	"strings"

	"bindaudit/internal/checks"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checksListQuiet bool
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "Manage and list semantic checks",
	Long: `Manage BindAudit semantic checks.

A semantic check requires a specific named test case's marker to appear in a
binding's captured test output, as a proxy for "this behavior was actually
exercised" rather than merely "tests passed in aggregate".

Examples:
  # List all available checks
  bindaudit checks list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var checksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available semantic checks",
	Long: `List all semantic checks currently registered in this build.

Checks are sorted by check ID.

Examples:
  bindaudit checks list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range checks.List() {
			if checksListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), c.ID())
			} else {
				printCheck(cmd.OutOrStdout(), c)
			}
		}
		return nil
	},
}

var checksShowCmd = &cobra.Command{
	Use:   "show [check-id]",
	Short: "Show details of a specific semantic check",
	Long: `Show details of a specific semantic check by its ID.

Examples:
  bindaudit checks show dup-names
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cList, err := checks.Resolve(args[0])
		if err != nil {
			return err
		}
		if len(cList) == 0 {
			return fmt.Errorf("check not found: %s", args[0])
		}
		printCheck(cmd.OutOrStdout(), cList[0])
		return nil
	},
}

func printCheck(w io.Writer, c checks.Check) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "CHECK: %s\n", c.ID())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, c.Description())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Satisfied by any of:")
	fmt.Fprintf(w, "  %s\n", strings.Join(c.Aliases(), "\n  "))
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(checksCmd)
	checksCmd.AddCommand(checksListCmd)
	checksListCmd.Flags().BoolVarP(&checksListQuiet, "quiet", "q", false, "Only print check IDs")
	checksCmd.AddCommand(checksShowCmd)
}
