package cli

import (
	"fmt"
	"os"
	"strings"

	"bindaudit/internal/flags"
	gh "bindaudit/internal/github"

	"github.com/spf13/cobra"
)

var (
	publishPublic      bool
	publishDescription string
)

var publishCmd = &cobra.Command{
	Use:   "publish [report-path]",
	Short: "Publish a finished audit report as a GitHub gist",
	Long: `Upload a finished Markdown audit report as a GitHub gist and print its URL.

Authentication:
	BindAudit uses a GitHub access token. It prefers GITHUB_TOKEN, but can also
	reuse GitHub CLI authentication if the gh CLI is installed and logged in.

Examples:
  export GITHUB_TOKEN="<your_token>"
  bindaudit publish FINAL_AUDIT_REPORT.md

  # Public gist with a custom description
  bindaudit publish FINAL_AUDIT_REPORT.md --public --description "v2.1 binding audit"
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		token, _, err := gh.ResolveAuthToken(ctx, "")
		if err != nil {
			cmd.PrintErrf("Error: failed to resolve GitHub auth token: %v\n", err)
			os.Exit(3)
		}
		if strings.TrimSpace(token) == "" {
			cmd.PrintErrln("Error: GitHub auth token is required (set GITHUB_TOKEN or run 'gh auth login')")
			os.Exit(3)
		}

		client, err := gh.NewClient(ctx, token, gh.WithVerbose(cfg.Runtime.Verbose, nil))
		if err != nil {
			cmd.PrintErrf("Error: failed to create GitHub client: %v\n", err)
			os.Exit(3)
		}

		url, err := gh.PublishReport(ctx, client, args[0], publishDescription, publishPublic)
		if err != nil {
			cmd.PrintErrf("Error publishing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().BoolVar(&publishPublic, flags.FlagPublic, false, "Create a public gist (default: secret)")
	publishCmd.Flags().StringVar(&publishDescription, flags.FlagDescription, "Binding certification audit report", "Gist description")
}
