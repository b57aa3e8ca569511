package app

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideation/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp [path]",
	Short: "Run an MCP stdio server over the analysis engine",
	Long: `Start a Model Context Protocol stdio server so an editor or agent can
drive the engine for path. Findings persist for the life of the server.
The server exposes five tools:

  analyze_codebase      Run every selected analyzer
  find_issues           Run one category analyzer
  generate_suggestions  Rank the current findings
  get_summary           Count the current findings
  generate_report       Render a markdown, JSON or YAML report

Example MCP client configuration:
  {"mcpServers":{"ideation":{"command":"ideation","args":["mcp","/path/to/repo"]}}}`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, rootArg(args))
	if err != nil {
		return err
	}
	defer s.close()

	srv := mcp.NewServer(s.engine, appVersion, s.logger)
	return srv.Run(cmd.Context(), cmd.InOrStdin(), os.Stdout)
}
