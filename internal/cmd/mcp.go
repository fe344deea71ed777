package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/namewastaken/namewastaken/internal/mcp"
	"github.com/namewastaken/namewastaken/internal/observability"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Expose the checker as Model Context Protocol tools over stdio, for
use from MCP-capable clients.

Tools: check_username, check_many, check_platform, check_url,
list_platforms.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		eng, db := buildEngine(ctx)
		if db != nil {
			defer db.Close() // nolint:errcheck // best-effort cleanup on CLI exit
		}

		observability.CLILogger.Debug("Starting MCP server",
			zap.Bool("cache_enabled", db != nil))

		srv := mcpserver.New(eng, appCfg.Cache.Enabled && db != nil, versionInfo.Version)
		return srv.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
