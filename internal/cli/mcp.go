package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/genostudio/genotasks/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server on stdio",
	Long: `Expose the board as MCP tools (list_tasks, get_task, check_priority,
export_week, import_text) over stdio, for use by AI assistants.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Board == nil {
			return fmt.Errorf("board not initialized")
		}
		server := mcp.NewServer(Board, appVersion)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
