package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cosmic-code/internal/highlight"
	mcpserver "github.com/ziadkadry99/cosmic-code/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the code highlighter and the particle simulation as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "cosmic MCP server started on stdio (language=%s, style=%s)\n",
			cfg.Highlight.Language, cfg.Highlight.Style)

		hl := highlight.New(cfg.Highlight.Language, cfg.Highlight.Style)
		return mcpserver.NewServer(hl, cfg.Particles.Wrap).Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
