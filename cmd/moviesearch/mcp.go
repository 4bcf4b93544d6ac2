package main

import (
	"github.com/spf13/cobra"

	"github.com/vadimtrunov/MovieSearch/internal/config"
	mcpserver "github.com/vadimtrunov/MovieSearch/internal/mcp"
)

// newMCPServeCmd returns the "mcp-serve" subcommand.
// It serves the catalog tools over stdin/stdout for MCP clients.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-serve",
		Short: "Serve catalog tools over MCP stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// stdout carries the protocol; logs go to the file or stderr.
			logger, err := config.SetupLogger(cfg.App.LogLevel, cfg.App.LogFile)
			if err != nil {
				return err
			}

			srv := mcpserver.NewServer(newService(cfg, logger), version, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
