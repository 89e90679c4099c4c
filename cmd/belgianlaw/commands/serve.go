package commands

import (
	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/errors"
	"github.com/ansvar-systems/belgian-law-mcp/logger"
	"github.com/ansvar-systems/belgian-law-mcp/server"
)

// ServeCmd starts the MCP server on stdio
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the Model Context Protocol server on stdin/stdout.

The server exposes citation validation, provision retrieval, full-text
search, currency checks, and EU cross-reference tools to MCP clients.
All logging goes to stderr so the stdio transport stays clean.

Examples:
  belgianlaw serve
  BELGIAN_LAW_DATABASE_PATH=/data/belgian-law.db belgianlaw serve`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	database, cfg, err := openCorpus()
	if err != nil {
		return err
	}
	defer database.Close()

	s := server.New(database, cfg.Server.Name, cfg.Server.Version, logger.Logger)
	if err := s.Serve(); err != nil {
		return errors.Wrap(err, "MCP server terminated")
	}
	return nil
}
