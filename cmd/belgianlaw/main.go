package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/cmd/belgianlaw/commands"
	"github.com/ansvar-systems/belgian-law-mcp/config"
	"github.com/ansvar-systems/belgian-law-mcp/logger"
)

var rootCmd = &cobra.Command{
	Use:   "belgianlaw",
	Short: "Belgian legal citation engine",
	Long: `belgianlaw - Point-in-time resolution of Belgian legal citations.

Parses Belgian statute citations (French and Dutch), resolves them against
a versioned legislation snapshot, retrieves the provision text in force at
any date, and cross-references EU regulations and directives.

Available commands:
  serve     - Start the MCP server on stdio
  validate  - Validate a citation against the database
  format    - Reformat a citation in a given style
  provision - Show provision text, optionally at a past date
  search    - Full-text search over provisions
  currency  - Check whether a statute is still in force
  db        - Database statistics and diagnostics

Examples:
  belgianlaw serve
  belgianlaw validate "Loi du 2 fevrier 1994, art. 3"
  belgianlaw provision loi-1994-02-02-1994009284-fr art1 --as-of 2005-06-01
  belgianlaw search "protection de la jeunesse" --limit 5
  belgianlaw db stats`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.ValidateCmd)
	rootCmd.AddCommand(commands.FormatCmd)
	rootCmd.AddCommand(commands.ProvisionCmd)
	rootCmd.AddCommand(commands.SearchCmd)
	rootCmd.AddCommand(commands.CurrencyCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
