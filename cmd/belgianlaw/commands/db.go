package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/corpus"
)

// DbCmd groups database operations
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the legislation database",
	Long: `Database operations for the corpus snapshot.

Examples:
  belgianlaw db stats    # Show snapshot metadata and table counts`,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show snapshot metadata and table counts",
	Long:  "Display the snapshot's source authority, build fingerprint, and per-table row counts",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbStatsCmd)
	dbStatsCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runDbStats(cmd *cobra.Command, args []string) error {
	database, cfg, err := openCorpus()
	if err != nil {
		return err
	}
	defer database.Close()

	meta := corpus.ReadMetadata(database)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(meta)
	}

	fmt.Println("Legislation Snapshot")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("Database Path:   %s\n", cfg.Database.Path)
	fmt.Printf("Source:          %s\n", meta.SourceAuthority)
	if meta.SchemaVersion != "" {
		fmt.Printf("Schema Version:  %s\n", meta.SchemaVersion)
	}
	if meta.BuiltAt != "" {
		fmt.Printf("Built At:        %s\n", meta.BuiltAt)
	}
	if meta.Fingerprint != "" {
		fmt.Printf("Fingerprint:     %s\n", meta.Fingerprint)
	}
	fmt.Println()
	fmt.Printf("Documents:       %d\n", meta.Counts["legal_documents"])
	fmt.Printf("Provisions:      %d\n", meta.Counts["legal_provisions"])
	fmt.Printf("EU Documents:    %d\n", meta.Counts["eu_documents"])
	fmt.Printf("EU References:   %d\n", meta.Counts["eu_references"])
	return nil
}
