package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/logger"
)

// SearchCmd runs a full-text search over provisions
var SearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over statute provisions",
	Long: `Search provision text and titles. The query is matched as a literal
phrase. With --as-of, historical provision versions valid at that date
are searched instead of the current text.

Examples:
  belgianlaw search "protection de la jeunesse"
  belgianlaw search jeunesse --document loi-1994-02-02-1994009284-fr
  belgianlaw search "mediation" --status repealed
  belgianlaw search "ancien texte" --as-of 2000-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

var (
	searchDocumentFlag string
	searchStatusFlag   string
	searchAsOfFlag     string
	searchLimitFlag    int
)

func init() {
	SearchCmd.Flags().StringVar(&searchDocumentFlag, "document", "", "Restrict to one statute (canonical id)")
	SearchCmd.Flags().StringVar(&searchStatusFlag, "status", "", "Restrict to documents with this status")
	SearchCmd.Flags().StringVar(&searchAsOfFlag, "as-of", "", "ISO date (YYYY-MM-DD); search the text in force at that date")
	SearchCmd.Flags().IntVar(&searchLimitFlag, "limit", corpus.DefaultSearchLimit, "Maximum number of results")
	SearchCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	database, _, err := openCorpus()
	if err != nil {
		return err
	}
	defer database.Close()

	provisions := corpus.NewProvisionStore(database, logger.Logger)
	results, err := provisions.Search(corpus.SearchParams{
		Query:      args[0],
		DocumentID: searchDocumentFlag,
		Status:     searchStatusFlag,
		AsOfDate:   searchAsOfFlag,
		Limit:      searchLimitFlag,
	})
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No results")
		return nil
	}
	fmt.Printf("%d result(s):\n\n", len(results))
	for _, p := range results {
		fmt.Printf("%s %s - %s\n", p.DocumentID, p.ProvisionRef, p.DocumentTitle)
		fmt.Printf("  %s\n", p.Content)
	}
	return nil
}
