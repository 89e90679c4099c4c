package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/logger"
)

// ProvisionCmd shows provision text
var ProvisionCmd = &cobra.Command{
	Use:   "provision <document> [reference]",
	Short: "Show the text of a statute provision",
	Long: `Resolve a statute and print a provision's text, optionally the version
in force at a past date. Without a provision reference, prints every
provision of the statute.

The document may be a canonical id, a title fragment, or a date
expression like "Loi du 2 fevrier 1994".

Examples:
  belgianlaw provision loi-1994-02-02-1994009284-fr art1
  belgianlaw provision "Loi du 2 fevrier 1994" 3 --as-of 2005-06-01
  belgianlaw provision "protection de la jeunesse"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runProvision,
}

var provisionAsOfFlag string

func init() {
	ProvisionCmd.Flags().StringVar(&provisionAsOfFlag, "as-of", "", "ISO date (YYYY-MM-DD) to retrieve the text in force at")
	ProvisionCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runProvision(cmd *cobra.Command, args []string) error {
	database, _, err := openCorpus()
	if err != nil {
		return err
	}
	defer database.Close()

	documents := corpus.NewDocumentStore(database, logger.Logger)
	provisions := corpus.NewProvisionStore(database, logger.Logger)

	doc, err := documents.Resolve(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")

	if len(args) == 2 {
		p, err := provisions.Get(doc.ID, args[1], provisionAsOfFlag)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(p)
		}
		printProvision(*p)
		return nil
	}

	all, err := provisions.GetAll(doc.ID, provisionAsOfFlag)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(all)
	}
	fmt.Printf("%s (%s), %d provision(s)\n\n", doc.Title, doc.Status, len(all))
	for _, p := range all {
		printProvision(p)
		fmt.Println()
	}
	return nil
}

func printProvision(p corpus.Provision) {
	header := p.ProvisionRef
	if p.Title != "" {
		header = p.Title
	}
	fmt.Printf("%s [%s]\n", header, p.DocumentID)
	if p.ValidFrom != nil || p.ValidTo != nil {
		fmt.Printf("Valid: %s .. %s\n", deref(p.ValidFrom, "(start)"), deref(p.ValidTo, "(current)"))
	}
	fmt.Println(p.Content)
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func printJSON(payload interface{}) error {
	output, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}
