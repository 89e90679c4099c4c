package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/citation"
	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/logger"
)

// ValidateCmd validates a citation against the corpus
var ValidateCmd = &cobra.Command{
	Use:   "validate <citation>",
	Short: "Validate a Belgian legal citation",
	Long: `Parse a citation, resolve the statute it names, and check that the
cited article exists in the database.

Examples:
  belgianlaw validate "Loi du 2 fevrier 1994, art. 3"
  belgianlaw validate "Wet van 2 februari 1994, art. 5" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	ValidateCmd.Flags().BoolP("json", "j", false, "Output the full validation result as JSON")
}

func runValidate(cmd *cobra.Command, args []string) error {
	database, _, err := openCorpus()
	if err != nil {
		return err
	}
	defer database.Close()

	documents := corpus.NewDocumentStore(database, logger.Logger)
	provisions := corpus.NewProvisionStore(database, logger.Logger)
	validator := citation.NewValidator(documents, provisions, logger.Logger)

	result, err := validator.Validate(args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	if result.DocumentExists && result.ProvisionExists && len(result.Warnings) == 0 {
		fmt.Printf("Valid: %s\n", result.DocumentTitle)
		return nil
	}

	if result.DocumentExists {
		fmt.Printf("Document: %s (%s)\n", result.DocumentTitle, result.Status)
	} else {
		fmt.Println("Document: not found")
	}
	for _, warning := range result.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	return nil
}
