package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/corpus"
	"github.com/ansvar-systems/belgian-law-mcp/logger"
)

// CurrencyCmd checks whether a statute is still in force
var CurrencyCmd = &cobra.Command{
	Use:   "currency <document>",
	Short: "Check whether a statute is still in force",
	Long: `Report a statute's status, optionally evaluated at a past date, and
optionally check that a provision exists.

Examples:
  belgianlaw currency loi-1994-02-02-1994009284-fr
  belgianlaw currency "Loi du 2 fevrier 1994" --as-of 1994-02-15
  belgianlaw currency loi-1994-02-02-1994009284-fr --provision art1`,
	Args: cobra.ExactArgs(1),
	RunE: runCurrency,
}

var (
	currencyProvisionFlag string
	currencyAsOfFlag      string
)

func init() {
	CurrencyCmd.Flags().StringVar(&currencyProvisionFlag, "provision", "", "Provision reference to check for existence")
	CurrencyCmd.Flags().StringVar(&currencyAsOfFlag, "as-of", "", "ISO date (YYYY-MM-DD) to evaluate the status at")
	CurrencyCmd.Flags().BoolP("json", "j", false, "Output as JSON")
}

func runCurrency(cmd *cobra.Command, args []string) error {
	database, _, err := openCorpus()
	if err != nil {
		return err
	}
	defer database.Close()

	documents := corpus.NewDocumentStore(database, logger.Logger)
	provisions := corpus.NewProvisionStore(database, logger.Logger)

	report, err := documents.CheckCurrency(provisions, args[0], currencyProvisionFlag, currencyAsOfFlag)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return printJSON(report)
	}

	fmt.Printf("%s\n", report.Title)
	fmt.Printf("Status:  %s\n", report.Status)
	fmt.Printf("Current: %t\n", report.IsCurrent)
	if report.StatusAsOf != "" {
		fmt.Printf("As of %s: %s\n", report.AsOfDate, report.StatusAsOf)
	}
	if report.ProvisionExists != nil {
		fmt.Printf("Provision exists: %t\n", *report.ProvisionExists)
	}
	for _, warning := range report.Warnings {
		fmt.Printf("Warning: %s\n", warning)
	}
	return nil
}
