package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ansvar-systems/belgian-law-mcp/citation"
	"github.com/ansvar-systems/belgian-law-mcp/errors"
)

// FormatCmd reformats a citation in a given style
var FormatCmd = &cobra.Command{
	Use:   "format <citation>",
	Short: "Reformat a Belgian legal citation",
	Long: `Parse a citation and render it back in a chosen style.

Styles:
  full     - "<title>, art. <pinpoint>" (default)
  short    - "art. <pinpoint> <title>"
  pinpoint - "art. <pinpoint>"

Examples:
  belgianlaw format "Loi du 2 fevrier 1994, art. 3"
  belgianlaw format "art. 3, Loi du 2 fevrier 1994" --style pinpoint`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

var formatStyleFlag string

func init() {
	FormatCmd.Flags().StringVar(&formatStyleFlag, "style", "full", "Output style: full, short, or pinpoint")
}

func runFormat(cmd *cobra.Command, args []string) error {
	parsed := citation.Parse(args[0])
	if !parsed.Valid {
		return errors.New(parsed.Error)
	}

	fmt.Println(citation.Format(parsed, citation.Style(formatStyleFlag)))
	return nil
}
