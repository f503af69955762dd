package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardbox-dev/cardbox/internal/card"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a card from a JSON record",
	Long: `Render reads a plain embed record (px, title, description, timestamp,
fields, footer) from a JSON file or stdin, runs it through the card setters,
and prints the drawn card.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initializeGlobalState()

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening record: %w", err)
			}
			defer f.Close()
			in = f
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		return renderRecord(in, cmd.OutOrStdout(), asJSON)
	},
}

// renderRecord decodes one Data record, rebuilds the card from its raw
// content, and writes the result.
func renderRecord(in io.Reader, out io.Writer, asJSON bool) error {
	var d card.Data
	if err := json.NewDecoder(in).Decode(&d); err != nil {
		return fmt.Errorf("decoding record: %w", err)
	}

	e, err := buildCard(card.Data{Px: d.Px}, d.Title, d.Description, d.Footer, d.Fields, d.Timestamp != "")
	if err != nil {
		return err
	}

	if asJSON {
		return writeSnapshot(out, e)
	}
	fmt.Fprintln(out, e.Render())
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().Bool("json", false, "Emit the plain-object snapshot instead of the card")
}
