package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardbox-dev/cardbox/internal/card"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print a demo card",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := buildCard(card.Data{Px: 24},
			"Release notes",
			"Fixed-width chunk wrapping keeps every byte of the input intact across lines.",
			"cardbox v1",
			[]card.Field{
				{Name: "Status", Value: "shipped"},
				{Name: "Channel", Value: "#general"},
			},
			false,
		)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), e.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
