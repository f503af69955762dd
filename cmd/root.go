package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cardbox-dev/cardbox/internal/card"
	"github.com/cardbox-dev/cardbox/internal/config"
	"github.com/cardbox-dev/cardbox/internal/tui"
	"github.com/cardbox-dev/cardbox/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "cardbox",
	Short:   "Render plain-text embed cards for chat-style UIs",
	Long: `Cardbox turns structured embed data (title, description, fields,
footer, timestamp) into fixed-width, box-drawn ASCII cards.

With no flags it opens the interactive builder TUI. With content flags it
renders the card straight to stdout.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		initializeGlobalState()

		if hasContentFlags(cmd) {
			return renderFromFlags(cmd, os.Stdout)
		}

		p := tea.NewProgram(tui.InitialModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running builder: %w", err)
		}
		return nil
	},
}

func hasContentFlags(cmd *cobra.Command) bool {
	for _, name := range []string{"title", "description", "footer", "field", "timestamp"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// renderFromFlags builds a card headlessly from the root command's flags and
// writes either the drawn card or its JSON snapshot to w.
func renderFromFlags(cmd *cobra.Command, w io.Writer) error {
	title, _ := cmd.Flags().GetString("title")
	desc, _ := cmd.Flags().GetString("description")
	footer, _ := cmd.Flags().GetString("footer")
	px, _ := cmd.Flags().GetInt("px")
	rawFields, _ := cmd.Flags().GetStringArray("field")
	stamp, _ := cmd.Flags().GetBool("timestamp")
	asJSON, _ := cmd.Flags().GetBool("json")

	fields, err := parseFieldFlags(rawFields)
	if err != nil {
		return err
	}

	e, err := buildCard(card.Data{Px: px}, title, desc, footer, fields, stamp)
	if err != nil {
		return err
	}

	if asJSON {
		return writeSnapshot(w, e)
	}
	fmt.Fprintln(w, e.Render())
	return nil
}

// parseFieldFlags turns repeated name=value flags into validated fields.
func parseFieldFlags(raw []string) ([]card.Field, error) {
	fields := make([]card.Field, 0, len(raw))
	for _, r := range raw {
		name, value, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --field %q: want name=value", r)
		}
		fields = append(fields, card.Field{Name: name, Value: value})
	}
	return card.NormalizeFields(fields)
}

// buildCard applies raw content through the card setters in render order,
// restoring the horizontal rule after the content setters clear it.
func buildCard(d card.Data, title, desc, footer string, fields []card.Field, stamp bool) (*card.Embed, error) {
	e, err := card.New(d, false)
	if err != nil {
		return nil, err
	}
	if d.Px != 0 {
		if _, err := e.SizeEmbed(d.Px); err != nil {
			return nil, err
		}
	}
	if title != "" {
		if _, err := e.SetTitle(title); err != nil {
			return nil, err
		}
	}
	if desc != "" {
		if _, err := e.SetDescription(desc); err != nil {
			return nil, err
		}
	}
	if d.Px != 0 {
		if _, err := e.SizeEmbed(d.Px); err != nil {
			return nil, err
		}
	}
	for _, f := range fields {
		if _, err := e.AddField(f.Name, f.Value); err != nil {
			return nil, err
		}
	}
	if footer != "" {
		if _, err := e.SetFooter(footer); err != nil {
			return nil, err
		}
	}
	if stamp {
		e.SetTimestamp()
	}
	return e, nil
}

// writeSnapshot emits the card's plain-object form as indented JSON.
func writeSnapshot(w io.Writer, e *card.Embed) error {
	data, err := json.MarshalIndent(e.ToData(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("title", "t", "", "Card title (emphasis-wrapped)")
	rootCmd.Flags().StringP("description", "d", "", "Card body (plain-wrapped)")
	rootCmd.Flags().StringP("footer", "f", "", "Footer, max 20 characters")
	rootCmd.Flags().Int("px", 0, "Interior column width, 3-46 (default 28)")
	rootCmd.Flags().StringArray("field", nil, "Field as name=value (repeatable)")
	rootCmd.Flags().Bool("timestamp", false, "Stamp the card with today's date")
	rootCmd.Flags().Bool("json", false, "Emit the plain-object snapshot instead of the card")
	rootCmd.SetVersionTemplate("cardbox version {{.Version}}\n")
}

// initializeGlobalState prepares the config directories and debug logging.
func initializeGlobalState() {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config dirs: %v\n", err)
	}
	utils.ConfigureDebug(config.GetLogsDir())
}
