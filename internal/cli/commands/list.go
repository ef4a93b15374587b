package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/scpi-lang/scpi/internal/cli/config"
	"github.com/scpi-lang/scpi/internal/cli/ui"
)

// NewListCommand creates the 'list' command
func NewListCommand() *cobra.Command {
	var format string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the registered command table",
		Long: `List every command of the registered table in insertion order:
the built-in IEEE 488.2 set plus the scpi.yml table when present.`,
		Example: `  scpi list
  scpi list --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}

			if format == "json" {
				type row struct {
					Expression string `json:"expression"`
					Min        string `json:"min"`
					Max        string `json:"max"`
					Access     string `json:"access"`
					Doc        string `json:"doc,omitempty"`
				}
				rows := make([]row, 0, reg.Len())
				for _, entry := range reg.Entries() {
					rows = append(rows, row{
						Expression: entry.Expression,
						Min:        entry.Min,
						Max:        entry.Max,
						Access:     accessString(entry),
						Doc:        entry.Command.Doc,
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			table := ui.NewTable(cmd.OutOrStdout(), []string{"EXPRESSION", "MIN", "MAX", "ACCESS", "DOC"}, noColor)
			for _, entry := range reg.Entries() {
				table.AddRow(entry.Expression, entry.Min, entry.Max, accessString(entry), entry.Command.Doc)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
