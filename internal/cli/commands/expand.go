package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/scpi-lang/scpi/compiler/expr"
	"github.com/scpi-lang/scpi/internal/cli/ui"
)

// NewExpandCommand creates the 'expand' command
func NewExpandCommand() *cobra.Command {
	var format string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "expand <expression>...",
		Short: "Expand command expressions to their minimal and maximal forms",
		Long: `Expand SCPI command expressions.

For each expression the minimal form (shortest legal abbreviation), the
maximal form (fully spelled out) and the abbreviation matcher pattern
are shown.`,
		Example: `  # Expand the system error query
  scpi expand "SYSTem:ERRor[:NEXT]"

  # Several at once, as JSON
  scpi expand "*IDN" "MEASure[:CURRent[:DC]]" --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			type expansion struct {
				Expression string `json:"expression"`
				Min        string `json:"min"`
				Max        string `json:"max"`
				Pattern    string `json:"pattern"`
			}

			expansions := make([]expansion, 0, len(args))
			for _, expression := range args {
				compiled, err := expr.Compile(expression)
				if err != nil {
					return err
				}
				expansions = append(expansions, expansion{
					Expression: expression,
					Min:        compiled.Min,
					Max:        compiled.Max,
					Pattern:    expr.PatternString(expression),
				})
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(expansions)
			}

			table := ui.NewTable(cmd.OutOrStdout(), []string{"EXPRESSION", "MIN", "MAX", "PATTERN"}, noColor)
			for _, e := range expansions {
				table.AddRow(e.Expression, e.Min, e.Max, e.Pattern)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
