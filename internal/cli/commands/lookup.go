package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scpi-lang/scpi/internal/cli/config"
	"github.com/scpi-lang/scpi/internal/cli/ui"
	"github.com/scpi-lang/scpi/runtime/registry"
)

// NewLookupCommand creates the 'lookup' command
func NewLookupCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Resolve a command abbreviation against the command table",
		Long: `Resolve a command name against the registered command table.

Any legal abbreviation in any casing resolves: "syst:err",
"SYSTEM:ERROR:NEXT" and ":SYST:ERR" all find SYSTem:ERRor[:NEXT]. The
table is the built-in IEEE 488.2 set, extended by scpi.yml when present
in the current directory.`,
		Example: `  scpi lookup "syst:err"
  scpi lookup "*idn"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}

			name := args[0]
			entry, err := reg.Lookup(name)
			if err != nil {
				if registry.IsNotFound(err) {
					return fmt.Errorf("%w%s", err, suggestionHint(name, reg))
				}
				return err
			}

			table := ui.NewKeyValueTable(cmd.OutOrStdout(), noColor)
			table.AddRow("Expression", entry.Expression)
			table.AddRow("Minimal", entry.Min)
			table.AddRow("Maximal", entry.Max)
			table.AddRow("Access", accessString(entry))
			if entry.Command.Doc != "" {
				table.AddRow("Doc", entry.Command.Doc)
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// suggestionHint formats a "did you mean" suffix from the minimal forms
// of the registered commands.
func suggestionHint(name string, reg *registry.Registry) string {
	candidates := make([]string, 0, reg.Len())
	for _, entry := range reg.Entries() {
		candidates = append(candidates, entry.Min)
	}
	similar := ui.FindSimilar(name, candidates)
	if len(similar) == 0 {
		return ""
	}
	return fmt.Sprintf(" (did you mean %s?)", strings.Join(similar, ", "))
}

func accessString(entry *registry.Entry) string {
	switch {
	case entry.Command.CanQuery() && entry.Command.CanWrite():
		return "read/write"
	case entry.Command.CanQuery():
		return "read-only"
	case entry.Command.CanWrite():
		return "write-only"
	}
	return "none"
}
