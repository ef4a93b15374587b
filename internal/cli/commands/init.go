package commands

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/scpi-lang/scpi/compiler/expr"
)

// commandTypes are the table entry types scpi.yml understands, in the
// order offered by the prompt.
var commandTypes = []string{
	"func", "int", "float", "str", "bool",
	"int-array", "float-array", "str-array",
	"idn", "err", "err-array",
}

// yamlCommand mirrors config.CommandConfig with yaml tags for writing.
type yamlCommand struct {
	Expression string `yaml:"expression"`
	Type       string `yaml:"type"`
	Access     string `yaml:"access,omitempty"`
	Doc        string `yaml:"doc,omitempty"`
}

type yamlConfig struct {
	Instrument string        `yaml:"instrument,omitempty"`
	Builtin    bool          `yaml:"builtin"`
	Table      []yamlCommand `yaml:"table"`
}

// NewInitCommand creates the 'init' command
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a scpi.yml command table",
		Long: `Create a scpi.yml command table in the current directory.

The prompts collect the instrument name and any number of command
expressions with their value type, access mode and documentation.
Expressions are validated as they are entered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat("scpi.yml"); err == nil && !force {
				return fmt.Errorf("scpi.yml already exists (use --force to overwrite)")
			}

			infoColor := color.New(color.FgCyan)
			successColor := color.New(color.FgGreen, color.Bold)

			cfg := yamlConfig{Builtin: true}

			if err := survey.AskOne(&survey.Input{
				Message: "Instrument name:",
			}, &cfg.Instrument); err != nil {
				return err
			}

			if err := survey.AskOne(&survey.Confirm{
				Message: "Include the built-in IEEE 488.2 command set?",
				Default: true,
			}, &cfg.Builtin); err != nil {
				return err
			}

			infoColor.Println("\nAdd command expressions (empty expression to finish).")
			for {
				var expression string
				if err := survey.AskOne(&survey.Input{
					Message: "Expression (e.g. SYSTem:ERRor[:NEXT]):",
				}, &expression, survey.WithValidator(validExpression)); err != nil {
					return err
				}
				if expression == "" {
					break
				}

				entry := yamlCommand{Expression: expression}

				if err := survey.AskOne(&survey.Select{
					Message: "Value type:",
					Options: commandTypes,
					Default: "func",
				}, &entry.Type); err != nil {
					return err
				}

				if entry.Type != "func" && entry.Type != "idn" && entry.Type != "err" && entry.Type != "err-array" {
					if err := survey.AskOne(&survey.Select{
						Message: "Access:",
						Options: []string{"rw", "ro", "wo"},
						Default: "rw",
					}, &entry.Access); err != nil {
						return err
					}
				}

				if err := survey.AskOne(&survey.Input{
					Message: "Doc (optional):",
				}, &entry.Doc); err != nil {
					return err
				}

				cfg.Table = append(cfg.Table, entry)
			}

			data, err := yaml.Marshal(&cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal scpi.yml: %w", err)
			}
			if err := os.WriteFile("scpi.yml", data, 0o644); err != nil {
				return fmt.Errorf("failed to write scpi.yml: %w", err)
			}

			successColor.Printf("\n✓ Created scpi.yml with %d command(s)\n", len(cfg.Table))
			infoColor.Println("Try: scpi list")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing scpi.yml")

	return cmd
}

// validExpression is the survey validator for command expressions. An
// empty answer is allowed; it ends the entry loop.
func validExpression(ans interface{}) error {
	s, _ := ans.(string)
	if s == "" {
		return nil
	}
	return expr.Validate(s)
}
