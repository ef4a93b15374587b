// Package commands implements the scpi CLI subcommands.
package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scpi",
		Short: "SCPI command-expression tooling",
		Long: color.CyanString(`scpi - SCPI command-expression engine

Tooling for the SCPI command grammar used by programmable instruments.
Command expressions such as SYSTem:ERRor[:NEXT] describe every legal
abbreviation of a command; this tool expands them, resolves
abbreviations against a command table, and tokenizes raw instrument
messages.

Features:
  • Expand expressions to minimal/maximal forms and matcher patterns
  • Resolve any abbreviation against the IEEE 488.2 built-in table
  • Extend the table from scpi.yml
  • Tokenize composite messages with query-per-line grouping`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewExpandCommand())
	rootCmd.AddCommand(NewLookupCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewTokenizeCommand())
	rootCmd.AddCommand(NewInitCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("scpi version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
