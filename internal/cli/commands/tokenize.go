package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scpi-lang/scpi/runtime/message"
)

// NewTokenizeCommand creates the 'tokenize' command
func NewTokenizeCommand() *cobra.Command {
	var (
		sep         string
		eol         string
		looseQuery  bool
		noColor     bool
		showRequest bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize <message>...",
		Short: "Tokenize raw composite messages",
		Long: `Tokenize raw instrument messages into individual commands and
queries, and print the canonical re-serialized message.

By default every query is forced onto its own line in the canonical
message; --loose-query keeps queries inline with surrounding commands.`,
		Example: `  scpi tokenize "*rst" "*idn?;*cls"
  scpi tokenize --loose-query "*rst;*idn?;*cls"
  scpi tokenize --requests "SOUR:FREQ 1000;SOUR:VOLT?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			out := cmd.OutOrStdout()

			if showRequest {
				header := color.New(color.FgCyan, color.Bold)
				for _, arg := range args {
					for _, req := range message.Split(arg, sep) {
						kind := "write"
						if req.Query {
							kind = "query"
						}
						header.Fprintf(out, "%s ", kind)
						fmt.Fprintf(out, "%s", req.Name)
						if req.Args != "" {
							fmt.Fprintf(out, " [args %s]", req.Args)
						}
						fmt.Fprintln(out)
					}
				}
				return nil
			}

			opts := &message.Options{EOL: eol, Sep: sep, StrictQuery: !looseQuery}
			commands, queries, canonical := message.Sanitize(args, opts)

			header := color.New(color.FgCyan, color.Bold)
			header.Fprintln(out, "Commands:")
			for _, c := range commands {
				fmt.Fprintf(out, "  %s\n", c)
			}
			header.Fprintln(out, "Queries:")
			for _, q := range queries {
				fmt.Fprintf(out, "  %s\n", q)
			}
			header.Fprintln(out, "Canonical:")
			fmt.Fprintf(out, "  %s\n", strconv.Quote(canonical))
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", message.DefaultSep, "Command separator")
	cmd.Flags().StringVar(&eol, "eol", message.DefaultEOL, "Line terminator")
	cmd.Flags().BoolVar(&looseQuery, "loose-query", false, "Keep queries inline instead of one per line")
	cmd.Flags().BoolVar(&showRequest, "requests", false, "Print parsed request units instead of sanitizing")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}
