package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paper",
	Short: "paper - a notepad calculator",
	Long: `paper evaluates a notepad of plain-text calculations: numbers, units,
currencies, dates, and variables mixed with markdown headings and prose.

Examples:
  paper                      Start the interactive repl
  paper eval "2 + 2"         Evaluate one expression and print the result
  paper run notes.txt        Evaluate a whole file, one result per line
  paper convert 5 km to mi   Convert a single value between units`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl()
	},
}

// Execute runs the root command, the CLI's sole entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
