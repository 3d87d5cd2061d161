package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paperlang/paper/format"
	"github.com/spf13/cobra"
)

var evalFormat string

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a single expression or a document read from stdin",
	Long: `Evaluate a notepad expression and print its result.

Examples:
  paper eval "2 + 2"
  paper eval "5 km to mi"
  echo "x = 10" | paper eval`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(args)
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "text", "Output format: text, json, html, md")
	rootCmd.AddCommand(evalCmd)
}

func runEval(args []string) error {
	var input string
	if len(args) > 0 {
		input = strings.Join(args, " ")
	} else {
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		if strings.TrimSpace(string(bytes)) == "" {
			return fmt.Errorf("no input provided")
		}
		input = string(bytes)
	}

	calc, err := buildCalculator()
	if err != nil {
		return err
	}

	text, err := calc.Render(input, evalFormat, format.Options{IncludeErrors: true})
	if err != nil {
		return fmt.Errorf("format error: %w", err)
	}
	fmt.Print(text)
	return nil
}
