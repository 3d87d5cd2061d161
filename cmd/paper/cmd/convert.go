package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <unit> to <target>",
	Short: "Convert a single value between units, currencies, or timezones",
	Long: `Convert a value, reusing the same "<value> to <target>" conversion
syntax a notepad expression uses.

Examples:
  paper convert 5 km to mi
  paper convert 100 USD to EUR
  paper convert 14:00 UTC to Tokyo`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args)
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(args []string) error {
	expr := strings.Join(args, " ")

	calc, err := buildCalculator()
	if err != nil {
		return err
	}

	out := calc.Calculate(expr + "\n")
	if len(out.Results) == 0 {
		return fmt.Errorf("nothing to convert")
	}
	result := out.Results[0]
	if result.Err != "" {
		return fmt.Errorf("%s", result.Err)
	}
	fmt.Println(result.Result)
	return nil
}
