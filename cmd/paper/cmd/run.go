package cmd

import (
	"fmt"
	"os"

	"github.com/paperlang/paper/format"
	"github.com/spf13/cobra"
)

var (
	runFormat  string
	runVerbose bool
	runOutput  string
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Evaluate a whole notepad file and print every line's result",
	Long: `Evaluate a notepad file, printing one result per line in document
order: headings and prose pass through unchanged, expressions show their
computed value, and a bad line shows its error without stopping the rest
of the file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun(args[0])
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "text", "Output format: text, json, html, md")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Show source lines alongside results")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(runCmd)
}

func runRun(filename string) error {
	if err := validateFilePath(filename); err != nil {
		return fmt.Errorf("invalid file: %w", err)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	calc, err := buildCalculator()
	if err != nil {
		return err
	}

	text, err := calc.Render(string(content), runFormat, format.Options{
		Verbose:       runVerbose,
		IncludeErrors: true,
	})
	if err != nil {
		return fmt.Errorf("format error: %w", err)
	}

	if runOutput == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(runOutput, []byte(text), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
