package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is "dev" unless a build overrides it with
// -ldflags "-X github.com/paperlang/paper/cmd/paper/cmd.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("paper %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
