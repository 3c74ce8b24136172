package main

import (
	"fmt"
	"os"

	"github.com/jenian/printenvz/internal/dump"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "printenvz",
	Short: "Print the process environment as a NUL-delimited block",
	Long:  "Prints every inherited environment variable to stdout, each terminated by a NUL byte, between the --printenvz--begin and --printenvz--end marker lines.",
	// Arguments and flag-shaped tokens are accepted but never inspected.
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dump.Write(os.Stdout, os.Environ())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
