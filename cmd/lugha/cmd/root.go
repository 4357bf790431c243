// Package cmd implements the lugha CLI, grounded on the teacher's
// cmd/dwscript/cmd package shape: a cobra root command with run/lex/parse/
// version subcommands, each a thin driver over the internal packages.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; left at a dev default otherwise.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lugha",
	Short: "lugha interpreter",
	Long: `lugha is a small, dynamically-typed scripting language with
Swahili-keyword syntax: shughuli (function), kama (if), kwa (for),
wakati (while), andika (print).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}
