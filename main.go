//go:build !(js || wasm)

package main

import (
	"github.com/cottand/tinfer/cmd"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tinfer [subcommand]",
	Short:        "tinfer infers the types of a tiny functional language by unification",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.InferCmd)
	rootCmd.AddCommand(cmd.ExamplesCmd)
}
