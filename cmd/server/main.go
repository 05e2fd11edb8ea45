// Package main is the entry point for the squad optimizer server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "squad-optimizer",
	Short: "Hero Squad Optimizer API server",
	Long: `Hero Squad Optimizer provides a JSON API that estimates a party's
chance of overcoming an encounter and suggests per-character actions.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
