// Package main is the entry point for the guild store inventory simulator
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "guildstock",
	Short: "Guild store inventory simulator",
	Long:  `GuildStock revalues a guild store's inventory day by day, applying each item category's appraisal rule.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}
