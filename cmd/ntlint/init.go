package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-notelinter/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Init linter configuration",
	Long:  `Set up local directory as the root of a vault.`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to read current working directory: %v\n", err)
			os.Exit(1)
		}
		_, err = core.InitConfigFromDirectory(cwd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error while initializing configuration: %v\n", err)
			os.Exit(1)
		}
	},
}
