package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tableCmd)
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Format a table",
	Long:  `Align the columns of a Markdown table read from the standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		result, ok := markdown.FormatTable(strings.TrimRight(string(input), "\n"))
		if !ok {
			fmt.Fprintln(os.Stderr, "Input is not a Markdown table")
			os.Exit(1)
		}
		fmt.Println(result)
	},
}
