package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	"github.com/spf13/cobra"
)

var exportFormat string

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "as", "", "plain", "output format (plain, slack, or html)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Export a note",
	Long:  `Print the body of a note converted to another text format.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vault := CurrentVault()
		notes, err := argsToNotes(vault, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		for _, note := range notes {
			content, err := vault.LoadContent(note)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			result, err := exportNote(content, exportFormat)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Println(result)
		}
	},
}

func exportNote(content string, format string) (string, error) {
	body := markdown.ParseContent("", content).Body
	switch format {
	case "plain":
		return string(body.ToPlainText().TrimSpace()), nil
	case "slack":
		return string(body.ToSlack().TrimSpace()), nil
	case "html":
		return body.ToHTML(), nil
	}
	return "", fmt.Errorf("unsupported format %q", format)
}
