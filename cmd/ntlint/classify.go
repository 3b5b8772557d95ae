package main

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-notelinter/internal/core"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(classifyCmd)
}

var classifyCmd = &cobra.Command{
	Use:   "classify [path...]",
	Short: "Show note types",
	Long:  `Print the note type of every note based on its path.`,
	Run: func(cmd *cobra.Command, args []string) {
		vault := CurrentVault()
		catalog := core.CurrentConfig().Catalog()
		notes, err := argsToNotes(vault, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		for _, note := range notes {
			fmt.Printf("%-16s %s\n", noteTypeName(catalog.Classify(note)), note)
		}
	},
}

func noteTypeName(noteType *core.NoteType) string {
	if noteType == nil {
		return "untyped"
	}
	return noteType.String()
}
