package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/julien-sobczak/the-notelinter/internal/markdown"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"github.com/spf13/cobra"
)

var fmtWrite bool

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result to the source files instead of printing a patch")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [path...]",
	Short: "Format notes",
	Long:  `Normalize blank lines before headings and align tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		vault := CurrentVault()
		notes, err := argsToNotes(vault, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		progress := newProgressLog(len(notes))
		defer progress.Clear("")
		for i, note := range notes {
			progress.Log(i, note)
			content, err := vault.LoadContent(note)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			formatted := formatNote(content)
			if formatted == content {
				continue
			}

			progress.Clear("")
			if !fmtWrite {
				printDiff(godiffpatch.GeneratePatch(note, content, formatted))
				continue
			}
			path := vault.AbsolutePath(note)
			info, err := os.Stat(path)
			if err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if err := os.WriteFile(path, []byte(formatted), info.Mode()); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			fmt.Println(note)
		}
	},
}

// formatNote formats the body of a note. The Front Matter is kept as is.
func formatNote(content string) string {
	file := markdown.ParseContent("", content)
	body := string(file.Body)
	body = markdown.ApplyReplacements(body, markdown.FormatLineBreaks(body))
	body = markdown.FormatTables(body)
	file.Body = markdown.Document(body)
	return file.Content()
}

func printDiff(diff string) {
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			color.Red(line)
		} else if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			color.Green(line)
		} else {
			fmt.Println(line)
		}
	}
}
