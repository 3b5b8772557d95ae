package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/julien-sobczak/the-notelinter/internal/core"
	"github.com/julien-sobczak/the-notelinter/pkg/console"
	"golang.org/x/exp/slices"
)

func CheckConfig() {
	err := core.CurrentConfig().Check()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// CurrentVault returns the vault of the current directory (or $NTLINT_HOME).
func CurrentVault() *core.Vault {
	CheckConfig()
	return core.NewVaultFromConfig(core.CurrentConfig())
}

// argsToNotes converts file or directory arguments to vault-relative note paths.
// No argument means every note.
func argsToNotes(vault *core.Vault, args []string) ([]string, error) {
	notes, err := vault.Notes()
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return notes, nil
	}

	var results []string
	for _, arg := range args {
		relativePath, err := vault.RelativePath(arg)
		if err != nil {
			return nil, err
		}
		found := false
		for _, note := range notes {
			if relativePath == "." || note == relativePath || strings.HasPrefix(note, relativePath+"/") {
				found = true
				if !slices.Contains(results, note) {
					results = append(results, note)
				}
			}
		}
		if !found {
			return nil, fmt.Errorf("pathspec %q did not match any note", arg)
		}
	}
	return results, nil
}

// newProgressLog reports progress on stderr when the output is a terminal.
func newProgressLog(steps int) *console.ProgressLog {
	if color.NoColor {
		return console.NewProgressLog(steps, console.ToWriter(io.Discard))
	}
	return console.NewProgressLog(steps, console.ToWriter(os.Stderr))
}
