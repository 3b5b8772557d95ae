package markdown

import (
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-notelinter/pkg/text"
)

var regexDividerCell = regexp.MustCompile(`^:?-+:?$`)

// FormatTable aligns the columns of a pipe table.
// It returns false when the text is not a table (less than two rows or no divider row).
// Column alignment markers are not preserved.
func FormatTable(table string) (string, bool) {
	var rows [][]string
	for _, line := range strings.Split(table, "\n") {
		if text.IsBlank(line) {
			continue
		}
		rows = append(rows, splitTableRow(line))
	}
	if len(rows) < 2 || !isDividerRow(rows[1]) {
		return "", false
	}

	columns := 0
	for _, row := range rows {
		columns = max(columns, len(row))
	}
	widths := make([]int, columns)
	for i, row := range rows {
		if i == 1 {
			continue
		}
		for j, cell := range row {
			widths[j] = max(widths[j], text.CharWidth(cell))
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("|")
		for j, width := range widths {
			cell := ""
			if j < len(row) {
				cell = row[j]
			}
			if i == 1 {
				// An empty column still needs one dash
				cell = strings.Repeat("-", max(width, 1))
			} else {
				cell = text.PadEnd(cell, width, ' ')
			}
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(" |")
		}
	}
	return sb.String(), true
}

// FormatTables formats every pipe table of a document.
// Tables are runs of consecutive lines starting with a pipe outside fenced code blocks.
func FormatTables(md string) string {
	lines := strings.Split(md, "\n")
	var result []string
	var table []string
	flush := func() {
		if len(table) == 0 {
			return
		}
		if formatted, ok := FormatTable(strings.Join(table, "\n")); ok {
			result = append(result, strings.Split(formatted, "\n")...)
		} else {
			result = append(result, table...)
		}
		table = nil
	}

	var tracker FenceTracker
	for _, line := range lines {
		if !tracker.Feed(line).InFence() && strings.HasPrefix(strings.TrimSpace(line), "|") {
			table = append(table, line)
			continue
		}
		flush()
		result = append(result, line)
	}
	flush()
	return strings.Join(result, "\n")
}

// splitTableRow splits a row on unescaped pipes.
func splitTableRow(line string) []string {
	var cells []string
	var current strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '|' {
			current.WriteString(`\|`)
			i++
			continue
		}
		if c == '|' {
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteByte(c)
	}
	cells = append(cells, strings.TrimSpace(current.String()))

	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "|") && len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if strings.HasSuffix(trimmed, "|") && !strings.HasSuffix(trimmed, `\|`) && len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

func isDividerRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !regexDividerCell.MatchString(cell) {
			return false
		}
	}
	return true
}
