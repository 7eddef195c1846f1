// Package formatter renders run summaries as display-width aligned tables.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"procnorm/internal/stream"
)

const minColumnWidth = 3

// FormatTable renders headers and rows as a markdown style table whose columns are
// padded to the widest cell, measured in terminal cells. Short rows are padded with
// empty cells.
func FormatTable(headers []string, rows [][]string) string {
	table := make([][]string, 0, len(rows)+1)
	table = append(table, headers)
	table = append(table, rows...)

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColumnWidth
	}

	for _, row := range table {
		for i, cell := range row {
			if width := runewidth.StringWidth(strings.TrimSpace(cell)); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	var sb strings.Builder

	writeRow(&sb, headers, colWidths)

	sb.WriteString("|")
	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(&sb, row, colWidths)
	}

	return sb.String()
}

func writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = strings.TrimSpace(row[j])
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

// FormatSummary renders the counters of one run.
func FormatSummary(transform string, stats stream.Stats) string {
	if transform == "" {
		transform = "(passthrough)"
	}

	rows := [][]string{
		{"transform", transform},
		{"read", strconv.Itoa(stats.Read)},
		{"emitted", strconv.Itoa(stats.Emitted)},
		{"dropped", strconv.Itoa(stats.Dropped)},
		{"failed", strconv.Itoa(stats.Failed)},
	}

	return FormatTable([]string{"Metric", "Value"}, rows)
}
