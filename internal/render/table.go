// Package render formats plain-text output tables.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table renders headers and rows as aligned lines. Columns in
// rightAlignCols are right-aligned; maxWidth > 0 truncates each line to
// the terminal width.
func Table(headers []string, rows [][]string, rightAlignCols map[int]bool, maxWidth int) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols, maxWidth))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols, maxWidth))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool, maxWidth int) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	line := strings.TrimRight(b.String(), " ")
	if maxWidth > 0 {
		line = runewidth.Truncate(line, maxWidth, "")
	}
	return line
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := runewidth.StringWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
