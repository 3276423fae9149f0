// Package report renders the challenge schedule as plain-text tables.
package report

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type align int

const (
	alignLeft align = iota
	alignRight
)

// column is one field of the plan table.
type column struct {
	title string
	align align
	cell  func(Row) string
}

const (
	emptyCell     = "-"
	dateLayout    = "2006-01-02"
	columnGap     = "  "
	sectionsLimit = 40
)

var planColumns = []column{
	{title: "Day", align: alignRight, cell: func(r Row) string { return strconv.Itoa(r.Day) }},
	{title: "Date", cell: func(r Row) string { return r.Date.Format(dateLayout) }},
	{title: "Phase", align: alignRight, cell: func(r Row) string { return strconv.Itoa(r.Phase) }},
	{title: "Questions", cell: func(r Row) string { return joinOrEmpty(r.Questions) }},
	{title: "Sections", cell: func(r Row) string {
		return runewidth.Truncate(joinOrEmpty(r.Sections), sectionsLimit, "...")
	}},
	{title: "Status", cell: func(r Row) string { return r.Status }},
}

// formatTable lays rows out under cols. Every column is as wide as its widest
// cell, measured in terminal cells, and trailing padding is dropped.
func formatTable(cols []column, rows []Row) []string {
	if len(cols) == 0 {
		return nil
	}
	cells := make([][]string, 0, len(rows)+1)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.title
	}
	cells = append(cells, header)
	for _, r := range rows {
		line := make([]string, len(cols))
		for i, c := range cols {
			line[i] = c.cell(r)
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(cols))
	for _, line := range cells {
		for i, cell := range line {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(cells))
	for _, line := range cells {
		var b strings.Builder
		for i, cell := range line {
			if i > 0 {
				b.WriteString(columnGap)
			}
			b.WriteString(padCell(cell, widths[i], cols[i].align))
		}
		lines = append(lines, strings.TrimRight(b.String(), " "))
	}
	return lines
}

func padCell(value string, width int, a align) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if a == alignRight {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func joinOrEmpty(items []string) string {
	if len(items) == 0 {
		return emptyCell
	}
	return strings.Join(items, ", ")
}
