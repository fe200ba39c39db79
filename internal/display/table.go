package display

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableOption configures table rendering.
type TableOption func(*tablewriter.Table)

// WithRowSeparator draws a line after every row. Combined with
// [WithMergedCells] the line under a merged cell is left open, so each group
// of rows reads as one block.
func WithRowSeparator() TableOption {
	return func(t *tablewriter.Table) {
		t.SetRowLine(true)
	}
}

// WithMergedCells merges identical adjacent cells in the first column.
func WithMergedCells() TableOption {
	return func(t *tablewriter.Table) {
		t.SetAutoMergeCellsByColumnIndex([]int{0})
	}
}

// RenderTable writes a left-aligned bordered table to w.
func RenderTable(w io.Writer, headers []string, rows [][]string, opts ...TableOption) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(true)
	table.SetBorder(true)

	for _, opt := range opts {
		opt(table)
	}

	table.AppendBulk(rows)
	table.Render()
}
