package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter outputs tables as aligned text for terminals
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new terminal table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes t as a borderless table. Numeric columns are right aligned.
func (f *TableFormatter) Format(t *Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment(columnAlignment(t))

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		tw.Append(cells)
	}

	tw.Render()
	return nil
}

func columnAlignment(t *Table) []int {
	align := make([]int, len(t.Columns))
	for i := range align {
		align[i] = tablewriter.ALIGN_LEFT
		if len(t.Rows) > 0 && isNumber(t.Rows[0][i]) {
			align[i] = tablewriter.ALIGN_RIGHT
		}
	}
	return align
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}
