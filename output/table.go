package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/table"
)

// NoDataMessage is printed by the table formatter for a dataset without rows
const NoDataMessage = "No data to display."

// TableFormatter outputs rows as a bordered grid
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new grid table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes the dataset as a grid with one line between rows.
// Columns whose cells are all numeric are right-aligned.
func (f *TableFormatter) Format(ds *table.Dataset) error {
	if ds.Len() == 0 {
		_, err := fmt.Fprintln(f.writer, NoDataMessage)
		return err
	}

	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(ds.Header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetRowLine(true)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment(columnAlignment(ds))

	for _, row := range ds.Rows {
		tw.Append(ds.Record(row))
	}
	tw.Render()

	return nil
}

// columnAlignment right-aligns numeric columns and left-aligns the rest
func columnAlignment(ds *table.Dataset) []int {
	alignment := make([]int, len(ds.Header))
	for i, col := range ds.Header {
		alignment[i] = tablewriter.ALIGN_RIGHT
		for _, row := range ds.Rows {
			if _, ok := table.ParseNumber(row[col]); !ok {
				alignment[i] = tablewriter.ALIGN_LEFT
				break
			}
		}
	}
	return alignment
}
