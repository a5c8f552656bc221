package output

import (
	"encoding/csv"
	"io"

	"github.com/vegasq/csvcat/table"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes rows as CSV with a header line, keeping the dataset's
// column order
func (c *CSVFormatter) Format(ds *table.Dataset) error {
	if ds.Len() == 0 {
		return nil
	}

	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(ds.Header); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		if err := csvWriter.Write(ds.Record(row)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
