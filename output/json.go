package output

import (
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/csvcat/table"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines (one JSON object per line). Cell values
// stay strings; object keys are emitted in sorted order.
func (j *JSONFormatter) Format(ds *table.Dataset) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range ds.Rows {
		if err := encoder.Encode(map[string]string(row)); err != nil {
			return err
		}
	}
	return nil
}
