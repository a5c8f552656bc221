package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// Supported format names
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

// ErrUnsupportedFormat is returned by NewFormatter for unknown format names
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a dataset in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the dataset in the formatter's specific format
	Format(ds *table.Dataset) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the accepted format names
func Formats() []string {
	return []string{FormatTable, FormatCSV, FormatJSON}
}

// NewFormatter returns the formatter registered under name writing to w.
// "jsonl" is accepted as an alias of "json".
func NewFormatter(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case FormatTable, "grid":
		return NewTableFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatJSON, "jsonl":
		return NewJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w %q (supported formats: %s)", ErrUnsupportedFormat, name, strings.Join(Formats(), ", "))
	}
}
