package reader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/vegasq/csvcat/table"
)

// loadDelimited reads a delimited text file whose first record is the header.
func loadDelimited(path string, opts Options) (*table.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseDelimited(data, opts)
}

// parseDelimited decodes delimited text held in memory.
func parseDelimited(data []byte, opts Options) (*table.Dataset, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrIO)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = opts.Delimiter
	if r.Comma == 0 {
		r.Comma = ','
	}
	// Every record must match the header width.
	r.FieldsPerRecord = 0

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	rows := make([]table.Row, 0)
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}

		row := make(table.Row, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return table.New(header, rows), nil
}

// validateHeader rejects headers that would break the one-key-per-column
// row model.
func validateHeader(header []string) error {
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		if seen[col] {
			return fmt.Errorf("%w: duplicate column %q in header", ErrIO, col)
		}
		seen[col] = true
	}
	return nil
}
