package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvcat/table"
)

// ParquetReader reads parquet files and returns rows as string maps.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens the parquet file at path.
//
// Returns an error if the file doesn't exist or is not a valid parquet file.
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: not a parquet file: %v", ErrIO, err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Header returns the top-level column names in schema order.
func (r *ParquetReader) Header() []string {
	fields := r.pqFile.Schema().Fields()
	header := make([]string, len(fields))
	for i, field := range fields {
		header[i] = field.Name()
	}
	return header
}

// ReadAll reads all rows from the parquet file into memory.
//
// Every value is rendered to its text form so that parquet input flows
// through the same string-based pipeline as delimited text.
func (r *ParquetReader) ReadAll() (*table.Dataset, error) {
	header := r.Header()
	rows := make([]table.Row, 0)

	reader := parquet.NewReader(r.pqFile)
	defer func() { _ = reader.Close() }()

	for {
		raw := make(map[string]interface{})
		err := reader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: failed to read row %d: %v", ErrIO, len(rows)+1, err)
		}

		row := make(table.Row, len(header))
		for _, col := range header {
			row[col] = formatCell(raw[col])
		}
		rows = append(rows, row)
	}

	return table.New(header, rows), nil
}

// Close releases the underlying file handle.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

func loadParquet(path string) (*table.Dataset, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadAll()
}

// formatCell converts a decoded parquet value to its cell text.
func formatCell(v interface{}) string {
	if v == nil {
		return ""
	}

	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return table.FormatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
