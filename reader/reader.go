package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvcat/table"
)

var (
	// ErrNotFound is returned when the input path does not exist
	ErrNotFound = errors.New("file not found")

	// ErrEmpty is returned when the input has no data rows
	ErrEmpty = errors.New("file is empty or contains no data rows")

	// ErrIO is returned for any other read failure: permissions, encoding,
	// malformed quoting or inconsistent rows
	ErrIO = errors.New("failed to read file")
)

// Options controls how a file is parsed.
type Options struct {
	// Delimiter separates fields in text input. Zero means comma.
	Delimiter rune
}

// DefaultOptions returns comma-delimited parsing options.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// Load reads the file at path into a dataset.
//
// Files ending in .parquet are decoded as Parquet; everything else is
// treated as delimited text with a header line. The returned dataset always
// holds at least one row. On failure the error wraps ErrNotFound, ErrEmpty
// or ErrIO and no partial data is returned.
func Load(path string, opts Options) (*table.Dataset, error) {
	var (
		ds  *table.Dataset
		err error
	)
	if IsParquet(path) {
		ds, err = loadParquet(path)
	} else {
		ds, err = loadDelimited(path, opts)
	}
	if err != nil {
		return nil, classify(path, err)
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return ds, nil
}

// IsParquet reports whether path names a Parquet file.
func IsParquet(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".parquet")
}

// classify maps a low-level error onto the reader error kinds.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, ErrEmpty):
		return fmt.Errorf("%w: %s", ErrEmpty, path)
	case errors.Is(err, ErrIO), errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		return fmt.Errorf("%w %s: %v", ErrIO, path, err)
	}
}
