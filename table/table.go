// Package table defines the in-memory row model shared by the reader,
// query and output packages.
//
// A Dataset is an ordered list of rows that all carry the same set of
// column names. Cell values are kept as the raw strings read from the
// source file; numeric interpretation happens at query time.
package table

// Row maps a column name to its raw cell value.
type Row map[string]string

// Dataset is an ordered collection of rows sharing one header.
//
// Header preserves the column order of the source file so that output
// can reproduce it. Rows are never mutated once loaded.
type Dataset struct {
	Header []string
	Rows   []Row
}

// New creates a dataset from a header and rows.
func New(header []string, rows []Row) *Dataset {
	return &Dataset{Header: header, Rows: rows}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// HasColumn reports whether name is part of the header.
func (d *Dataset) HasColumn(name string) bool {
	if d == nil {
		return false
	}
	for _, col := range d.Header {
		if col == name {
			return true
		}
	}
	return false
}

// Column returns the values of a column in row order.
func (d *Dataset) Column(name string) []string {
	values := make([]string, 0, d.Len())
	for _, row := range d.Rows {
		values = append(values, row[name])
	}
	return values
}

// Record returns the row values ordered by the header.
func (d *Dataset) Record(row Row) []string {
	record := make([]string, len(d.Header))
	for i, col := range d.Header {
		record[i] = row[col]
	}
	return record
}

// WithRows returns a dataset with the same header and the given rows.
func (d *Dataset) WithRows(rows []Row) *Dataset {
	return &Dataset{Header: d.Header, Rows: rows}
}

// Head returns a dataset limited to the first n rows. A non-positive n
// returns the dataset unchanged.
func (d *Dataset) Head(n int) *Dataset {
	if n <= 0 || n >= d.Len() {
		return d
	}
	return d.WithRows(d.Rows[:n])
}
