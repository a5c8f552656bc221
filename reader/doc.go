// Package reader loads tabular files into memory.
//
// Delimited text (comma-separated by default) is the primary input; the
// first record is the header and every following record becomes a row
// keyed by header name. Parquet files are accepted as well and are
// flattened to the same string-valued row model.
//
// # Basic Usage
//
//	ds, err := reader.Load("phones.csv", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range ds.Rows {
//	    fmt.Println(row["name"], row["price"])
//	}
//
// # Errors
//
// Load never returns a partial dataset. Failures wrap one of:
//
//   - ErrNotFound: the path does not exist
//   - ErrEmpty: the file has no data rows
//   - ErrIO: any other failure (permissions, invalid UTF-8, bad quoting,
//     rows whose width differs from the header)
//
// Use errors.Is to tell them apart.
//
// # Schema Introspection
//
// Describe reports each column with an inferred type of "number" or
// "string":
//
//	for _, col := range reader.Describe(ds) {
//	    fmt.Printf("%s: %s\n", col.Name, col.Type)
//	}
package reader
