// Package output provides formatters for printing datasets.
//
// Supported formats:
//   - table: a bordered grid with a separator line between rows (default)
//   - csv: comma-separated values with a header row
//   - json: JSON Lines, one object per row
//
// All formatters take a *table.Dataset; aggregate results are printed by
// converting them with AggregateResult.Dataset first.
//
// # Basic Usage
//
//	formatter, err := output.NewFormatter("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(ds); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(os.Stdout)
//	formatter.SetOutput(&buf)
//
// The grid is rendered with github.com/olekukonko/tablewriter and JSON with
// github.com/segmentio/encoding/json.
package output
