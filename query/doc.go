// Package query filters and aggregates loaded datasets.
//
// Two kinds of expression are supported, and a run uses at most one:
//   - Filter expressions: a single comparison "column<op>value" where op is
//     one of >=, <=, >, <, =
//   - Aggregate expressions: "function:column" where function is a name
//     registered in a Registry (avg, min, max, avg*2, sum, count by default)
//
// # Filtering
//
//	filtered, err := query.Filter(ds, "price>1000")
//	if errors.Is(err, query.ErrNoMatches) {
//	    // nothing matched; not a failure
//	}
//
// Comparisons are numeric when both the cell and the operand parse as
// decimal numbers and fall back to string comparison otherwise. The choice
// is made separately for each row.
//
// # Aggregation
//
//	reg := query.DefaultRegistry().With("median", median)
//	result, err := query.Aggregate(ds, "avg:price", reg)
//
// The registry is an immutable value passed in by the caller; adding a
// function never requires touching the parser or the error handling.
//
// # Errors
//
// All failures wrap a sentinel error (ErrMalformedFilter,
// ErrMalformedAggregate, ErrUnknownColumn, ErrUnknownFunction,
// ErrNonNumericColumn, ErrExpressionTooLong). ErrNoMatches and ErrNoData
// describe empty results and are reported by IsNormalOutcome.
package query
