package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vegasq/csvcat/table"
)

var (
	// ErrMalformedFilter is returned when a filter has no comparison operator
	ErrMalformedFilter = errors.New("malformed filter expression")

	// ErrMalformedAggregate is returned when an aggregate has no ':' separator
	ErrMalformedAggregate = errors.New("malformed aggregate expression")

	// ErrUnknownColumn is returned when an expression references a column
	// that is not part of the header
	ErrUnknownColumn = errors.New("unknown column")

	// ErrUnknownFunction is returned when an aggregate names an unregistered function
	ErrUnknownFunction = errors.New("unknown aggregate function")

	// ErrNonNumericColumn is returned when an aggregated column holds a
	// value that is not a number
	ErrNonNumericColumn = errors.New("column must be numeric for aggregation")

	// ErrNoMatches is returned when a filter selects no rows. It is a normal
	// outcome rather than a failure.
	ErrNoMatches = errors.New("no rows match the filter")

	// ErrNoData is returned when there is nothing to aggregate. Like
	// ErrNoMatches it is not a failure.
	ErrNoData = errors.New("no data to aggregate")
)

// IsNormalOutcome reports whether err describes an empty but successful
// result rather than a failure.
func IsNormalOutcome(err error) bool {
	return errors.Is(err, ErrNoMatches) || errors.Is(err, ErrNoData)
}

// unknownColumn builds an ErrUnknownColumn that lists the available columns.
func unknownColumn(column string, ds *table.Dataset) error {
	return fmt.Errorf("%w %q (available columns: %s)", ErrUnknownColumn, column, strings.Join(ds.Header, ", "))
}
