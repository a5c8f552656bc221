package query

import (
	"fmt"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// ParseFilter parses a single comparison such as "price>1000".
//
// Operators are tried in the fixed order >=, <=, >, <, =. The first
// operator found anywhere in the text wins and its leftmost occurrence
// splits the text into column and operand, both trimmed. This means
// "a=b>c" splits on ">" even though "=" appears earlier.
func ParseFilter(expr string) (*FilterExpression, error) {
	if err := ValidateExpression(expr); err != nil {
		return nil, err
	}

	for _, op := range operatorTrialOrder {
		idx := strings.Index(expr, string(op))
		if idx == -1 {
			continue
		}
		return &FilterExpression{
			Column:   strings.TrimSpace(expr[:idx]),
			Operator: op,
			Operand:  strings.TrimSpace(expr[idx+len(op):]),
		}, nil
	}

	return nil, fmt.Errorf("%w %q: use column<op>value with one of >=, <=, >, <, =", ErrMalformedFilter, expr)
}

// String returns the canonical text form of the expression
func (f *FilterExpression) String() string {
	return f.Column + string(f.Operator) + f.Operand
}

// Match reports whether row satisfies the expression.
//
// When both the cell and the operand parse as numbers the comparison is
// numeric; otherwise both are compared as strings. The mode is decided per
// row, so a column mixing numbers and text may use both.
func (f *FilterExpression) Match(row table.Row) bool {
	return compare(row[f.Column], f.Operator, f.Operand)
}

// compare compares a cell with an operand using the given operator
func compare(left string, operator Operator, right string) bool {
	leftNum, leftIsNum := table.ParseNumber(left)
	rightNum, rightIsNum := table.ParseNumber(right)

	if leftIsNum && rightIsNum {
		return compareNumbers(leftNum, operator, rightNum)
	}
	return compareStrings(left, operator, right)
}

// compareNumbers compares two numbers
func compareNumbers(left float64, operator Operator, right float64) bool {
	switch operator {
	case OpEqual:
		return left == right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// compareStrings compares two strings (case-sensitive, byte order)
func compareStrings(left string, operator Operator, right string) bool {
	switch operator {
	case OpEqual:
		return left == right
	case OpLess:
		return left < right
	case OpGreater:
		return left > right
	case OpLessEqual:
		return left <= right
	case OpGreaterEqual:
		return left >= right
	default:
		return false
	}
}

// Apply selects the rows of ds matching the expression, preserving order.
//
// Returns ErrUnknownColumn if the column is not in the header and
// ErrNoMatches if no row matches.
func (f *FilterExpression) Apply(ds *table.Dataset) (*table.Dataset, error) {
	if !ds.HasColumn(f.Column) {
		return nil, unknownColumn(f.Column, ds)
	}

	filtered := make([]table.Row, 0)
	for _, row := range ds.Rows {
		if f.Match(row) {
			filtered = append(filtered, row)
		}
	}

	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w %q", ErrNoMatches, f.String())
	}
	return ds.WithRows(filtered), nil
}

// Filter parses expr and applies it to ds. An empty expression returns ds
// unchanged.
func Filter(ds *table.Dataset, expr string) (*table.Dataset, error) {
	if expr == "" {
		return ds, nil
	}

	f, err := ParseFilter(expr)
	if err != nil {
		return nil, err
	}
	return f.Apply(ds)
}
