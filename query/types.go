package query

import (
	"github.com/vegasq/csvcat/table"
)

// Operator is a comparison operator accepted in filter expressions
type Operator string

const (
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpEqual        Operator = "="
)

// operatorTrialOrder is the order in which operators are searched for in a
// raw filter expression. Two-character operators come first so that "a>=1"
// is not split on ">".
var operatorTrialOrder = []Operator{
	OpGreaterEqual,
	OpLessEqual,
	OpGreater,
	OpLess,
	OpEqual,
}

// FilterExpression represents a parsed single-comparison filter
type FilterExpression struct {
	Column   string
	Operator Operator
	Operand  string
}

// AggregateExpression represents a parsed "function:column" request
type AggregateExpression struct {
	Function string
	Column   string
}

// AggregateResult holds the outcome of an aggregation.
//
// Value is nil when the reduction produced no value.
type AggregateResult struct {
	Function string
	Column   string
	Value    *float64
}

// aggregateHeader is the column layout used when printing an AggregateResult
var aggregateHeader = []string{"agg", "column", "value"}

// Dataset renders the result as a single-row dataset with the columns
// agg, column and value. A missing value renders as an empty cell.
func (r *AggregateResult) Dataset() *table.Dataset {
	value := ""
	if r.Value != nil {
		value = table.FormatNumber(*r.Value)
	}
	return table.New(aggregateHeader, []table.Row{{
		"agg":    r.Function,
		"column": r.Column,
		"value":  value,
	}})
}
