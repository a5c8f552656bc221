package query

import (
	"fmt"
	"strings"

	"github.com/vegasq/csvcat/table"
)

// ParseAggregate parses a "function:column" expression.
//
// The text is split on the first ':' and both sides are trimmed. The
// function must be registered in reg.
func ParseAggregate(expr string, reg *Registry) (*AggregateExpression, error) {
	if err := ValidateExpression(expr); err != nil {
		return nil, err
	}

	fn, col, found := strings.Cut(expr, ":")
	if !found {
		return nil, fmt.Errorf("%w %q: use function:column, e.g. avg:price", ErrMalformedAggregate, expr)
	}

	agg := &AggregateExpression{
		Function: strings.TrimSpace(fn),
		Column:   strings.TrimSpace(col),
	}
	if _, ok := reg.Get(agg.Function); !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownFunction, agg.Function, strings.Join(reg.Names(), ", "))
	}
	return agg, nil
}

// Apply reduces the expression's column over every row of ds.
//
// Every cell must parse as a number; the first one that does not aborts
// the whole aggregation with ErrNonNumericColumn.
func (a *AggregateExpression) Apply(ds *table.Dataset, reg *Registry) (*AggregateResult, error) {
	reduce, ok := reg.Get(a.Function)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFunction, a.Function)
	}
	if !ds.HasColumn(a.Column) {
		return nil, unknownColumn(a.Column, ds)
	}

	values, err := numericColumn(ds, a.Column)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}

	result := &AggregateResult{
		Function: a.Function,
		Column:   a.Column,
	}
	if v, ok := reduce(values); ok {
		result.Value = &v
	}
	return result, nil
}

// numericColumn coerces every cell of column to a number.
func numericColumn(ds *table.Dataset, column string) ([]float64, error) {
	values := make([]float64, 0, ds.Len())
	for i, row := range ds.Rows {
		v, ok := table.ParseNumber(row[column])
		if !ok {
			return nil, fmt.Errorf("%w: column %q has non-numeric value %q in row %d", ErrNonNumericColumn, column, row[column], i+1)
		}
		values = append(values, v)
	}
	return values, nil
}

// Aggregate parses expr and applies it to ds using the reducers in reg.
// An empty expression means no aggregation was requested and yields a nil
// result without error.
func Aggregate(ds *table.Dataset, expr string, reg *Registry) (*AggregateResult, error) {
	if expr == "" {
		return nil, nil
	}

	agg, err := ParseAggregate(expr, reg)
	if err != nil {
		return nil, err
	}
	return agg.Apply(ds, reg)
}
