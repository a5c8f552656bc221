package query

import (
	"sort"
)

// Reducer maps a sequence of numbers to a single number.
//
// The boolean result is false when the reduction has no value, for
// example the mean of an empty sequence.
type Reducer func(values []float64) (float64, bool)

// Registry maps aggregate function names to reducers.
//
// A Registry is immutable once built: With returns an extended copy, so a
// registry can be shared freely after construction. Names are
// case-sensitive.
type Registry struct {
	reducers map[string]Reducer
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{reducers: make(map[string]Reducer)}
}

// DefaultRegistry returns the built-in aggregate functions:
// avg, min, max, avg*2, sum and count.
func DefaultRegistry() *Registry {
	return NewRegistry().
		With("avg", Mean).
		With("min", Min).
		With("max", Max).
		With("avg*2", DoubleMean).
		With("sum", Sum).
		With("count", Count)
}

// With returns a copy of the registry with fn registered under name,
// replacing any reducer already registered with that name.
func (r *Registry) With(name string, fn Reducer) *Registry {
	reducers := make(map[string]Reducer, len(r.reducers)+1)
	for k, v := range r.reducers {
		reducers[k] = v
	}
	reducers[name] = fn
	return &Registry{reducers: reducers}
}

// Get retrieves a reducer by name
func (r *Registry) Get(name string) (Reducer, bool) {
	fn, ok := r.reducers[name]
	return fn, ok
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.reducers))
	for name := range r.reducers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mean returns the arithmetic mean.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum, _ := Sum(values)
	return sum / float64(len(values)), true
}

// DoubleMean returns twice the arithmetic mean.
func DoubleMean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum, _ := Sum(values)
	return 2 * sum / float64(len(values)), true
}

// Min returns the smallest value.
func Min(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	result := values[0]
	for _, v := range values[1:] {
		if v < result {
			result = v
		}
	}
	return result, true
}

// Max returns the largest value.
func Max(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	result := values[0]
	for _, v := range values[1:] {
		if v > result {
			result = v
		}
	}
	return result, true
}

// Sum returns the total; the sum of nothing is zero.
func Sum(values []float64) (float64, bool) {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum, true
}

// Count returns the number of values.
func Count(values []float64) (float64, bool) {
	return float64(len(values)), true
}
