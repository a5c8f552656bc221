package query

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Names(t *testing.T) {
	assert.Equal(t,
		[]string{"avg", "avg*2", "count", "max", "min", "sum"},
		DefaultRegistry().Names())
}

func TestRegistry_WithDoesNotMutate(t *testing.T) {
	base := DefaultRegistry()
	median := func(values []float64) (float64, bool) {
		if len(values) == 0 {
			return 0, false
		}
		sorted := append([]float64(nil), values...)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2, true
		}
		return sorted[mid], true
	}

	extended := base.With("median", median)

	_, ok := base.Get("median")
	assert.False(t, ok, "base registry must not see later registrations")

	_, ok = extended.Get("median")
	assert.True(t, ok)

	_, ok = extended.Get("avg")
	assert.True(t, ok, "extended registry keeps existing reducers")
}

func TestRegistry_CustomReducerThroughAggregate(t *testing.T) {
	reg := DefaultRegistry().With("range", func(values []float64) (float64, bool) {
		lo, ok := Min(values)
		if !ok {
			return 0, false
		}
		hi, _ := Max(values)
		return hi - lo, true
	})

	result, err := Aggregate(phones(), "range:price", reg)
	require.NoError(t, err)
	require.NotNil(t, result.Value)
	assert.Equal(t, 1000.0, *result.Value)

	// Parsing and error handling behave the same for custom reducers
	_, err = Aggregate(phones(), "range:brand", reg)
	require.ErrorIs(t, err, ErrNonNumericColumn)
	_, err = Aggregate(phones(), "range:nope", reg)
	require.ErrorIs(t, err, ErrUnknownColumn)
}

func TestRegistry_WithReplaces(t *testing.T) {
	reg := DefaultRegistry().With("avg", func([]float64) (float64, bool) { return 42, true })

	result, err := Aggregate(phones(), "avg:price", reg)
	require.NoError(t, err)
	assert.Equal(t, 42.0, *result.Value)
}

func TestReducers(t *testing.T) {
	reducers := map[string]Reducer{
		"avg":   Mean,
		"avg*2": DoubleMean,
		"min":   Min,
		"max":   Max,
		"sum":   Sum,
		"count": Count,
	}

	tests := []struct {
		name   string
		values []float64
		want   map[string]float64
	}{
		{
			name:   "single value",
			values: []float64{5},
			want:   map[string]float64{"avg": 5, "avg*2": 10, "min": 5, "max": 5, "sum": 5, "count": 1},
		},
		{
			name:   "mixed signs",
			values: []float64{-3, 1, 8},
			want:   map[string]float64{"avg": 2, "avg*2": 4, "min": -3, "max": 8, "sum": 6, "count": 3},
		},
	}

	for _, tt := range tests {
		for name, reduce := range reducers {
			t.Run(tt.name+"/"+name, func(t *testing.T) {
				got, ok := reduce(tt.values)
				require.True(t, ok)
				assert.Equal(t, tt.want[name], got)
			})
		}
	}
}

func TestReducers_Empty(t *testing.T) {
	for name, reduce := range map[string]Reducer{"avg": Mean, "avg*2": DoubleMean, "min": Min, "max": Max} {
		t.Run(name, func(t *testing.T) {
			_, ok := reduce(nil)
			assert.False(t, ok, "%s of nothing must have no value", name)
		})
	}

	sum, ok := Sum(nil)
	assert.True(t, ok)
	assert.Equal(t, 0.0, sum)

	count, ok := Count(nil)
	assert.True(t, ok)
	assert.Equal(t, 0.0, count)
}
