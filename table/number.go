package table

import (
	"strconv"
	"strings"
)

// ParseNumber interprets a cell as a decimal number.
//
// Leading and trailing whitespace is ignored. The second return value is
// false when the text is not a number.
func ParseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatNumber renders a number using the shortest representation that
// round-trips, without exponent for ordinary magnitudes.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
