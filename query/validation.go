package query

import (
	"errors"
	"fmt"
)

// MaxExpressionLength is the maximum allowed filter or aggregate length (64KB)
const MaxExpressionLength = 64 * 1024

// ErrExpressionTooLong is returned when an expression exceeds MaxExpressionLength
var ErrExpressionTooLong = errors.New("expression too long")

// ValidateExpression performs length validation on expression input
func ValidateExpression(expr string) error {
	if len(expr) > MaxExpressionLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrExpressionTooLong, len(expr), MaxExpressionLength)
	}
	return nil
}
