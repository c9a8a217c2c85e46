// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/pricelab/pricelab/pkg/constants"
)

// IsNegative checks if a value is negative (less than negative tolerance)
func IsNegative(val float64) bool {
	return val < -constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
