package utils

import (
	"math"
)

// Round rounds half to even
func Round(x float64) int {
	return int(math.RoundToEven(x))
}
