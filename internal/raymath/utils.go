package raymath

import (
	"strconv"

	"github.com/chewxy/math32"
)

func isFinite(x Real) bool { return !math32.IsInf(x, 0) && !math32.IsNaN(x) }

func clamp01(x Real) Real { return math32.Max(0, math32.Min(x, 1)) }

// fmtReal renders x with the fewest digits that round-trip.
func fmtReal(x Real) string { return strconv.FormatFloat(float64(x), 'f', -1, 32) }
