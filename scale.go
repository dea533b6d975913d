package floatmath

import (
	"math"
	"strconv"

	su "github.com/avdva/floatmath/internal/strutil"
)

// Format returns the canonical textual form of x: the shortest string, which parses back to x,
// in plain notation for 1e-7 <= |x| < 1e21, and in exponential notation, like "1.001e-7", otherwise.
func Format(x float64) string {
	return su.FormatNumber(x)
}

// Parse parses a number in plain or exponential notation.
// Surrounding spaces and quotes are ignored.
func Parse(s string) (float64, error) {
	return su.ParseNumber(s)
}

// FractionLength returns the number of digits after the decimal point in x's canonical form,
// minus the exponent, if the form is exponential.
// The result is negative for large numbers in exponential form:
//
//	FractionLength(1.001) == 3
//	FractionLength(1.001e-7) == 10
//	FractionLength(1e21) == -21
func FractionLength(x float64) int {
	mant, exp := su.SplitExp(su.FormatNumber(x))
	return su.FractionDigits(mant) - su.ParseExp(exp)
}

// ReplaceDotToSpace returns the significant digits of x's canonical form read as an integer.
// The exponent, if any, is ignored:
//
//	ReplaceDotToSpace(1.001) == 1001
//	ReplaceDotToSpace(1.001e-7) == 1001
func ReplaceDotToSpace(x float64) float64 {
	mant, _ := su.SplitExp(su.FormatNumber(x))
	f, err := strconv.ParseFloat(su.RemoveDelim(mant), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
