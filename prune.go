package floatmath

import (
	"math"
	"strconv"

	su "github.com/avdva/floatmath/internal/strutil"
	"github.com/shopspring/decimal"
)

// exactDigits is enough to print any float64 in exponential form without rounding.
const exactDigits = 767

// Prune rounds x to DefaultPrecision significant digits with the default calculator.
// It removes the noise left by binary floating-point operations:
//
//	Prune(0.30000000000000004) == 0.3
func Prune(x float64) float64 {
	return defaultCalc.Prune(x)
}

// PruneTo rounds x to given number of significant digits with the default calculator.
// See Calculator.PruneTo.
func PruneTo(x float64, precision int) (float64, error) {
	return defaultCalc.PruneTo(x, precision)
}

// Prune rounds x to c.Precision() significant digits.
func (c *Calculator) Prune(x float64) float64 {
	return prune(x, c.precision)
}

// PruneTo rounds x to given number of significant digits.
// The exact binary value of x is rounded half away from zero, and then converted back
// to the nearest float64, so PruneTo(1.005, 3) is 1, as 1.005 is actually 1.00499999999999989...
// An error wrapping ErrInvalidArgument is returned, if precision is out of [MinPrecision, MaxPrecision].
// NaN and infinities are returned as is.
func (c *Calculator) PruneTo(x float64, precision int) (float64, error) {
	if err := checkPrecision(precision); err != nil {
		return 0, err
	}
	return prune(x, precision), nil
}

func prune(x float64, precision int) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		return x
	case x == 0:
		return 0
	}
	s := strconv.FormatFloat(x, 'e', exactDigits, 64)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return x
	}
	_, exp := su.SplitExp(s)
	// the first significant digit is at 10^exp, keep 'precision' digits starting from it.
	places := precision - 1 - su.ParseExp(exp)
	result, _ := d.Round(int32(places)).Float64()
	return result
}
