package floatmath

import (
	"fmt"

	mu "github.com/avdva/floatmath/internal/mathutil"
	su "github.com/avdva/floatmath/internal/strutil"
)

// CheckBoundary returns true, if x is in [MinSafeInteger, MaxSafeInteger].
// Otherwise, it sends a diagnostic to c's sink, and returns false.
// NaN is considered safe.
func (c *Calculator) CheckBoundary(x float64) bool {
	if mu.InSafeRange(x) {
		return true
	}
	c.sink.Warn(fmt.Sprintf("%s is beyond boundary, the final result may not be accurate", su.FormatNumber(x)))
	return false
}

// checkAll checks both scaled operands and the raw result.
// It never stops on the first violation, so up to three diagnostics can be sent.
func (c *Calculator) checkAll(n1, n2, res float64) {
	c.CheckBoundary(n1)
	c.CheckBoundary(n2)
	c.CheckBoundary(res)
}

// Add returns a+b without the representation error of float64 addition:
//
//	0.1 + 0.2 == 0.30000000000000004
//	Add(0.1, 0.2) == 0.3
func (c *Calculator) Add(a, b float64) float64 {
	l1, l2 := FractionLength(a), FractionLength(b)
	base := mu.Pow10(mu.MaxInt(l1, l2))
	diff := mu.Pow10(mu.AbsInt(l1 - l2))

	n1, n2 := ReplaceDotToSpace(a), ReplaceDotToSpace(b)
	// bring both integers to the same power of ten.
	if l1 > l2 {
		n2 *= diff
	} else {
		n1 *= diff
	}
	res := n1 + n2

	c.checkAll(n1, n2, res)
	return res / base
}

// Subtract returns a-b, computed as a+(-b):
//
//	0.3 - 0.2 == 0.09999999999999998
//	Subtract(0.3, 0.2) == 0.1
func (c *Calculator) Subtract(a, b float64) float64 {
	return c.Add(a, -b)
}

// Multiply returns a*b without the representation error of float64 multiplication:
//
//	0.097 * 100 == 9.700000000000001
//	Multiply(0.097, 100) == 9.7
func (c *Calculator) Multiply(a, b float64) float64 {
	l1, l2 := FractionLength(a), FractionLength(b)
	base := mu.Pow10(l1 + l2)

	n1, n2 := ReplaceDotToSpace(a), ReplaceDotToSpace(b)
	res := n1 * n2

	c.checkAll(n1, n2, res)
	return res / base
}

// Divide returns a/b without the representation error of float64 division:
//
//	1.21 / 1.1 == 1.0999999999999999
//	Divide(1.21, 1.1) == 1.1
//
// Division by zero is not handled, and the result is ±Inf or NaN.
func (c *Calculator) Divide(a, b float64) float64 {
	l1, l2 := FractionLength(a), FractionLength(b)
	base := mu.Pow10(l1 - l2)

	n1, n2 := ReplaceDotToSpace(a), ReplaceDotToSpace(b)
	res := n1 / n2

	c.checkAll(n1, n2, res)
	return res / base
}

// Sum adds values from left to right. Sum() is 0.
func (c *Calculator) Sum(values ...float64) float64 {
	return fold(c.Add, 0, values)
}

// Product multiplies values from left to right. Product() is 1.
func (c *Calculator) Product(values ...float64) float64 {
	return fold(c.Multiply, 1, values)
}

// fold returns identity for empty values, and values[0] for a single one.
func fold(op func(a, b float64) float64, identity float64, values []float64) float64 {
	if len(values) == 0 {
		return identity
	}
	result := values[0]
	for _, v := range values[1:] {
		result = op(result, v)
	}
	return result
}
