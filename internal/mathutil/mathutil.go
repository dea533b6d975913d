package mathutil

import (
	"math"
	"unsafe"
)

const (
	// MaxSafeInteger is the largest integer n, such that n and n+1 are exactly representable as float64.
	MaxSafeInteger = 1<<53 - 1
	// MinSafeInteger is -MaxSafeInteger.
	MinSafeInteger = -MaxSafeInteger
)

var (
	float64FactorTable = [...]float64{ // all of them are exact
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
		1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20,
		1e21, 1e22,
	}
)

// Pow10 returns 10^pow as a float64.
// For 0 <= pow <= 22 the result is exact, negative powers are correctly rounded reciprocals.
func Pow10(pow int) float64 {
	if pow >= 0 && pow < len(float64FactorTable) {
		return float64FactorTable[pow]
	}
	return math.Pow10(pow)
}

// InSafeRange returns true, if f lies in [MinSafeInteger, MaxSafeInteger].
// NaN is considered to be in range, as it fails both comparisons.
func InSafeRange(f float64) bool {
	return !(f > MaxSafeInteger || f < MinSafeInteger)
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
