package strutil

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f float64
		s string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-1, "-1"},
		{100, "100"},
		{0.1, "0.1"},
		{-0.2, "-0.2"},
		{1.001, "1.001"},
		{0.30000000000000004, "0.30000000000000004"},
		{1200000, "1200000"},
		{123.456, "123.456"},
		{0.000001, "0.000001"},
		{0.0000012, "0.0000012"},
		{1e-7, "1e-7"},
		{1.001e-7, "1.001e-7"},
		{-1.001e-7, "-1.001e-7"},
		{123e-20, "1.23e-18"},
		{1e20, "100000000000000000000"},
		{123456789012345680000, "123456789012345680000"},
		{1e21, "1e+21"},
		{1.5e300, "1.5e+300"},
		{9007199254740992, "9007199254740992"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{math.SmallestNonzeroFloat64, "5e-324"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s := FormatNumber(test.f)
			a.Equal(test.s, s)
			if !math.IsNaN(test.f) && !math.IsInf(test.f, 0) {
				parsed, err := strconv.ParseFloat(s, 64)
				if a.NoError(err) {
					a.Equal(test.f, parsed)
				}
			}
		})
	}
}

func TestSplitExp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s, mant, exp string
		e            int
	}{
		{"1.001", "1.001", "", 0},
		{"1.001e-7", "1.001", "-7", -7},
		{"1E+21", "1", "+21", 21},
		{"-5e3", "-5", "3", 3},
		{"NaN", "NaN", "", 0},
		{"Infinity", "Infinity", "", 0},
		{"1e", "1", "", 0},
		{"1ex", "1", "x", 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			mant, exp := SplitExp(test.s)
			a.Equal(test.mant, mant)
			a.Equal(test.exp, exp)
			a.Equal(test.e, ParseExp(exp))
		})
	}
}

func TestFractionDigits(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		mant    string
		digits  int
		removed string
	}{
		{"0", 0, "0"},
		{"100", 0, "100"},
		{"1.001", 3, "1001"},
		{"-0.2", 1, "-02"},
		{"0.000001", 6, "0000001"},
		{"12.", 0, "12"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.digits, FractionDigits(test.mant))
			a.Equal(test.removed, RemoveDelim(test.mant))
		})
	}
}

func TestParseNumber(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		f   float64
		err string
	}{
		{"0", 0, ""},
		{" 0.1 ", 0.1, ""},
		{`"-0.2"`, -0.2, ""},
		{`" 1.001e-7"`, 1.001e-7, ""},
		{"1E+21", 1e21, ""},
		{"+.5", 0.5, ""},
		{"Infinity", math.Inf(1), ""},
		{"", 0, "empty input"},
		{`"  "`, 0, "empty input"},
		{"12a", 0, "parsing failed: unexpected symbol 'a' at pos 3"},
		{`"1x"`, 0, "parsing failed: unexpected symbol 'x' at pos 3"},
		{"  1.2.3", 0, "parsing failed: unexpected delimeter at pos 6"},
		{"1-2", 0, "parsing failed: unexpected sign '-' at pos 2"},
		{"1e2e3", 0, "parsing failed: unexpected exponent at pos 4"},
		{"1e400", 0, "parsing failed: value out of range"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := ParseNumber(test.s)
			if len(test.err) == 0 {
				if a.NoError(err) {
					a.Equal(test.f, f)
				}
			} else {
				a.EqualError(err, test.err)
			}
		})
	}
}

func BenchmarkFormatNumber(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FormatNumber(1.001e-7)
	}
}
