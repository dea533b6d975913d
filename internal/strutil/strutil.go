// Package strutil converts float64 values to and from their canonical textual form.
//
// The canonical form is the shortest decimal string which parses back to the same float64,
// laid out the way ECMAScript's Number::toString does it: plain decimal notation
// for numbers in [1e-7, 1e21), and exponential notation like `1.001e-7` or `1e+21` otherwise.
package strutil

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const (
	delim = '.'

	// plain notation is used for n in (minPlainExp, maxPlainExp], where x = 0.digits * 10^n.
	minPlainExp = -6
	maxPlainExp = 21
)

var (
	manyZeros = bytes.Repeat([]byte{'0'}, 32)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

// FormatNumber returns the canonical textual form of f.
// Negative zero is formatted as "0", infinities as "Infinity" and "-Infinity".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	var b strings.Builder
	if f < 0 {
		b.WriteByte('-')
	}
	digits, n := shortestDigits(math.Abs(f))
	k := len(digits)
	switch {
	case k <= n && n <= maxPlainExp: // an integer, pad with zeros
		b.WriteString(digits)
		b.Write(zeroBytes(n - k))
	case 0 < n && n <= maxPlainExp: // insert a delimeter
		b.WriteString(digits[:n])
		b.WriteByte(delim)
		b.WriteString(digits[n:])
	case minPlainExp < n && n <= 0: // add leading zeros and a delimiter
		b.WriteByte('0')
		b.WriteByte(delim)
		b.Write(zeroBytes(-n))
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte(delim)
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(n - 1))
	}
	return b.String()
}

// shortestDigits returns the shortest digit string and n, so that f = 0.digits * 10^n.
// f must be positive and finite.
func shortestDigits(f float64) (digits string, n int) {
	mant, exp := SplitExp(strconv.FormatFloat(f, 'e', -1, 64))
	return RemoveDelim(mant), ParseExp(exp) + 1
}

// SplitExp splits s on the first exponent marker.
// If s has no exponent, exp is empty.
func SplitExp(s string) (mant, exp string) {
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

// ParseExp parses an exponent part, like "+21" or "-7".
// An empty or malformed exponent is treated as zero.
func ParseExp(exp string) int {
	if len(exp) == 0 {
		return 0
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return 0
	}
	return e
}

// FractionDigits returns the number of characters after the delimeter in mant.
func FractionDigits(mant string) int {
	if idx := strings.IndexByte(mant, delim); idx >= 0 {
		return len(mant) - idx - 1
	}
	return 0
}

// RemoveDelim removes the first delimeter from mant.
func RemoveDelim(mant string) string {
	return strings.Replace(mant, string(delim), "", 1)
}

// ParseNumber parses a decimal number, optionally quoted and surrounded by spaces.
// Exponential notation and the NaN/Infinity literals are accepted.
func ParseNumber(s string) (float64, error) {
	prepared, offset := prepareString(s)
	if len(prepared) == 0 {
		return 0, fmt.Errorf("empty input")
	}
	f, err := strconv.ParseFloat(prepared, 64)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return f, fmt.Errorf("parsing failed: value out of range")
	}
	if err := checkSymbols(prepared); err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return 0, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	return 0, fmt.Errorf("parsing failed: %w", err)
}

// prepareString cleans the string from " symbols, and spaces.
func prepareString(s string) (prepared string, offset int) {
	if len(s) == 0 {
		return "", 0
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	return strings.TrimRightFunc(s, unicode.IsSpace), offset
}

// checkSymbols locates the first symbol, which makes s an invalid decimal number.
func checkSymbols(s string) error {
	delimPos, expPos := -1, -1
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
		case r == '-' || r == '+':
			if i != 0 && i != expPos+1 {
				return newPosError(fmt.Sprintf("unexpected sign %q", r), i)
			}
		case r == 'e' || r == 'E':
			if expPos != -1 {
				return newPosError("unexpected exponent", i)
			}
			expPos = i
		case r == delim:
			if delimPos != -1 || expPos != -1 {
				return newPosError("unexpected delimeter", i)
			}
			delimPos = i
		default:
			return newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	return nil
}

func zeroBytes(count int) []byte {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	return bytes.Repeat([]byte{'0'}, count)
}
