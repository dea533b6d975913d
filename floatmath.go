// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatmath implements decimal-safe arithmetic over float64 numbers.
//
// Native binary floating-point math has representation errors, like 0.1 + 0.2 = 0.30000000000000004.
// The functions of this package convert each operand into an integer, by removing the decimal point
// from its shortest textual form, perform the operation on integers, and then scale the result back.
// As a result, Add(0.1, 0.2) returns exactly 0.3.
//
// The integers must fit the safe range of float64, that is ±(2^53-1). If a scaled operand or
// a raw result does not, a diagnostic is sent to the calculator's Sink, and the result may be inaccurate.
//
// Non-finite operands are not supported. They are not rejected either:
// NaN and infinities just go through the algorithm and produce whatever falls out of it.
package floatmath

import (
	"errors"
	"fmt"

	mu "github.com/avdva/floatmath/internal/mathutil"
	"go.uber.org/zap"
)

const (
	// MaxSafeInteger is the maximum integer, which can be exactly represented as float64.
	MaxSafeInteger = mu.MaxSafeInteger
	// MinSafeInteger is the minimum integer, which can be exactly represented as float64.
	MinSafeInteger = mu.MinSafeInteger

	// DefaultPrecision is the number of significant digits Prune rounds to.
	DefaultPrecision = 12
	// MinPrecision and MaxPrecision define the valid range for a precision.
	MinPrecision = 1
	MaxPrecision = 100
)

var (
	// ErrInvalidArgument is returned, if a precision is out of [MinPrecision, MaxPrecision].
	ErrInvalidArgument = errors.New("invalid argument")

	// defaultCalc is used by the package-level functions.
	// It is not thread-safe, so it should be replaced by SetDefault on program start.
	defaultCalc = MustNew(WithLogger(newStderrLogger()))
)

// Calculator performs decimal-safe operations and reports diagnostics to its sink.
// It has no mutable state, and is safe for concurrent use, if its sink is.
type Calculator struct {
	sink      Sink
	precision int
}

// Option configures a Calculator.
type Option func(*Calculator) error

// WithSink sets the sink for boundary diagnostics. A nil sink drops all the messages.
func WithSink(s Sink) Option {
	return func(c *Calculator) error {
		if s == nil {
			s = NopSink()
		}
		c.sink = s
		return nil
	}
}

// WithLogger makes the calculator write diagnostics as warnings to the logger.
func WithLogger(logger *zap.Logger) Option {
	return WithSink(NewZapSink(logger))
}

// WithPrecision sets the number of significant digits for Calculator.Prune.
func WithPrecision(precision int) Option {
	return func(c *Calculator) error {
		if err := checkPrecision(precision); err != nil {
			return err
		}
		c.precision = precision
		return nil
	}
}

// New returns a calculator configured with given options.
// By default, diagnostics are dropped, and the precision is DefaultPrecision.
func New(opts ...Option) (*Calculator, error) {
	c := &Calculator{
		sink:      NopSink(),
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New, but panics on error.
func MustNew(opts ...Option) *Calculator {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the calculator used by the package-level functions.
// Its diagnostics are printed to stderr.
func Default() *Calculator {
	return defaultCalc
}

// SetDefault replaces the calculator used by the package-level functions.
// This function is not thread-safe, so this should be called on program start.
func SetDefault(c *Calculator) {
	if c == nil {
		panic("nil calculator")
	}
	defaultCalc = c
}

// Precision returns the number of significant digits used by c.Prune.
func (c *Calculator) Precision() int {
	return c.precision
}

func checkPrecision(precision int) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d is out of range [%d, %d]", ErrInvalidArgument, precision, MinPrecision, MaxPrecision)
	}
	return nil
}

// CheckBoundary returns true, if x is in [MinSafeInteger, MaxSafeInteger].
// Otherwise, it reports a diagnostic to the default sink, and returns false.
func CheckBoundary(x float64) bool {
	return defaultCalc.CheckBoundary(x)
}

// Add returns a+b. See Calculator.Add.
func Add(a, b float64) float64 {
	return defaultCalc.Add(a, b)
}

// Subtract returns a-b. See Calculator.Subtract.
func Subtract(a, b float64) float64 {
	return defaultCalc.Subtract(a, b)
}

// Multiply returns a*b. See Calculator.Multiply.
func Multiply(a, b float64) float64 {
	return defaultCalc.Multiply(a, b)
}

// Divide returns a/b. See Calculator.Divide.
func Divide(a, b float64) float64 {
	return defaultCalc.Divide(a, b)
}

// Sum returns the sum of values, or 0 if there are none.
func Sum(values ...float64) float64 {
	return defaultCalc.Sum(values...)
}

// Product returns the product of values, or 1 if there are none.
func Product(values ...float64) float64 {
	return defaultCalc.Product(values...)
}
