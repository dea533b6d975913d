// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command floatcalc performs decimal-safe arithmetic on numbers given in the command line.
//
//	floatcalc add 0.1 0.2            # 0.3
//	floatcalc --prune 4 div 2 3      # 0.6667
//	floatcalc prune -p 3 1.005       # 1
package main

import (
	"fmt"
	"os"

	"github.com/avdva/floatmath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	// flags
	quiet       bool
	verbose     bool
	pruneDigits int
	precision   int

	newLogger func(verbose bool) (*zap.Logger, error)

	logger *zap.Logger
	calc   *floatmath.Calculator
}

func newApp() *app {
	return &app{newLogger: productionLogger}
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "floatcalc",
		Short: "Decimal-safe float arithmetic",
		Long: `floatcalc adds, subtracts, multiplies and divides numbers without
the representation error of binary floating-point math, so that 0.1 + 0.2 is 0.3.

Operands, which do not fit the safe integer range after scaling, are reported as warnings.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "do not report boundary violations")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVarP(&a.pruneDigits, "prune", "P", 0, "prune arithmetic results to N significant digits, 0 to disable")

	root.AddCommand(
		a.binaryCmd("add", "Add two numbers", func(x, y float64) float64 { return a.calc.Add(x, y) }),
		a.binaryCmd("sub", "Subtract the second number from the first one", func(x, y float64) float64 { return a.calc.Subtract(x, y) }),
		a.binaryCmd("mul", "Multiply two numbers", func(x, y float64) float64 { return a.calc.Multiply(x, y) }),
		a.binaryCmd("div", "Divide the first number by the second one", func(x, y float64) float64 { return a.calc.Divide(x, y) }),
		a.foldCmd("sum", "Add all the numbers, 0 if there are none", func(v ...float64) float64 { return a.calc.Sum(v...) }),
		a.foldCmd("product", "Multiply all the numbers, 1 if there are none", func(v ...float64) float64 { return a.calc.Product(v...) }),
		a.pruneCmd(),
		a.fractionLengthCmd(),
		a.scaleCmd(),
		a.checkCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.logger, err = a.newLogger(a.verbose); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	opts := []floatmath.Option{floatmath.WithLogger(a.logger)}
	if a.quiet {
		opts = []floatmath.Option{floatmath.WithSink(floatmath.NopSink())}
	}
	if a.pruneDigits != 0 {
		opts = append(opts, floatmath.WithPrecision(a.pruneDigits))
	}
	if a.calc, err = floatmath.New(opts...); err != nil {
		return fmt.Errorf("bad configuration: %w", err)
	}
	return nil
}

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
