package main

import (
	"fmt"
	"strconv"

	"github.com/avdva/floatmath"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const negativeHint = `
Put "--" before negative operands, so that they are not taken for flags:
  floatcalc %s -- -0.3 0.2`

func (a *app) binaryCmd(name, short string, op func(x, y float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <a> <b>",
		Short: short,
		Long:  short + "." + fmt.Sprintf(negativeHint, name),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			return a.printResult(cmd, name, values, op(values[0], values[1]))
		},
	}
}

func (a *app) foldCmd(name, short string, op func(values ...float64) float64) *cobra.Command {
	return &cobra.Command{
		Use:   name + " [x...]",
		Short: short,
		Long:  short + "." + fmt.Sprintf(negativeHint, name),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			return a.printResult(cmd, name, values, op(values...))
		},
	}
}

func (a *app) pruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune <x>",
		Short: "Round a number to the given number of significant digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			res, err := a.calc.PruneTo(values[0], a.precision)
			if err != nil {
				return err
			}
			a.logger.Debug("pruned", zap.Float64("value", values[0]), zap.Int("precision", a.precision), zap.Float64("result", res))
			fmt.Fprintln(cmd.OutOrStdout(), floatmath.Format(res))
			return nil
		},
	}
	cmd.Flags().IntVarP(&a.precision, "precision", "p", floatmath.DefaultPrecision, "number of significant digits")
	return cmd
}

func (a *app) fractionLengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fraclen <x>",
		Short: "Print the number of digits after the decimal point, adjusted by the exponent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(floatmath.FractionLength(values[0])))
			return nil
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale <x>",
		Short: "Print the significant digits of a number as an integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), floatmath.Format(floatmath.ReplaceDotToSpace(values[0])))
			return nil
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <x>",
		Short: "Check, if a number is within the safe integer range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(a.calc.CheckBoundary(values[0])))
			return nil
		},
	}
}

func (a *app) printResult(cmd *cobra.Command, op string, values []float64, res float64) error {
	if a.pruneDigits != 0 {
		res = a.calc.Prune(res)
	}
	a.logger.Debug("computed", zap.String("op", op), zap.Float64s("operands", values), zap.Float64("result", res))
	fmt.Fprintln(cmd.OutOrStdout(), floatmath.Format(res))
	return nil
}

func parseArgs(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for i, arg := range args {
		v, err := floatmath.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("bad operand #%d %q: %w", i+1, arg, err)
		}
		values = append(values, v)
	}
	return values, nil
}
