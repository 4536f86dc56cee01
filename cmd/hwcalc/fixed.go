// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var fixedCmd = &cobra.Command{
	Use:   "fixed [flags] op operand [operand | high low]",
	Short: "Evaluate fixed_pkg fixed-point operators.",
	Long: `Evaluate ufixed or sfixed operators.
	Operands are decimal numbers converted to fixed-point with bounds
	--high downto --low, using the --round and --overflow modes. Results
	are printed as bits followed by their exact decimal value.

	Binary operators are add, sub, mul, div and cmp. Unary operators are neg
	and abs for signed operands. resize takes one operand and the target
	high and low bounds. Use -- before negative operands or bounds.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rnd, ovf, err := modes(cmd)
		if err != nil {
			return err
		}
		op, operands := args[0], args[1:]
		high, low := getInt(cmd, "high"), getInt(cmd, "low")
		var bounds []int
		if op == "resize" {
			if err = arity(op, len(operands), 3); err != nil {
				return err
			}
			if bounds, err = atoi(operands[1:]...); err != nil {
				return err
			}
			operands = operands[:1]
		}
		var out string
		if getFlag(cmd, "signed") {
			xs := make([]hw.Sfixed, len(operands))
			for i, s := range operands {
				if xs[i], err = hw.SfixedFromDecimal(s, high, low, rnd, ovf); err != nil {
					return err
				}
				log.Debugf("operand %d: %s (%s)", i, xs[i], xs[i].Text())
			}
			out, err = evalSfixed(op, xs, bounds, rnd, ovf)
		} else {
			xs := make([]hw.Ufixed, len(operands))
			for i, s := range operands {
				if xs[i], err = hw.UfixedFromDecimal(s, high, low, rnd, ovf); err != nil {
					return err
				}
				log.Debugf("operand %d: %s (%s)", i, xs[i], xs[i].Text())
			}
			out, err = evalFixed(op, xs, bounds, rnd, ovf)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// fixed is the set of operators shared by hw.Ufixed and hw.Sfixed.
type fixed[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T, hw.Round) (T, error)
	Resize(high, low int, rnd hw.Round, ovf hw.Overflow) (T, error)
	Cmp(T) int
	String() string
	Text() string
}

func evalFixed[T fixed[T]](op string, xs []T, bounds []int, rnd hw.Round, ovf hw.Overflow) (string, error) {
	var (
		z   T
		err error
	)
	switch op {
	case "resize":
		if z, err = xs[0].Resize(bounds[0], bounds[1], rnd, ovf); err != nil {
			return "", err
		}
		return fixedResult(z), nil
	case "add", "sub", "mul", "div", "cmp":
		if err = arity(op, len(xs), 2); err != nil {
			return "", err
		}
	default:
		return "", errors.Errorf("unknown fixed-point operator %q", op)
	}
	x, y := xs[0], xs[1]
	switch op {
	case "add":
		z = x.Add(y)
	case "sub":
		z = x.Sub(y)
	case "mul":
		z = x.Mul(y)
	case "div":
		if z, err = x.Div(y, rnd); err != nil {
			return "", err
		}
	case "cmp":
		return fmt.Sprint(x.Cmp(y)), nil
	}
	return fixedResult(z), nil
}

func evalSfixed(op string, xs []hw.Sfixed, bounds []int, rnd hw.Round, ovf hw.Overflow) (string, error) {
	switch op {
	case "neg", "abs":
		if err := arity(op, len(xs), 1); err != nil {
			return "", err
		}
		if op == "neg" {
			return fixedResult(xs[0].Neg()), nil
		}
		return fixedResult(xs[0].Abs()), nil
	}
	return evalFixed(op, xs, bounds, rnd, ovf)
}

func fixedResult[T fixed[T]](z T) string {
	return z.String() + " " + z.Text()
}

func atoi(args ...string) ([]int, error) {
	r := make([]int, len(args))
	for i, s := range args {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(hw.ErrValue, "invalid bound %q", s)
		}
		r[i] = n
	}
	return r, nil
}

func init() {
	fixedCmd.Flags().Int("high", 7, "high bound of operands")
	fixedCmd.Flags().Int("low", -8, "low bound of operands")
	fixedCmd.Flags().Bool("signed", false, "use sfixed operands")
	rootCmd.AddCommand(fixedCmd)
}
