// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"strings"

	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var intCmd = &cobra.Command{
	Use:   "int [flags] op operand [operand]",
	Short: "Evaluate numeric_std integer operators.",
	Long: `Evaluate unsigned or signed (two's complement) integer operators.
	Operands are either bit string literals like x"F0" or sx"F0", which keep
	their own width, or decimal numbers converted to --width bits. A width of
	0 uses the smallest width that holds the number. Results take the width
	of the widest operand and wrap on overflow.

	Binary operators are add, sub, mul, div, mod, rem, and, or, xor and cmp.
	Unary operators are not, and for signed operands, neg and abs. Use --
	before negative operands.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, ovf, err := modes(cmd)
		if err != nil {
			return err
		}
		op, operands := args[0], args[1:]
		width := getInt(cmd, "width")
		var out string
		if getFlag(cmd, "signed") {
			xs := make([]hw.Signed, len(operands))
			for i, s := range operands {
				if xs[i], err = signedOperand(s, width, ovf); err != nil {
					return err
				}
				log.Debugf("operand %d: %s (%s)", i, xs[i], xs[i].Text(10))
			}
			out, err = evalSigned(op, xs)
		} else {
			xs := make([]hw.Unsigned, len(operands))
			for i, s := range operands {
				if xs[i], err = unsignedOperand(s, width, ovf); err != nil {
					return err
				}
				log.Debugf("operand %d: %s (%s)", i, xs[i], xs[i].Text(10))
			}
			out, err = evalInt(op, xs)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// integer is the set of operators shared by hw.Unsigned and hw.Signed.
type integer[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	And(T) T
	Or(T) T
	Xor(T) T
	Not() T
	Div(T) (T, error)
	Mod(T) (T, error)
	Rem(T) (T, error)
	Cmp(T) int
	Text(base int) string
	String() string
}

func evalInt[T integer[T]](op string, xs []T) (string, error) {
	var (
		z   T
		err error
	)
	switch op {
	case "not":
		if err = arity(op, len(xs), 1); err != nil {
			return "", err
		}
		return intResult(xs[0].Not()), nil
	case "add", "sub", "mul", "div", "mod", "rem", "and", "or", "xor", "cmp":
		if err = arity(op, len(xs), 2); err != nil {
			return "", err
		}
	default:
		return "", errors.Errorf("unknown integer operator %q", op)
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
		z, err = x.Div(y)
	case "mod":
		z, err = x.Mod(y)
	case "rem":
		z, err = x.Rem(y)
	case "and":
		z = x.And(y)
	case "or":
		z = x.Or(y)
	case "xor":
		z = x.Xor(y)
	case "cmp":
		return fmt.Sprint(x.Cmp(y)), nil
	}
	if err != nil {
		return "", err
	}
	return intResult(z), nil
}

func evalSigned(op string, xs []hw.Signed) (string, error) {
	switch op {
	case "neg", "abs":
		if err := arity(op, len(xs), 1); err != nil {
			return "", err
		}
		if op == "neg" {
			return intResult(xs[0].Neg()), nil
		}
		return intResult(xs[0].Abs()), nil
	}
	return evalInt(op, xs)
}

func intResult[T integer[T]](z T) string {
	return z.String() + " " + z.Text(10)
}

func isLiteral(s string) bool { return strings.ContainsRune(s, '"') }

func decimalOperand(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrapf(hw.ErrValue, "invalid integer operand %q", s)
	}
	return v, nil
}

func unsignedOperand(s string, width int, ovf hw.Overflow) (hw.Unsigned, error) {
	if isLiteral(s) {
		return hw.ParseUnsigned(s)
	}
	v, err := decimalOperand(s)
	if err != nil {
		return hw.Unsigned{}, err
	}
	if width == 0 {
		width = max(v.BitLen(), 1)
	}
	return hw.UnsignedFromBig(v, width, ovf)
}

func signedOperand(s string, width int, ovf hw.Overflow) (hw.Signed, error) {
	if isLiteral(s) {
		return hw.ParseSigned(s)
	}
	v, err := decimalOperand(s)
	if err != nil {
		return hw.Signed{}, err
	}
	if width == 0 {
		m := v
		if v.Sign() < 0 {
			// -2**n fits in n+1 bits
			m = new(big.Int).Not(v)
		}
		width = m.BitLen() + 1
	}
	return hw.SignedFromBig(v, width, ovf)
}

func init() {
	intCmd.Flags().Int("width", 0, "width of decimal operands (0: smallest that fits)")
	intCmd.Flags().Bool("signed", false, "use two's complement operands")
	rootCmd.AddCommand(intCmd)
}
