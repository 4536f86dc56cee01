// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	hw "github.com/db47h/hwtypes"
	hl "github.com/db47h/hwtypes/hwlib"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logicCmd = &cobra.Command{
	Use:   "logic [flags] op vector [vector]",
	Short: "Apply a logic operator to IEEE 1164 vectors.",
	Long: `Apply a logic operator to std_logic vectors.
	Binary operators are and, nand, or, nor, xor and xnor. Unary operators are
	not, reduce-and, reduce-or, reduce-xor and x01z, which narrows its operand
	to X01Z the way To_X01Z does.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		op, operands := args[0], args[1:]
		vs := make([]*hw.StdLogicVector, len(operands))
		for i, s := range operands {
			v, err := hw.ParseVector[hw.StdLogic](s)
			if err != nil {
				return err
			}
			log.Debugf("operand %d: %#v", i, v)
			vs[i] = v
		}
		out, err := evalLogic(op, vs)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func evalLogic(op string, vs []*hw.StdLogicVector) (fmt.Stringer, error) {
	switch op {
	case "and", "nand", "or", "nor", "xor", "xnor":
		if err := arity(op, len(vs), 2); err != nil {
			return nil, err
		}
		return hl.GateN(op, vs[0], vs[1])
	case "not", "reduce-and", "reduce-or", "reduce-xor", "x01z":
		if err := arity(op, len(vs), 1); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Errorf("unknown logic operator %q", op)
	}
	v := vs[0]
	switch op {
	case "not":
		return v.Not(), nil
	case "reduce-and":
		return v.ReduceAnd(), nil
	case "reduce-or":
		return v.ReduceOr(), nil
	case "reduce-xor":
		return v.ReduceXor(), nil
	}
	return hw.ConvertVector[hw.X01Z](v, hw.Relaxed)
}

func init() {
	rootCmd.AddCommand(logicCmd)
}
