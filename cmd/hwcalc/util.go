// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// getFlag gets an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// getInt gets an expected int flag, or panic if an error arises.
func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// getString gets an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// modes returns the rounding and overflow modes selected on the command line.
func modes(cmd *cobra.Command) (hw.Round, hw.Overflow, error) {
	rnd, err := hw.ParseRound(getString(cmd, "round"))
	if err != nil {
		return rnd, 0, err
	}
	ovf, err := hw.ParseOverflow(getString(cmd, "overflow"))
	return rnd, ovf, err
}

// arity checks that op got want operands.
func arity(op string, got, want int) error {
	if got != want {
		return errors.Errorf("%s takes %d operand(s), got %d", op, want, got)
	}
	return nil
}
