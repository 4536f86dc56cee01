// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	hw "github.com/db47h/hwtypes"
	"github.com/spf13/cobra"
)

var rangeCmd = &cobra.Command{
	Use:   "range [flags] spec [index...]",
	Short: "Describe an index range.",
	Long: `Describe an index range like "7 downto 0", "(0 to 3)" or "[7..0]".
	For each index argument, print its offset from the left bound.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := hw.ParseRange(args[0])
		if err != nil {
			return err
		}
		idx, err := atoi(args[1:]...)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: left %d, right %d, length %d\n", r, r.Left(), r.Right(), r.Len())
		for _, i := range idx {
			k, err := r.Offset(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d: offset %d\n", i, k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}
