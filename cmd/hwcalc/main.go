// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwcalc evaluates hardware value literals and operators.
//
//	hwcalc logic and 01XZ 1111
//	hwcalc int --width 8 add 200 100
//	hwcalc int --signed div sx"F0" 3
//	hwcalc fixed --high 3 --low -4 mul 2.75 1.5
//	hwcalc range "[7..0]" 3
//
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "hwcalc",
	Short:         "Evaluate hardware value literals and operators.",
	Long:          "Evaluate logic vector, integer and fixed-point literals and operators the way VHDL's numeric_std and fixed_pkg do.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors:    !term.IsTerminal(int(os.Stderr.Fd())),
		DisableTimestamp: true,
	})
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("round", "half-even", "rounding mode: half-even, truncate, toward-zero, half-up or ceil")
	rootCmd.PersistentFlags().String("overflow", "error", "overflow mode: error, wrap or saturate")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
