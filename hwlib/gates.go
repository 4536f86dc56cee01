// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides gate level building blocks over logic values:
// n-way gates, multiplexers and adders.
//
// Every function is built from the IEEE 1164 and/or/xor/not operators, the
// way the equivalent gate network would be wired, so that metavalues
// propagate through them as they would through real gates. This makes them
// useful as reference models for the arithmetic in package hwtypes.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import (
	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
)

// gate is a two input gate.
type gate func(a, b hw.StdLogic) hw.StdLogic

var (
	and  gate = hw.StdLogic.And
	nand gate = hw.StdLogic.Nand
	or   gate = hw.StdLogic.Or
	nor  gate = hw.StdLogic.Nor
	xor  gate = hw.StdLogic.Xor
	xnor gate = hw.StdLogic.Xnor
)

func apply[T hw.Scalar](g gate, a, b T) T { return T(g(a.Std(), b.Std())) }

func not[T hw.Scalar](a T) T { return T(a.Std().Not()) }

// nway chains g over all inputs.
func nway[T hw.Scalar](g gate, in []T) T {
	if len(in) == 0 {
		panic("no inputs")
	}
	out := in[0].Std()
	for _, v := range in[1:] {
		out = g(out, v.Std())
	}
	return T(out)
}

// AndNWay returns the and of all inputs. It panics if there are no inputs.
//
//	Inputs: in[n]
//	Function: out = in[0] && in[1] && ... && in[n-1]
//
func AndNWay[T hw.Scalar](in ...T) T { return nway(and, in) }

// OrNWay returns the or of all inputs. It panics if there are no inputs.
//
//	Inputs: in[n]
//	Function: out = in[0] || in[1] || ... || in[n-1]
//
func OrNWay[T hw.Scalar](in ...T) T { return nway(or, in) }

// XorNWay returns the parity of all inputs. It panics if there are no inputs.
//
func XorNWay[T hw.Scalar](in ...T) T { return nway(xor, in) }

// GateN applies the gate named name to each pair of elements of a and b. The
// result is addressed by a's range. Valid names are "and", "nand", "or",
// "nor", "xor" and "xnor".
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = f(a[i], b[i]) }
//
func GateN[T hw.Scalar](name string, a, b *hw.LogicArray[T]) (*hw.LogicArray[T], error) {
	g, ok := gates[name]
	if !ok {
		return nil, errors.Wrapf(hw.ErrValue, "unknown gate %q", name)
	}
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return nil, errors.Wrapf(hw.ErrValue, "%s: bus widths %d and %d differ", name, len(av), len(bv))
	}
	out := make([]T, len(av))
	for i := range out {
		out[i] = apply(g, av[i], bv[i])
	}
	return hw.NewVector(out, a.Range())
}

var gates = map[string]gate{
	"and":  and,
	"nand": nand,
	"or":   or,
	"nor":  nor,
	"xor":  xor,
	"xnor": xnor,
}
