// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
)

// Mux returns a multiplexer output.
//
//	Inputs: a, b, sel
//	Function: out = a && !sel || b && sel
//
// With an unknown sel, the output is X unless a and b are both 0.
//
func Mux[T hw.Scalar](a, b, sel T) T {
	return apply(or, apply(and, a, not(sel)), apply(and, b, sel))
}

// DMux returns the outputs of a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: a = in && !sel; b = in && sel
//
func DMux[T hw.Scalar](in, sel T) (a, b T) {
	return apply(and, in, not(sel)), apply(and, in, sel)
}

// MuxN returns an n-bits multiplexer output. The result is addressed by a's
// range.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = Mux(a[i], b[i], sel) }
//
func MuxN[T hw.Scalar](a, b *hw.LogicArray[T], sel T) (*hw.LogicArray[T], error) {
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return nil, errors.Wrapf(hw.ErrValue, "mux: bus widths %d and %d differ", len(av), len(bv))
	}
	out := make([]T, len(av))
	for i := range out {
		out[i] = Mux(av[i], bv[i], sel)
	}
	return hw.NewVector(out, a.Range())
}

// MuxMWay returns the input selected by sel, the rightmost element of sel
// being the least significant select line. It is built as a tree of MuxN.
// len(in) must be 2**sel.Len().
//
func MuxMWay[T hw.Scalar](sel *hw.LogicArray[T], in ...*hw.LogicArray[T]) (*hw.LogicArray[T], error) {
	if len(in) != 1<<uint(sel.Len()) {
		return nil, errors.Wrapf(hw.ErrValue, "mux: %d inputs for %d select lines", len(in), sel.Len())
	}
	s := sel.Values()
	for k := len(s) - 1; k >= 0; k-- {
		next := make([]*hw.LogicArray[T], len(in)/2)
		for i := range next {
			o, err := MuxN(in[2*i], in[2*i+1], s[k])
			if err != nil {
				return nil, err
			}
			next[i] = o
		}
		in = next
	}
	return in[0], nil
}
