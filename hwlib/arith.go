// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
)

// HalfAdder returns the outputs of a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder[T hw.Scalar](a, b T) (s, c T) {
	return apply(xor, a, b), apply(and, a, b)
}

// FullAdder returns the outputs of a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder[T hw.Scalar](a, b, cin T) (s, cout T) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(s0, cin)
	return s, apply(or, c0, c1)
}

// AdderN returns the outputs of a ripple carry adder. The rightmost elements
// of a and b are the least significant bits. The sum is addressed by a's
// range.
//
//	Inputs: a[bits], b[bits], cin
//	Outputs: out[bits], cout
//
func AdderN[T hw.Scalar](a, b *hw.LogicArray[T], cin T) (out *hw.LogicArray[T], cout T, err error) {
	av, bv := a.Values(), b.Values()
	if len(av) != len(bv) {
		return nil, cout, errors.Wrapf(hw.ErrValue, "adder: bus widths %d and %d differ", len(av), len(bv))
	}
	sum := make([]T, len(av))
	c := cin
	for i := len(sum) - 1; i >= 0; i-- {
		sum[i], c = FullAdder(av[i], bv[i], c)
	}
	out, err = hw.NewVector(sum, a.Range())
	return out, c, err
}

// SubtractorN returns a - b computed as a + not(b) + 1, and the carry out,
// which is 1 when no borrow occurred.
//
func SubtractorN[T hw.Scalar](a, b *hw.LogicArray[T]) (out *hw.LogicArray[T], cout T, err error) {
	return AdderN(a, b.Not(), T(hw.L1))
}

// Incrementer returns a + 1.
//
func Incrementer[T hw.Scalar](a *hw.LogicArray[T]) *hw.LogicArray[T] {
	sum := a.Values()
	c := T(hw.L1)
	for i := len(sum) - 1; i >= 0; i-- {
		sum[i], c = HalfAdder(sum[i], c)
	}
	out, _ := hw.NewVector(sum, a.Range())
	return out
}
