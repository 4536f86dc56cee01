// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"strings"

	"github.com/db47h/hwtypes/internal/lit"
	"github.com/pkg/errors"
)

// LogicArray is a mutable array of logic values supporting element-wise logic
// operations.
//
// Use the StdLogicVector, X01ZVector and BitVector aliases. Operations between
// vectors of different value sets require an explicit conversion with
// ConvertVector.
//
type LogicArray[T Scalar] struct {
	Array[T]
}

// Logic vector types.
type (
	StdLogicVector = LogicArray[StdLogic]
	X01ZVector     = LogicArray[X01Z]
	BitVector      = LogicArray[Bit]
)

// NewVector returns a new vector holding a copy of values, addressed by r.
//
func NewVector[T Scalar](values []T, r Range) (*LogicArray[T], error) {
	s, err := newStore(values, r)
	if err != nil {
		return nil, err
	}
	return &LogicArray[T]{Array[T]{s}}, nil
}

// VectorOf returns a new vector holding values, addressed by 0 to len(values)-1.
//
func VectorOf[T Scalar](values ...T) *LogicArray[T] {
	return &LogicArray[T]{*ArrayOf(values...)}
}

// ParseVector parses a literal into a vector addressed by 0 to n-1, where n is
// the number of elements in the literal. See ParseVectorIn for the supported
// syntax.
//
func ParseVector[T Scalar](s string) (*LogicArray[T], error) {
	syms, err := parseSymbols[T](s)
	if err != nil {
		return nil, err
	}
	return VectorOf(syms...), nil
}

// ParseVectorIn parses a literal into a vector addressed by r.
//
// The literal is either a string of symbols (underscores are ignored), like
// "01XZ_UHL-", or a VHDL-2008 bit string literal like x"F0", 8ux"F" or
// 12sx"F". All symbols must be in T's value set.
//
func ParseVectorIn[T Scalar](s string, r Range) (*LogicArray[T], error) {
	syms, err := parseSymbols[T](s)
	if err != nil {
		return nil, err
	}
	return NewVector(syms, r)
}

// MustParseVector is like ParseVector but panics on error.
//
func MustParseVector[T Scalar](s string) *LogicArray[T] {
	return must(ParseVector[T](s))
}

func parseSymbols[T Scalar](s string) ([]T, error) {
	bs, err := lit.ParseBitString(s)
	if err != nil {
		return nil, errors.Wrap(ErrValue, err.Error())
	}
	out := make([]T, 0, len(bs.Symbols))
	for _, c := range bs.Symbols {
		v, err := ParseLogic[T](c)
		if err != nil {
			return nil, errors.WithMessagef(err, "in literal %q", s)
		}
		out = append(out, v)
	}
	return out, nil
}

// ConvertVector converts v to a vector of To, keeping its range. Widening
// conversions never fail; narrowing conversions follow mode as in Narrow.
//
func ConvertVector[To, From Scalar](v *LogicArray[From], mode NarrowMode) (*LogicArray[To], error) {
	out := make([]To, len(v.elems))
	for k, e := range v.elems {
		c, err := Narrow[To](e, mode)
		if err != nil {
			return nil, errors.WithMessagef(err, "at index %d", v.rng.At(k))
		}
		out[k] = c
	}
	return &LogicArray[To]{Array[To]{store[To]{v.rng, out}}}, nil
}

func (v *LogicArray[T]) wrap(s store[T]) *LogicArray[T] {
	return &LogicArray[T]{Array[T]{s}}
}

// Slice returns a copy of the elements i dir j.
//
func (v *LogicArray[T]) Slice(i, j int) (*LogicArray[T], error) {
	s, err := v.slice(i, j)
	if err != nil {
		return nil, err
	}
	return v.wrap(s), nil
}

// Concat returns the concatenation of v and o, addressed by the range
// 0 to v.Len()+o.Len()-1.
//
func (v *LogicArray[T]) Concat(o Sequence[T]) *LogicArray[T] {
	return v.wrap(concat(v.elems, o.Values()))
}

// Clone returns a copy of v.
//
func (v *LogicArray[T]) Clone() *LogicArray[T] { return v.wrap(v.clone()) }

// WithRange returns a copy of v addressed by r. r must have the same length
// as v.
//
func (v *LogicArray[T]) WithRange(r Range) (*LogicArray[T], error) {
	return NewVector(v.elems, r)
}

func (v *LogicArray[T]) zip(o *LogicArray[T], op string, f func(a, b StdLogic) StdLogic) (*LogicArray[T], error) {
	if len(v.elems) != len(o.elems) {
		return nil, valueErrorf("%s: vectors of different lengths %d and %d", op, len(v.elems), len(o.elems))
	}
	out := make([]T, len(v.elems))
	for k := range out {
		out[k] = T(f(v.elems[k].Std(), o.elems[k].Std()))
	}
	return v.wrap(store[T]{v.rng, out}), nil
}

func (v *LogicArray[T]) mapf(f func(StdLogic) StdLogic) *LogicArray[T] {
	out := make([]T, len(v.elems))
	for k, e := range v.elems {
		out[k] = T(f(e.Std()))
	}
	return v.wrap(store[T]{v.rng, out})
}

// And returns the element-wise and of v and o. The result has the range of v.
//
func (v *LogicArray[T]) And(o *LogicArray[T]) (*LogicArray[T], error) {
	return v.zip(o, "and", StdLogic.And)
}

// Or returns the element-wise or of v and o.
//
func (v *LogicArray[T]) Or(o *LogicArray[T]) (*LogicArray[T], error) {
	return v.zip(o, "or", StdLogic.Or)
}

// Xor returns the element-wise xor of v and o.
//
func (v *LogicArray[T]) Xor(o *LogicArray[T]) (*LogicArray[T], error) {
	return v.zip(o, "xor", StdLogic.Xor)
}

// Nand returns the element-wise nand of v and o.
//
func (v *LogicArray[T]) Nand(o *LogicArray[T]) (*LogicArray[T], error) {
	return v.zip(o, "nand", StdLogic.Nand)
}

// Nor returns the element-wise nor of v and o.
//
func (v *LogicArray[T]) Nor(o *LogicArray[T]) (*LogicArray[T], error) {
	return v.zip(o, "nor", StdLogic.Nor)
}

// Xnor returns the element-wise xnor of v and o.
//
func (v *LogicArray[T]) Xnor(o *LogicArray[T]) (*LogicArray[T], error) {
	return v.zip(o, "xnor", StdLogic.Xnor)
}

// Not returns the element-wise complement of v.
//
func (v *LogicArray[T]) Not() *LogicArray[T] {
	return v.mapf(StdLogic.Not)
}

// reduce folds f over the elements of v, starting from the identity element
// of f. Like VHDL's and_reduce, this maps a single Z or weak value to its
// X01 equivalent.
//
func (v *LogicArray[T]) reduce(acc StdLogic, f func(a, b StdLogic) StdLogic) T {
	for _, e := range v.elems {
		acc = f(acc, e.Std())
	}
	return T(acc)
}

// ReduceAnd returns the and of all elements of v.
func (v *LogicArray[T]) ReduceAnd() T { return v.reduce(L1, StdLogic.And) }

// ReduceOr returns the or of all elements of v.
func (v *LogicArray[T]) ReduceOr() T { return v.reduce(L0, StdLogic.Or) }

// ReduceXor returns the xor of all elements of v.
func (v *LogicArray[T]) ReduceXor() T { return v.reduce(L0, StdLogic.Xor) }

// HasMeta returns true if any element of v is a metavalue.
//
func (v *LogicArray[T]) HasMeta() bool {
	for _, e := range v.elems {
		if e.Std().IsMeta() {
			return true
		}
	}
	return false
}

// Std returns v widened to a StdLogicVector.
//
func (v *LogicArray[T]) Std() *StdLogicVector {
	out := make([]StdLogic, len(v.elems))
	for k, e := range v.elems {
		out[k] = e.Std()
	}
	return &StdLogicVector{Array[StdLogic]{store[StdLogic]{v.rng, out}}}
}

// String returns the symbols of v, leftmost first.
//
func (v *LogicArray[T]) String() string {
	var b strings.Builder
	b.Grow(len(v.elems))
	for _, e := range v.elems {
		b.WriteByte(e.Std().Char())
	}
	return b.String()
}

// GoString returns v's symbols and range.
//
func (v *LogicArray[T]) GoString() string {
	var zero T
	return zero.Set().String() + "Vector(\"" + v.String() + "\", " + v.rng.String() + ")"
}

// EqualVectors returns true if x and y hold the same values, regardless of
// their value set and range.
//
func EqualVectors[T, U Scalar](x *LogicArray[T], y *LogicArray[U]) bool {
	if len(x.elems) != len(y.elems) {
		return false
	}
	for k := range x.elems {
		if x.elems[k].Std() != y.elems[k].Std() {
			return false
		}
	}
	return true
}
