// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Sequence is implemented by fixed-length sequences addressed by a Range.
//
type Sequence[T any] interface {
	Range() Range
	Len() int
	Get(i int) (T, error)
	All() iter.Seq2[int, T]
	Values() []T
}

// store is the representation shared by Array and Frozen. elems[k] holds the
// element at position k of rng, counting from the left bound.
//
type store[T any] struct {
	rng   Range
	elems []T
}

func newStore[T any](values []T, r Range) (store[T], error) {
	if len(values) != r.Len() {
		return store[T]{}, valueErrorf("value of length %d does not fit in %v", len(values), r)
	}
	return store[T]{r, slices.Clone(values)}, nil
}

func (s store[T]) Range() Range    { return s.rng }
func (s store[T]) Len() int        { return len(s.elems) }
func (s store[T]) Left() int       { return s.rng.left }
func (s store[T]) Right() int      { return s.rng.right }
func (s store[T]) Dir() Direction  { return s.rng.Dir() }
func (s store[T]) Values() []T     { return slices.Clone(s.elems) }
func (s store[T]) clone() store[T] { return store[T]{s.rng, slices.Clone(s.elems)} }

// index returns the storage slot of index i. The zero store has a range but
// no elements, so every index fails.
func (s store[T]) index(i int) (int, error) {
	k, err := s.rng.Offset(i)
	if err == nil && k >= len(s.elems) {
		err = indexErrorf("index %d in empty array", i)
	}
	return k, err
}

// sub is like Range.Sub with the same check as index.
func (s store[T]) sub(a, b int) (Range, error) {
	r, err := s.rng.Sub(a, b)
	if err == nil && len(s.elems) != s.rng.Len() {
		err = indexErrorf("slice %d %v %d in empty array", a, s.rng.Dir(), b)
	}
	return r, err
}

// Get returns the element at index i.
func (s store[T]) Get(i int) (T, error) {
	k, err := s.index(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.elems[k], nil
}

// All returns an iterator over index/value pairs, in range order.
func (s store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k, v := range s.elems {
			if !yield(s.rng.At(k), v) {
				return
			}
		}
	}
}

func (s store[T]) slice(a, b int) (store[T], error) {
	r, err := s.sub(a, b)
	if err != nil {
		return store[T]{}, err
	}
	k := s.rng.offset(a)
	return store[T]{r, slices.Clone(s.elems[k : k+r.Len()])}, nil
}

func (s store[T]) set(i int, v T) error {
	k, err := s.index(i)
	if err != nil {
		return err
	}
	s.elems[k] = v
	return nil
}

func (s store[T]) setSlice(a, b int, values []T) error {
	r, err := s.sub(a, b)
	if err != nil {
		return err
	}
	if len(values) != r.Len() {
		return valueErrorf("cannot assign value of length %d to slice %v", len(values), r)
	}
	copy(s.elems[s.rng.offset(a):], values)
	return nil
}

func concat[T any](x, y []T) store[T] {
	elems := make([]T, 0, len(x)+len(y))
	elems = append(append(elems, x...), y...)
	return store[T]{Ascending(len(elems)), elems}
}

func (s store[T]) format(f func(T) string) string {
	var b strings.Builder
	b.WriteByte('[')
	for k, v := range s.elems {
		if k > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f(v))
	}
	b.WriteString("](")
	b.WriteString(s.rng.String())
	b.WriteByte(')')
	return b.String()
}

// Array is a mutable fixed-length array of T, addressed by a Range.
//
// Slices returned by Slice are copies: mutating a slice never affects the
// array it was taken from, and vice versa.
//
// The zero value is an empty array whose element accessors fail with
// ErrIndex; build arrays with NewArray or ArrayOf.
//
type Array[T any] struct {
	store[T]
}

// NewArray returns a new array holding a copy of values, addressed by r. The
// length of values must match the length of r.
//
func NewArray[T any](values []T, r Range) (*Array[T], error) {
	s, err := newStore(values, r)
	if err != nil {
		return nil, err
	}
	return &Array[T]{s}, nil
}

// ArrayOf returns a new array holding values, addressed by the range
// 0 to len(values)-1. It panics if values is empty.
//
func ArrayOf[T any](values ...T) *Array[T] {
	return &Array[T]{store[T]{Ascending(len(values)), slices.Clone(values)}}
}

// Set sets the element at index i to v.
//
func (a *Array[T]) Set(i int, v T) error { return a.set(i, v) }

// SetSlice sets the elements of the slice i dir j to values, where dir is the
// array's direction. The length of values must match the slice length.
//
func (a *Array[T]) SetSlice(i, j int, values []T) error {
	return a.setSlice(i, j, values)
}

// Slice returns a copy of the elements i dir j as a new Array addressed by the
// range i dir j.
//
func (a *Array[T]) Slice(i, j int) (*Array[T], error) {
	s, err := a.slice(i, j)
	if err != nil {
		return nil, err
	}
	return &Array[T]{s}, nil
}

// Concat returns the concatenation of a and b, addressed by the range
// 0 to a.Len()+b.Len()-1.
//
func (a *Array[T]) Concat(b Sequence[T]) *Array[T] {
	return &Array[T]{concat(a.elems, b.Values())}
}

// Clone returns a copy of a.
//
func (a *Array[T]) Clone() *Array[T] { return &Array[T]{a.clone()} }

// Freeze returns an immutable copy of a.
//
func (a *Array[T]) Freeze() Frozen[T] { return Frozen[T]{a.clone()} }

func (a *Array[T]) String() string {
	return a.format(func(v T) string { return fmt.Sprint(v) })
}

// Frozen is an immutable fixed-length array of T. Methods that would modify a
// Frozen return a modified copy instead. The zero value is not a valid Frozen;
// build them with NewFrozen or Array.Freeze.
//
// Since a Frozen never changes, values derived from it may share its storage.
//
type Frozen[T any] struct {
	store[T]
}

// NewFrozen returns a new immutable array holding a copy of values.
//
func NewFrozen[T any](values []T, r Range) (Frozen[T], error) {
	s, err := newStore(values, r)
	return Frozen[T]{s}, err
}

// With returns a copy of f where the element at index i is set to v.
//
func (f Frozen[T]) With(i int, v T) (Frozen[T], error) {
	s := f.clone()
	if err := s.set(i, v); err != nil {
		return Frozen[T]{}, err
	}
	return Frozen[T]{s}, nil
}

// WithSlice returns a copy of f where the slice i dir j is set to values.
//
func (f Frozen[T]) WithSlice(i, j int, values []T) (Frozen[T], error) {
	s := f.clone()
	if err := s.setSlice(i, j, values); err != nil {
		return Frozen[T]{}, err
	}
	return Frozen[T]{s}, nil
}

// Slice returns the elements i dir j.
//
func (f Frozen[T]) Slice(i, j int) (Frozen[T], error) {
	r, err := f.sub(i, j)
	if err != nil {
		return Frozen[T]{}, err
	}
	k := f.rng.offset(i)
	return Frozen[T]{store[T]{r, f.elems[k : k+r.Len() : k+r.Len()]}}, nil
}

// Concat returns the concatenation of f and b, addressed by the range
// 0 to f.Len()+b.Len()-1.
//
func (f Frozen[T]) Concat(b Sequence[T]) Frozen[T] {
	return Frozen[T]{concat(f.elems, b.Values())}
}

// Thaw returns a mutable copy of f.
//
func (f Frozen[T]) Thaw() *Array[T] { return &Array[T]{f.clone()} }

func (f Frozen[T]) String() string {
	return f.format(func(v T) string { return fmt.Sprint(v) })
}

// Equal returns true if x and y hold the same elements in the same order.
// Ranges are not compared.
//
func Equal[T comparable](x, y Sequence[T]) bool {
	return slices.Equal(x.Values(), y.Values())
}
