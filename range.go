// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"strconv"

	"github.com/db47h/hwtypes/internal/lit"
	"github.com/pkg/errors"
)

// Direction is the direction of a Range.
//
type Direction int8

// Range directions.
const (
	To     Direction = 1  // ascending
	Downto Direction = -1 // descending
)

func (d Direction) String() string {
	switch d {
	case To:
		return "to"
	case Downto:
		return "downto"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// A Range is a VHDL style integer range with inclusive bounds, like
// "7 downto 0" or "0 to 3". Ranges are never empty. The zero value is the
// range "0 to 0".
//
// Ranges are comparable with ==.
//
type Range struct {
	left, right int
	desc        bool
}

// NewRange returns the range left dir right. It fails if right cannot be
// reached from left in direction dir.
//
func NewRange(left int, dir Direction, right int) (Range, error) {
	switch dir {
	case To:
		if left > right {
			return Range{}, valueErrorf("null range %d to %d", left, right)
		}
	case Downto:
		if left < right {
			return Range{}, valueErrorf("null range %d downto %d", left, right)
		}
	default:
		return Range{}, valueErrorf("invalid direction %v", dir)
	}
	return Range{left, right, dir == Downto}, nil
}

// MustRange is like NewRange but panics on error.
//
func MustRange(left int, dir Direction, right int) Range {
	return must(NewRange(left, dir, right))
}

// Span returns the range from left to right, inferring its direction. A
// single element range is ascending.
//
func Span(left, right int) Range {
	return Range{left, right, left > right}
}

// Ascending returns the range 0 to n-1. n must be greater than 0.
//
func Ascending(n int) Range {
	if n <= 0 {
		panic("invalid range length " + strconv.Itoa(n))
	}
	return Range{0, n - 1, false}
}

// Descending returns the range n-1 downto 0. n must be greater than 0.
//
func Descending(n int) Range {
	if n <= 0 {
		panic("invalid range length " + strconv.Itoa(n))
	}
	return Range{n - 1, 0, true}
}

// ParseRange parses a range specification. Supported forms are "7 downto 0",
// "0 to 3", "(7 downto 0)" and the bus notation "[7..0]" where the direction
// is inferred.
//
func ParseRange(s string) (Range, error) {
	spec, err := lit.ParseRange(s)
	if err != nil {
		return Range{}, errors.Wrap(ErrValue, err.Error())
	}
	switch spec.Dir {
	case lit.DirTo:
		return NewRange(spec.Left, To, spec.Right)
	case lit.DirDownto:
		return NewRange(spec.Left, Downto, spec.Right)
	}
	return Span(spec.Left, spec.Right), nil
}

// Left returns the leftmost bound.
func (r Range) Left() int { return r.left }

// Right returns the rightmost bound.
func (r Range) Right() int { return r.right }

// Dir returns the range direction.
func (r Range) Dir() Direction {
	if r.desc {
		return Downto
	}
	return To
}

// Low returns the smallest index in the range.
func (r Range) Low() int {
	if r.desc {
		return r.right
	}
	return r.left
}

// High returns the largest index in the range.
func (r Range) High() int {
	if r.desc {
		return r.left
	}
	return r.right
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.High() - r.Low() + 1
}

// Contains returns true if i is within the range.
func (r Range) Contains(i int) bool {
	return r.Low() <= i && i <= r.High()
}

// Offset returns the position of index i in the range, counting from the left
// bound.
//
func (r Range) Offset(i int) (int, error) {
	if !r.Contains(i) {
		return 0, indexErrorf("index %d out of range %v", i, r)
	}
	return r.offset(i), nil
}

func (r Range) offset(i int) int {
	if r.desc {
		return r.left - i
	}
	return i - r.left
}

// At returns the index at position k, counting from the left bound. It panics
// if k is outside [0, r.Len()).
//
func (r Range) At(k int) int {
	if k < 0 || k >= r.Len() {
		panic("position " + strconv.Itoa(k) + " out of range " + r.String())
	}
	if r.desc {
		return r.left - k
	}
	return r.left + k
}

// Sub returns the sub-range a dir b of r, where dir is r's direction. Both a
// and b must be in r and ordered in r's direction.
//
func (r Range) Sub(a, b int) (Range, error) {
	if !r.Contains(a) || !r.Contains(b) {
		return Range{}, indexErrorf("slice %d %v %d out of range %v", a, r.Dir(), b, r)
	}
	if r.desc && a < b || !r.desc && a > b {
		return Range{}, indexErrorf("slice %d %v %d is a null range", a, r.Dir(), b)
	}
	return Range{a, b, r.desc}, nil
}

// Reverse returns the range right to left, in the opposite direction.
//
func (r Range) Reverse() Range {
	return Range{r.right, r.left, !r.desc}
}

func (r Range) String() string {
	return strconv.Itoa(r.left) + " " + r.Dir().String() + " " + strconv.Itoa(r.right)
}
