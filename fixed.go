// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math"
	"math/big"
	"strings"
)

// Fixed is implemented by Ufixed and Sfixed.
//
type Fixed interface {
	High() int
	Low() int
	Width() int
	IsSigned() bool
	Rat() *big.Rat
	Float64() float64
	Bits() *BitVector
	String() string
	Text() string
}

// fixval is the representation shared by Ufixed and Sfixed: the value is
// m * 2**low, with m an integer of high-low+1 bits. m is never mutated once
// set.
//
type fixval struct {
	high, low int
	m         *big.Int
}

func checkBounds(high, low int) error {
	if high < low {
		return valueErrorf("invalid fixed-point bounds %d downto %d", high, low)
	}
	return nil
}

func (x fixval) val() *big.Int {
	if x.m == nil {
		return bigZero
	}
	return x.m
}

func (x fixval) width() int { return x.high - x.low + 1 }

func (x fixval) rng() Range { return must(NewRange(x.high, Downto, x.low)) }

// ints returns the mantissa of x as an integer addressed by high downto low.
func (x fixval) ints() intval { return intval{x.rng(), x.val()} }

// pow2Rat returns 2**e.
func pow2Rat(e int) *big.Rat {
	if e >= 0 {
		return new(big.Rat).SetInt(pow2(e))
	}
	return new(big.Rat).SetFrac(bigOne, pow2(-e))
}

// fixFromRat rounds r to a multiple of 2**low, then fits the result in
// high downto low according to ovf.
//
func fixFromRat(r *big.Rat, high, low int, signed bool, rnd Round, ovf Overflow) (fixval, error) {
	if err := checkBounds(high, low); err != nil {
		return fixval{}, err
	}
	m := roundRat(new(big.Rat).Mul(r, pow2Rat(-low)), rnd)
	z, err := fitInt(m, high-low+1, signed, ovf)
	if err != nil {
		return fixval{}, overflowErrorf("%v does not fit in %d downto %d", r.RatString(), high, low)
	}
	return fixval{high, low, z}, nil
}

func floatRat(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, valueErrorf("cannot convert %v to fixed-point", f)
	}
	return new(big.Rat).SetFloat64(f), nil
}

func (x fixval) rat() *big.Rat {
	return new(big.Rat).Mul(new(big.Rat).SetInt(x.val()), pow2Rat(x.low))
}

func (x fixval) float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

// align returns the mantissas of x and y scaled to their common low bound.
//
func align(x, y fixval) (a, b *big.Int, low int) {
	low = min(x.low, y.low)
	a = new(big.Int).Lsh(x.val(), uint(x.low-low))
	b = new(big.Int).Lsh(y.val(), uint(y.low-low))
	return a, b, low
}

func (x fixval) cmp(y fixval) int {
	a, b, _ := align(x, y)
	return a.Cmp(b)
}

// addSub returns x + y or x - y sized max(high)+1 downto min(low). The result
// always fits in signed arithmetic; unsigned differences wrap.
//
func addSub(x, y fixval, signed, sub bool) fixval {
	a, b, low := align(x, y)
	high := max(x.high, y.high) + 1
	if sub {
		a.Sub(a, b)
	} else {
		a.Add(a, b)
	}
	return fixval{high, low, wrapInt(a, high-low+1, signed)}
}

// mul returns x * y sized h1+h2+1 downto l1+l2.
//
func mul(x, y fixval) fixval {
	return fixval{x.high + y.high + 1, x.low + y.low, new(big.Int).Mul(x.val(), y.val())}
}

// div returns x / y rounded to the given bounds.
//
func div(x, y fixval, high, low int, signed bool, rnd Round) (fixval, error) {
	if y.val().Sign() == 0 {
		return fixval{}, divByZero("div")
	}
	q := new(big.Rat).Quo(x.rat(), y.rat())
	return fixFromRat(q, high, low, signed, rnd, Saturate)
}

func (x fixval) resize(high, low int, signed bool, rnd Round, ovf Overflow) (fixval, error) {
	return fixFromRat(x.rat(), high, low, signed, rnd, ovf)
}

// fixString renders x as a bit string with a binary point between index 0 and
// -1. The rendered bits always include index 0, and index -1 if x has a
// fractional part; missing positions are zero or sign extended.
//
func fixString(x fixval) string {
	hi, lo := max(x.high, 0), min(x.low, 0)
	v := new(big.Int).Lsh(x.val(), uint(x.low-lo))
	s := intString(v, hi-lo+1)
	if lo == 0 {
		return s
	}
	p := len(s) + lo
	return s[:p] + "." + s[p:]
}

// parseFixed parses a bit string with an optional binary point like "1011.01".
// Underscores are ignored.
//
func parseFixed(s string, signed bool) (fixval, error) {
	ip, fp, _ := strings.Cut(s, ".")
	bits := strings.ReplaceAll(ip+fp, "_", "")
	if bits == "" {
		return fixval{}, valueErrorf("empty fixed-point literal %q", s)
	}
	low := -len(strings.ReplaceAll(fp, "_", ""))
	high := len(bits) + low - 1
	syms, err := parseSymbols[Bit](bits)
	if err != nil {
		return fixval{}, err
	}
	b := &BitVector{Array[Bit]{store[Bit]{Descending(len(syms)), syms}}}
	return fixval{high, low, bitsInt(b, signed)}, nil
}

// fixFromBits returns the value of b, which must be addressed by a descending
// range.
//
func fixFromBits(b Sequence[Bit], signed bool) (fixval, error) {
	r := b.Range()
	if r.Dir() != Downto && r.Len() > 1 {
		return fixval{}, valueErrorf("fixed-point bits must be addressed by a descending range, got %v", r)
	}
	return fixval{r.High(), r.Low(), bitsInt(b, signed)}, nil
}
