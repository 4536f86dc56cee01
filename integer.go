// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math/big"
	"strconv"
	"strings"
)

// Overflow selects what happens when a value does not fit in a target width or
// binary point position.
//
type Overflow uint8

// Overflow modes. The names follow the fixed_overflow_style_type of IEEE
// 1076-2008 fixed_pkg.
//
const (
	OverflowError Overflow = iota // fail with ErrOverflow
	Wrap                          // keep the low order bits (fixed_wrap)
	Saturate                      // clamp to the nearest representable value (fixed_saturate)
)

func (o Overflow) String() string {
	switch o {
	case OverflowError:
		return "error"
	case Wrap:
		return "wrap"
	case Saturate:
		return "saturate"
	}
	return "Overflow(" + strconv.Itoa(int(o)) + ")"
}

// ParseOverflow returns the overflow mode named s: "error", "wrap" or
// "saturate".
//
func ParseOverflow(s string) (Overflow, error) {
	switch strings.ToLower(s) {
	case "error":
		return OverflowError, nil
	case "wrap":
		return Wrap, nil
	case "saturate":
		return Saturate, nil
	}
	return OverflowError, valueErrorf("invalid overflow mode %q", s)
}

// Integer is implemented by Unsigned and Signed.
//
type Integer interface {
	Width() int
	Range() Range
	IsSigned() bool
	BigInt() *big.Int
	Bits() *BitVector
	String() string
}

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// pow2 returns 2**n.
func pow2(n int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(n))
}

// minInt and maxInt return the bounds of an n bit integer.
func minInt(n int, signed bool) *big.Int {
	if !signed {
		return new(big.Int)
	}
	return new(big.Int).Neg(pow2(n - 1))
}

func maxInt(n int, signed bool) *big.Int {
	if signed {
		n--
	}
	return new(big.Int).Sub(pow2(n), bigOne)
}

// wrapInt returns v modulo 2**n, as an unsigned or two's complement value.
//
func wrapInt(v *big.Int, n int, signed bool) *big.Int {
	// And works on the infinite two's complement representation of negative
	// values.
	z := new(big.Int).And(v, maxInt(n, false))
	if signed && z.Bit(n-1) != 0 {
		z.Sub(z, pow2(n))
	}
	return z
}

// fitInt converts v to an n bit integer according to ovf. The returned value
// never aliases v.
//
func fitInt(v *big.Int, n int, signed bool, ovf Overflow) (*big.Int, error) {
	lo, hi := minInt(n, signed), maxInt(n, signed)
	if v.Cmp(lo) >= 0 && v.Cmp(hi) <= 0 {
		return new(big.Int).Set(v), nil
	}
	switch ovf {
	case Wrap:
		return wrapInt(v, n, signed), nil
	case Saturate:
		if v.Sign() < 0 {
			return lo, nil
		}
		return hi, nil
	}
	return nil, overflowErrorf("%v does not fit in %d bits", v, n)
}

// bitLen returns the minimum width needed to represent v.
//
func bitLen(v *big.Int, signed bool) int {
	if !signed {
		if v.Sign() == 0 {
			return 1
		}
		return v.BitLen()
	}
	if v.Sign() < 0 {
		// -2**k needs k+1 bits
		return new(big.Int).Not(v).BitLen() + 1
	}
	return v.BitLen() + 1
}

func checkWidth(n int) error {
	if n <= 0 {
		return valueErrorf("invalid width %d", n)
	}
	return nil
}

// intBits returns the n bit pattern of v as a BitVector addressed by r. The
// rightmost element is the least significant bit.
//
func intBits(v *big.Int, r Range) *BitVector {
	n := r.Len()
	u := wrapInt(v, n, false)
	out := make([]Bit, n)
	for k := range out {
		out[k] = Bit(L0 + StdLogic(u.Bit(n-1-k)))
	}
	return &BitVector{Array[Bit]{store[Bit]{r, out}}}
}

// bitsInt returns the integer value of the bit sequence b.
//
func bitsInt(b Sequence[Bit], signed bool) *big.Int {
	v := new(big.Int)
	n := b.Len()
	for k, e := range b.Values() {
		if e == Bit1 {
			v.SetBit(v, n-1-k, 1)
		}
	}
	if signed && v.Bit(n-1) != 0 {
		v.Sub(v, pow2(n))
	}
	return v
}

func intString(v *big.Int, n int) string {
	s := wrapInt(v, n, false).Text(2)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s
}

// intval is the representation shared by Unsigned and Signed. v is never
// mutated once set, so intvals can share it.
//
type intval struct {
	rng Range
	v   *big.Int
}

func newIntval(v *big.Int, n int) intval {
	return intval{Descending(n), v}
}

func (x intval) val() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

func (x intval) width() int { return x.rng.Len() }

func widest(x, y intval) int {
	if n := y.width(); n > x.width() {
		return n
	}
	return x.width()
}

// binop applies f to x and y and wraps the result to the width of the widest
// operand.
//
func binop(x, y intval, signed bool, f func(z, a, b *big.Int) *big.Int) intval {
	n := widest(x, y)
	z := f(new(big.Int), x.val(), y.val())
	return newIntval(wrapInt(z, n, signed), n)
}

// divop is like binop for division operators. f is not called with a zero
// divisor.
//
func divop(x, y intval, signed bool, op string, f func(z, a, b *big.Int) *big.Int) (intval, error) {
	if y.val().Sign() == 0 {
		return intval{}, divByZero(op)
	}
	return binop(x, y, signed, f), nil
}

// quo truncates toward zero.
func quo(z, a, b *big.Int) *big.Int { return z.Quo(a, b) }

// rem has the sign of the dividend.
func rem(z, a, b *big.Int) *big.Int { return z.Rem(a, b) }

// mod has the sign of the divisor.
func mod(z, a, b *big.Int) *big.Int {
	z.Rem(a, b)
	if z.Sign() != 0 && z.Sign() != b.Sign() {
		z.Add(z, b)
	}
	return z
}

// shl shifts left. Shifting by the width or more yields zero.
func (x intval) shl(n uint, signed bool) intval {
	w := x.width()
	if n >= uint(w) {
		return newIntval(new(big.Int), w)
	}
	return newIntval(wrapInt(new(big.Int).Lsh(x.val(), n), w, signed), w)
}

// shr shifts right, replicating the sign bit for signed values.
func (x intval) shr(n uint) intval {
	return newIntval(new(big.Int).Rsh(x.val(), n), x.width())
}

func (x intval) rotl(k int, signed bool) intval {
	w := x.width()
	if k %= w; k < 0 {
		k += w
	}
	u := wrapInt(x.val(), w, false)
	z := new(big.Int).Lsh(u, uint(k))
	z.Or(z, u.Rsh(u, uint(w-k)))
	return newIntval(wrapInt(z, w, signed), w)
}

func (x intval) not(signed bool) intval {
	w := x.width()
	return newIntval(wrapInt(new(big.Int).Not(x.val()), w, signed), w)
}

func (x intval) resize(n int, signed bool, ovf Overflow) (intval, error) {
	if err := checkWidth(n); err != nil {
		return intval{}, err
	}
	v, err := fitInt(x.val(), n, signed, ovf)
	if err != nil {
		return intval{}, err
	}
	return newIntval(v, n), nil
}

func (x intval) bit(i int) (Bit, error) {
	k, err := x.rng.Offset(i)
	if err != nil {
		return Bit0, err
	}
	if wrapInt(x.val(), x.width(), false).Bit(x.width()-1-k) != 0 {
		return Bit1, nil
	}
	return Bit0, nil
}

func (x intval) withBit(i int, b Bit, signed bool) (intval, error) {
	k, err := x.rng.Offset(i)
	if err != nil {
		return intval{}, err
	}
	n := x.width()
	u := wrapInt(x.val(), n, false)
	u.SetBit(u, n-1-k, uint(b.Std()-L0)&1)
	return intval{x.rng, wrapInt(u, n, signed)}, nil
}

func (x intval) concat(y intval, signed bool) intval {
	n := x.width() + y.width()
	z := new(big.Int).Lsh(wrapInt(x.val(), x.width(), false), uint(y.width()))
	z.Or(z, wrapInt(y.val(), y.width(), false))
	return newIntval(wrapInt(z, n, signed), n)
}

func (x intval) float64() float64 {
	f, _ := new(big.Float).SetInt(x.val()).Float64()
	return f
}

func (x intval) int64() (int64, error) {
	if !x.val().IsInt64() {
		return 0, overflowErrorf("%v does not fit in an int64", x.val())
	}
	return x.val().Int64(), nil
}

func (x intval) uint64() (uint64, error) {
	if !x.val().IsUint64() {
		return 0, overflowErrorf("%v does not fit in a uint64", x.val())
	}
	return x.val().Uint64(), nil
}
