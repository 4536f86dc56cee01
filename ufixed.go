// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math/big"
)

// Ufixed is an immutable unsigned fixed-point number, like fixed_pkg's ufixed.
// Its bits are addressed by high downto low, bit i having weight 2**i, so that
// the binary point sits between index 0 and index -1.
//
// Arithmetic operators never lose precision: the bounds of the result are
// computed from the bounds of the operands as in fixed_pkg. Resize is the only
// operation that discards bits, and it requires explicit rounding and
// overflow modes.
//
// The zero value is 0 with bounds 0 downto 0.
//
type Ufixed struct {
	fixval
}

// UfixedFromRat returns r as a Ufixed with the given bounds.
//
func UfixedFromRat(r *big.Rat, high, low int, rnd Round, ovf Overflow) (Ufixed, error) {
	x, err := fixFromRat(r, high, low, false, rnd, ovf)
	return Ufixed{x}, err
}

// UfixedFromFloat returns f as a Ufixed with the given bounds. f is rounded
// according to rnd, then overflows are handled according to ovf. NaN and
// infinite values fail with ErrValue.
//
func UfixedFromFloat(f float64, high, low int, rnd Round, ovf Overflow) (Ufixed, error) {
	r, err := floatRat(f)
	if err != nil {
		return Ufixed{}, err
	}
	return UfixedFromRat(r, high, low, rnd, ovf)
}

// MustUfixed is like UfixedFromFloat with RoundHalfEven and OverflowError,
// but panics on error.
//
func MustUfixed(f float64, high, low int) Ufixed {
	return must(UfixedFromFloat(f, high, low, RoundHalfEven, OverflowError))
}

// UfixedFromInt returns v as a Ufixed with the given bounds.
//
func UfixedFromInt(v int64, high, low int, rnd Round, ovf Overflow) (Ufixed, error) {
	return UfixedFromRat(new(big.Rat).SetInt64(v), high, low, rnd, ovf)
}

// UfixedFromDecimal returns the decimal number s, like "2.75" or "1e-3", as a
// Ufixed with the given bounds. s is parsed exactly, so the only rounding
// step is the one selected by rnd.
//
func UfixedFromDecimal(s string, high, low int, rnd Round, ovf Overflow) (Ufixed, error) {
	r, err := decimalRat(s, high, low)
	if err != nil {
		return Ufixed{}, err
	}
	return UfixedFromRat(r, high, low, rnd, ovf)
}

// ParseUfixed parses a bit string with an optional binary point. The bounds
// of the result follow from the position of the binary point: "1011.01" is
// 3 downto -2.
//
func ParseUfixed(s string) (Ufixed, error) {
	x, err := parseFixed(s, false)
	return Ufixed{x}, err
}

// MustParseUfixed is like ParseUfixed but panics on error.
//
func MustParseUfixed(s string) Ufixed {
	return must(ParseUfixed(s))
}

// UfixedFromBits returns the value of b, with the bounds of b's range. The
// range must be descending.
//
func UfixedFromBits(b Sequence[Bit]) (Ufixed, error) {
	x, err := fixFromBits(b, false)
	return Ufixed{x}, err
}

// UfixedFromUnsigned returns u as a Ufixed with bounds u.Width()-1 downto 0.
//
func UfixedFromUnsigned(u Unsigned) Ufixed {
	return Ufixed{fixval{u.Width() - 1, 0, u.val()}}
}

func (x Ufixed) High() int      { return x.high }
func (x Ufixed) Low() int       { return x.low }
func (x Ufixed) Width() int     { return x.width() }
func (x Ufixed) IsSigned() bool { return false }

// Range returns high downto low.
func (x Ufixed) Range() Range { return x.rng() }

// Mantissa returns the integer m such that x = m * 2**x.Low().
//
func (x Ufixed) Mantissa() *big.Int { return new(big.Int).Set(x.val()) }

// Rat returns the exact value of x.
func (x Ufixed) Rat() *big.Rat { return x.rat() }

// Float64 returns the float64 value nearest to x. The conversion is exact when
// x is representable as a float64.
//
func (x Ufixed) Float64() float64 { return x.float64() }

// Text returns the exact decimal representation of x.
func (x Ufixed) Text() string { return decimalText(x.fixval) }

// Add returns x + y with bounds max(x.High(), y.High())+1 downto
// min(x.Low(), y.Low()).
//
func (x Ufixed) Add(y Ufixed) Ufixed { return Ufixed{addSub(x.fixval, y.fixval, false, false)} }

// Sub returns x - y with the same bounds as Add. Negative differences wrap
// modulo 2**width.
//
func (x Ufixed) Sub(y Ufixed) Ufixed { return Ufixed{addSub(x.fixval, y.fixval, false, true)} }

// Mul returns x * y with bounds x.High()+y.High()+1 downto x.Low()+y.Low().
//
func (x Ufixed) Mul(y Ufixed) Ufixed { return Ufixed{mul(x.fixval, y.fixval)} }

// Div returns x / y with bounds x.High()-y.Low() downto x.Low()-y.High()-1,
// rounded according to rnd. It fails with ErrDivisionByZero if y is zero.
//
func (x Ufixed) Div(y Ufixed, rnd Round) (Ufixed, error) {
	z, err := div(x.fixval, y.fixval, x.high-y.low, x.low-y.high-1, false, rnd)
	return Ufixed{z}, err
}

// Resize returns x with bounds high downto low. Discarded low order bits are
// rounded according to rnd, then overflows are handled according to ovf.
//
func (x Ufixed) Resize(high, low int, rnd Round, ovf Overflow) (Ufixed, error) {
	z, err := x.resize(high, low, false, rnd, ovf)
	return Ufixed{z}, err
}

// Cmp compares the values of x and y and returns -1, 0 or +1.
//
func (x Ufixed) Cmp(y Ufixed) int { return x.cmp(y.fixval) }

func (x Ufixed) Equal(y Ufixed) bool        { return x.Cmp(y) == 0 }
func (x Ufixed) Less(y Ufixed) bool         { return x.Cmp(y) < 0 }
func (x Ufixed) LessEqual(y Ufixed) bool    { return x.Cmp(y) <= 0 }
func (x Ufixed) Greater(y Ufixed) bool      { return x.Cmp(y) > 0 }
func (x Ufixed) GreaterEqual(y Ufixed) bool { return x.Cmp(y) >= 0 }

// Bit returns the bit at index i.
func (x Ufixed) Bit(i int) (Bit, error) { return x.ints().bit(i) }

// Bits returns the bits of x, addressed by high downto low.
func (x Ufixed) Bits() *BitVector { return intBits(x.val(), x.rng()) }

// Unsigned returns the mantissa of x as an Unsigned of the same width.
func (x Ufixed) Unsigned() Unsigned { return Unsigned{newIntval(x.val(), x.width())} }

// Sfixed returns x as an Sfixed with bounds high+1 downto low.
//
func (x Ufixed) Sfixed() Sfixed {
	return Sfixed{fixval{x.high + 1, x.low, x.val()}}
}

// String returns the bits of x with a binary point, like "0010.11".
//
func (x Ufixed) String() string { return fixString(x.fixval) }
