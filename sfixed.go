// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math/big"
)

// Sfixed is an immutable two's complement fixed-point number, like fixed_pkg's
// sfixed. See Ufixed for the addressing and sizing rules.
//
type Sfixed struct {
	fixval
}

// SfixedFromRat returns r as an Sfixed with the given bounds.
//
func SfixedFromRat(r *big.Rat, high, low int, rnd Round, ovf Overflow) (Sfixed, error) {
	x, err := fixFromRat(r, high, low, true, rnd, ovf)
	return Sfixed{x}, err
}

// SfixedFromFloat returns f as an Sfixed with the given bounds.
//
func SfixedFromFloat(f float64, high, low int, rnd Round, ovf Overflow) (Sfixed, error) {
	r, err := floatRat(f)
	if err != nil {
		return Sfixed{}, err
	}
	return SfixedFromRat(r, high, low, rnd, ovf)
}

// MustSfixed is like SfixedFromFloat with RoundHalfEven and OverflowError,
// but panics on error.
//
func MustSfixed(f float64, high, low int) Sfixed {
	return must(SfixedFromFloat(f, high, low, RoundHalfEven, OverflowError))
}

// SfixedFromInt returns v as an Sfixed with the given bounds.
//
func SfixedFromInt(v int64, high, low int, rnd Round, ovf Overflow) (Sfixed, error) {
	return SfixedFromRat(new(big.Rat).SetInt64(v), high, low, rnd, ovf)
}

// SfixedFromDecimal returns the decimal number s as an Sfixed with the given
// bounds.
//
func SfixedFromDecimal(s string, high, low int, rnd Round, ovf Overflow) (Sfixed, error) {
	r, err := decimalRat(s, high, low)
	if err != nil {
		return Sfixed{}, err
	}
	return SfixedFromRat(r, high, low, rnd, ovf)
}

// ParseSfixed parses a two's complement bit string with an optional binary
// point: "1110.1" is -1.5 with bounds 3 downto -1.
//
func ParseSfixed(s string) (Sfixed, error) {
	x, err := parseFixed(s, true)
	return Sfixed{x}, err
}

// MustParseSfixed is like ParseSfixed but panics on error.
//
func MustParseSfixed(s string) Sfixed {
	return must(ParseSfixed(s))
}

// SfixedFromBits returns the two's complement value of b, with the bounds of
// b's range. The range must be descending.
//
func SfixedFromBits(b Sequence[Bit]) (Sfixed, error) {
	x, err := fixFromBits(b, true)
	return Sfixed{x}, err
}

// SfixedFromSigned returns s as an Sfixed with bounds s.Width()-1 downto 0.
//
func SfixedFromSigned(s Signed) Sfixed {
	return Sfixed{fixval{s.Width() - 1, 0, s.val()}}
}

func (x Sfixed) High() int      { return x.high }
func (x Sfixed) Low() int       { return x.low }
func (x Sfixed) Width() int     { return x.width() }
func (x Sfixed) IsSigned() bool { return true }

// Range returns high downto low.
func (x Sfixed) Range() Range { return x.rng() }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Sfixed) Sign() int { return x.val().Sign() }

// Mantissa returns the integer m such that x = m * 2**x.Low().
//
func (x Sfixed) Mantissa() *big.Int { return new(big.Int).Set(x.val()) }

// Rat returns the exact value of x.
func (x Sfixed) Rat() *big.Rat { return x.rat() }

// Float64 returns the float64 value nearest to x.
func (x Sfixed) Float64() float64 { return x.float64() }

// Text returns the exact decimal representation of x.
func (x Sfixed) Text() string { return decimalText(x.fixval) }

// Add returns x + y with bounds max(x.High(), y.High())+1 downto
// min(x.Low(), y.Low()).
//
func (x Sfixed) Add(y Sfixed) Sfixed { return Sfixed{addSub(x.fixval, y.fixval, true, false)} }

// Sub returns x - y with the same bounds as Add.
func (x Sfixed) Sub(y Sfixed) Sfixed { return Sfixed{addSub(x.fixval, y.fixval, true, true)} }

// Mul returns x * y with bounds x.High()+y.High()+1 downto x.Low()+y.Low().
func (x Sfixed) Mul(y Sfixed) Sfixed { return Sfixed{mul(x.fixval, y.fixval)} }

// Div returns x / y with bounds x.High()-y.Low()+1 downto x.Low()-y.High(),
// rounded according to rnd. It fails with ErrDivisionByZero if y is zero.
//
func (x Sfixed) Div(y Sfixed, rnd Round) (Sfixed, error) {
	z, err := div(x.fixval, y.fixval, x.high-y.low+1, x.low-y.high, true, rnd)
	return Sfixed{z}, err
}

// Neg returns -x with bounds high+1 downto low.
//
func (x Sfixed) Neg() Sfixed {
	return Sfixed{fixval{x.high + 1, x.low, new(big.Int).Neg(x.val())}}
}

// Abs returns |x| with bounds high+1 downto low.
//
func (x Sfixed) Abs() Sfixed {
	return Sfixed{fixval{x.high + 1, x.low, new(big.Int).Abs(x.val())}}
}

// Resize returns x with bounds high downto low. Discarded low order bits are
// rounded according to rnd, then overflows are handled according to ovf.
//
func (x Sfixed) Resize(high, low int, rnd Round, ovf Overflow) (Sfixed, error) {
	z, err := x.resize(high, low, true, rnd, ovf)
	return Sfixed{z}, err
}

// Cmp compares the values of x and y and returns -1, 0 or +1.
//
func (x Sfixed) Cmp(y Sfixed) int { return x.cmp(y.fixval) }

func (x Sfixed) Equal(y Sfixed) bool        { return x.Cmp(y) == 0 }
func (x Sfixed) Less(y Sfixed) bool         { return x.Cmp(y) < 0 }
func (x Sfixed) LessEqual(y Sfixed) bool    { return x.Cmp(y) <= 0 }
func (x Sfixed) Greater(y Sfixed) bool      { return x.Cmp(y) > 0 }
func (x Sfixed) GreaterEqual(y Sfixed) bool { return x.Cmp(y) >= 0 }

// Bit returns the bit at index i.
func (x Sfixed) Bit(i int) (Bit, error) { return x.ints().bit(i) }

// Bits returns the two's complement bits of x, addressed by high downto low.
func (x Sfixed) Bits() *BitVector { return intBits(x.val(), x.rng()) }

// Signed returns the mantissa of x as a Signed of the same width.
func (x Sfixed) Signed() Signed { return Signed{newIntval(x.val(), x.width())} }

// Ufixed returns x as a Ufixed with the same bounds, handling negative values
// according to ovf.
//
func (x Sfixed) Ufixed(ovf Overflow) (Ufixed, error) {
	z, err := x.resize(x.high, x.low, false, RoundHalfEven, ovf)
	return Ufixed{z}, err
}

// String returns the two's complement bits of x with a binary point.
func (x Sfixed) String() string { return fixString(x.fixval) }
