// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math/big"
)

// Signed is an immutable two's complement integer of fixed width, like
// numeric_std's signed. See Unsigned for the addressing and width rules.
//
type Signed struct {
	intval
}

// NewSigned returns v as a Signed of the given width. It fails with
// ErrOverflow if v does not fit in [-2**(width-1), 2**(width-1)-1].
//
func NewSigned(v int64, width int) (Signed, error) {
	return SignedFromBig(big.NewInt(v), width, OverflowError)
}

// MustSigned is like NewSigned but panics on error.
//
func MustSigned(v int64, width int) Signed {
	return must(NewSigned(v, width))
}

// SignedFromBig returns v as a Signed of the given width, handling values that
// do not fit according to ovf.
//
func SignedFromBig(v *big.Int, width int, ovf Overflow) (Signed, error) {
	if err := checkWidth(width); err != nil {
		return Signed{}, err
	}
	z, err := fitInt(v, width, true, ovf)
	if err != nil {
		return Signed{}, err
	}
	return Signed{newIntval(z, width)}, nil
}

// SignedFromBits returns the two's complement value of b, addressed by b's
// range.
//
func SignedFromBits(b Sequence[Bit]) Signed {
	return Signed{intval{b.Range(), bitsInt(b, true)}}
}

// SignedFromLogic is like UnsignedFromLogic for signed values.
//
func SignedFromLogic[T Scalar](v *LogicArray[T], mode NarrowMode) (Signed, error) {
	b, err := ConvertVector[Bit](v, mode)
	if err != nil {
		return Signed{}, err
	}
	return SignedFromBits(b), nil
}

// ParseSigned parses a bit string literal like "1010", sx"F0" or 12sx"F".
//
func ParseSigned(s string) (Signed, error) {
	u, err := ParseUnsigned(s)
	if err != nil {
		return Signed{}, err
	}
	return u.Signed(), nil
}

// MustParseSigned is like ParseSigned but panics on error.
//
func MustParseSigned(s string) Signed {
	return must(ParseSigned(s))
}

// Width returns the number of bits of s.
func (s Signed) Width() int { return s.width() }

// Range returns the range of s's bit view.
func (s Signed) Range() Range { return s.rng }

// IsSigned returns true.
func (s Signed) IsSigned() bool { return true }

// BigInt returns the value of s as a new big.Int.
func (s Signed) BigInt() *big.Int { return new(big.Int).Set(s.val()) }

// Sign returns -1, 0 or +1 depending on the sign of s.
func (s Signed) Sign() int { return s.val().Sign() }

// Int64 returns the value of s. It fails with ErrOverflow if s does not fit
// in an int64.
//
func (s Signed) Int64() (int64, error) { return s.int64() }

// Float64 returns the float64 value nearest to s.
func (s Signed) Float64() float64 { return s.float64() }

func (s Signed) Add(o Signed) Signed { return Signed{binop(s.intval, o.intval, true, (*big.Int).Add)} }
func (s Signed) Sub(o Signed) Signed { return Signed{binop(s.intval, o.intval, true, (*big.Int).Sub)} }
func (s Signed) Mul(o Signed) Signed { return Signed{binop(s.intval, o.intval, true, (*big.Int).Mul)} }
func (s Signed) And(o Signed) Signed { return Signed{binop(s.intval, o.intval, true, (*big.Int).And)} }
func (s Signed) Or(o Signed) Signed  { return Signed{binop(s.intval, o.intval, true, (*big.Int).Or)} }
func (s Signed) Xor(o Signed) Signed { return Signed{binop(s.intval, o.intval, true, (*big.Int).Xor)} }
func (s Signed) Not() Signed         { return Signed{s.not(true)} }

// Neg returns -s. The most negative value wraps to itself.
//
func (s Signed) Neg() Signed {
	return Signed{newIntval(wrapInt(new(big.Int).Neg(s.val()), s.width(), true), s.width())}
}

// Abs returns |s|. The most negative value wraps to itself.
//
func (s Signed) Abs() Signed {
	if s.Sign() < 0 {
		return s.Neg()
	}
	return Signed{newIntval(s.val(), s.width())}
}

// Div returns s / o, truncated toward zero. It fails with ErrDivisionByZero
// if o is zero.
//
func (s Signed) Div(o Signed) (Signed, error) {
	z, err := divop(s.intval, o.intval, true, "div", quo)
	return Signed{z}, err
}

// Mod returns s mod o. The result has the sign of o.
//
func (s Signed) Mod(o Signed) (Signed, error) {
	z, err := divop(s.intval, o.intval, true, "mod", mod)
	return Signed{z}, err
}

// Rem returns s rem o. The result has the sign of s.
//
func (s Signed) Rem(o Signed) (Signed, error) {
	z, err := divop(s.intval, o.intval, true, "rem", rem)
	return Signed{z}, err
}

// Shl returns s shifted left by n bits.
func (s Signed) Shl(n uint) Signed { return Signed{s.shl(n, true)} }

// Shr returns s shifted right by n bits, replicating the sign bit.
func (s Signed) Shr(n uint) Signed { return Signed{s.shr(n)} }

// RotateLeft returns s rotated left by k bits. Negative k rotates right.
func (s Signed) RotateLeft(k int) Signed { return Signed{s.rotl(k, true)} }

// RotateRight returns s rotated right by k bits.
func (s Signed) RotateRight(k int) Signed { return Signed{s.rotl(-k, true)} }

// Cmp compares the numeric values of s and o and returns -1, 0 or +1.
//
func (s Signed) Cmp(o Signed) int { return s.val().Cmp(o.val()) }

func (s Signed) Equal(o Signed) bool        { return s.Cmp(o) == 0 }
func (s Signed) Less(o Signed) bool         { return s.Cmp(o) < 0 }
func (s Signed) LessEqual(o Signed) bool    { return s.Cmp(o) <= 0 }
func (s Signed) Greater(o Signed) bool      { return s.Cmp(o) > 0 }
func (s Signed) GreaterEqual(o Signed) bool { return s.Cmp(o) >= 0 }

// Resize returns s resized to width bits, sign extending when growing.
// Shrinking handles values that do not fit according to ovf.
//
func (s Signed) Resize(width int, ovf Overflow) (Signed, error) {
	z, err := s.resize(width, true, ovf)
	return Signed{z}, err
}

// Bit returns the bit at index i of s's range.
func (s Signed) Bit(i int) (Bit, error) { return s.bit(i) }

// WithBit returns a copy of s with the bit at index i set to b.
func (s Signed) WithBit(i int, b Bit) (Signed, error) {
	z, err := s.withBit(i, b, true)
	return Signed{z}, err
}

// Bits returns the two's complement bits of s, addressed by s's range.
func (s Signed) Bits() *BitVector { return intBits(s.val(), s.rng) }

// Slice returns the bits i dir j of s.
func (s Signed) Slice(i, j int) (*BitVector, error) { return s.Bits().Slice(i, j) }

// Concat returns the bits of s followed by the bits of o, as a Signed of
// width s.Width()+o.Width().
//
func (s Signed) Concat(o Signed) Signed { return Signed{s.concat(o.intval, true)} }

// Text returns the value of s in the given base, with a leading '-' when
// negative.
func (s Signed) Text(base int) string { return s.val().Text(base) }

// Unsigned returns the unsigned interpretation of s's bits.
//
func (s Signed) Unsigned() Unsigned {
	return Unsigned{intval{s.rng, wrapInt(s.val(), s.width(), false)}}
}

// String returns the two's complement bits of s, most significant first.
func (s Signed) String() string { return intString(s.val(), s.width()) }
