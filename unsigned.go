// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math/big"
)

// Unsigned is an immutable unsigned integer of fixed width, like numeric_std's
// unsigned. Its bits are addressed by a Range, by default width-1 downto 0;
// the rightmost bit is the least significant one.
//
// Arithmetic operators return a result as wide as the widest operand and wrap
// modulo 2**width. The zero value is a one bit 0.
//
type Unsigned struct {
	intval
}

// NewUnsigned returns v as an Unsigned of the given width. It fails with
// ErrOverflow if v does not fit.
//
func NewUnsigned(v uint64, width int) (Unsigned, error) {
	return UnsignedFromBig(new(big.Int).SetUint64(v), width, OverflowError)
}

// MustUnsigned is like NewUnsigned but panics on error.
//
func MustUnsigned(v uint64, width int) Unsigned {
	return must(NewUnsigned(v, width))
}

// UnsignedFromBig returns v as an Unsigned of the given width. Values that do
// not fit are handled according to ovf: Wrap keeps the low order bits and
// Saturate clamps v to [0, 2**width-1].
//
func UnsignedFromBig(v *big.Int, width int, ovf Overflow) (Unsigned, error) {
	if err := checkWidth(width); err != nil {
		return Unsigned{}, err
	}
	z, err := fitInt(v, width, false, ovf)
	if err != nil {
		return Unsigned{}, err
	}
	return Unsigned{newIntval(z, width)}, nil
}

// UnsignedFromBits returns the unsigned value of b, addressed by b's range.
//
func UnsignedFromBits(b Sequence[Bit]) Unsigned {
	return Unsigned{intval{b.Range(), bitsInt(b, false)}}
}

// UnsignedFromLogic converts v to a BitVector according to mode, then returns
// its unsigned value. It fails with ErrValue if v holds metavalues.
//
func UnsignedFromLogic[T Scalar](v *LogicArray[T], mode NarrowMode) (Unsigned, error) {
	b, err := ConvertVector[Bit](v, mode)
	if err != nil {
		return Unsigned{}, err
	}
	return UnsignedFromBits(b), nil
}

// ParseUnsigned parses a bit string literal like "1010", x"F0" or 12ux"7F".
// The result has the width of the literal.
//
func ParseUnsigned(s string) (Unsigned, error) {
	syms, err := parseSymbols[Bit](s)
	if err != nil {
		return Unsigned{}, err
	}
	return UnsignedFromBits(&BitVector{Array[Bit]{store[Bit]{Descending(len(syms)), syms}}}), nil
}

// MustParseUnsigned is like ParseUnsigned but panics on error.
//
func MustParseUnsigned(s string) Unsigned {
	return must(ParseUnsigned(s))
}

// Width returns the number of bits in u.
func (u Unsigned) Width() int { return u.width() }

// Range returns the range addressing u's bits.
func (u Unsigned) Range() Range { return u.rng }

// IsSigned returns false.
func (u Unsigned) IsSigned() bool { return false }

// BigInt returns the value of u.
func (u Unsigned) BigInt() *big.Int { return new(big.Int).Set(u.val()) }

// Uint64 returns the value of u. It fails with ErrOverflow if u does not fit
// in a uint64.
//
func (u Unsigned) Uint64() (uint64, error) { return u.uint64() }

// Int64 returns the value of u. It fails with ErrOverflow if u does not fit
// in an int64.
//
func (u Unsigned) Int64() (int64, error) { return u.int64() }

// Float64 returns the float64 value nearest to u.
func (u Unsigned) Float64() float64 { return u.float64() }

func (u Unsigned) Add(o Unsigned) Unsigned { return Unsigned{binop(u.intval, o.intval, false, (*big.Int).Add)} }
func (u Unsigned) Sub(o Unsigned) Unsigned { return Unsigned{binop(u.intval, o.intval, false, (*big.Int).Sub)} }
func (u Unsigned) Mul(o Unsigned) Unsigned { return Unsigned{binop(u.intval, o.intval, false, (*big.Int).Mul)} }
func (u Unsigned) And(o Unsigned) Unsigned { return Unsigned{binop(u.intval, o.intval, false, (*big.Int).And)} }
func (u Unsigned) Or(o Unsigned) Unsigned  { return Unsigned{binop(u.intval, o.intval, false, (*big.Int).Or)} }
func (u Unsigned) Xor(o Unsigned) Unsigned { return Unsigned{binop(u.intval, o.intval, false, (*big.Int).Xor)} }
func (u Unsigned) Not() Unsigned           { return Unsigned{u.not(false)} }

// Div returns u / o. It fails with ErrDivisionByZero if o is zero.
//
func (u Unsigned) Div(o Unsigned) (Unsigned, error) {
	z, err := divop(u.intval, o.intval, false, "div", quo)
	return Unsigned{z}, err
}

// Mod returns u mod o. For unsigned operands, Mod and Rem are the same.
//
func (u Unsigned) Mod(o Unsigned) (Unsigned, error) {
	z, err := divop(u.intval, o.intval, false, "mod", mod)
	return Unsigned{z}, err
}

// Rem returns u rem o.
//
func (u Unsigned) Rem(o Unsigned) (Unsigned, error) {
	z, err := divop(u.intval, o.intval, false, "rem", rem)
	return Unsigned{z}, err
}

// Shl returns u shifted left by n bits.
func (u Unsigned) Shl(n uint) Unsigned { return Unsigned{u.shl(n, false)} }

// Shr returns u shifted right by n bits, filling with zeros.
func (u Unsigned) Shr(n uint) Unsigned { return Unsigned{u.shr(n)} }

// RotateLeft returns u rotated left by k bits. k may be negative.
func (u Unsigned) RotateLeft(k int) Unsigned { return Unsigned{u.rotl(k, false)} }

// RotateRight returns u rotated right by k bits. k may be negative.
func (u Unsigned) RotateRight(k int) Unsigned { return Unsigned{u.rotl(-k, false)} }

// Cmp compares the numeric values of u and o and returns -1, 0 or +1. Widths
// are not compared.
//
func (u Unsigned) Cmp(o Unsigned) int { return u.val().Cmp(o.val()) }

func (u Unsigned) Equal(o Unsigned) bool        { return u.Cmp(o) == 0 }
func (u Unsigned) Less(o Unsigned) bool         { return u.Cmp(o) < 0 }
func (u Unsigned) LessEqual(o Unsigned) bool    { return u.Cmp(o) <= 0 }
func (u Unsigned) Greater(o Unsigned) bool      { return u.Cmp(o) > 0 }
func (u Unsigned) GreaterEqual(o Unsigned) bool { return u.Cmp(o) >= 0 }

// Resize returns u resized to width bits. Growing always succeeds; shrinking
// handles values that do not fit according to ovf.
//
func (u Unsigned) Resize(width int, ovf Overflow) (Unsigned, error) {
	z, err := u.resize(width, false, ovf)
	return Unsigned{z}, err
}

// Bit returns the bit at index i.
func (u Unsigned) Bit(i int) (Bit, error) { return u.bit(i) }

// WithBit returns a copy of u where the bit at index i is set to b.
//
func (u Unsigned) WithBit(i int, b Bit) (Unsigned, error) {
	z, err := u.withBit(i, b, false)
	return Unsigned{z}, err
}

// Bits returns u's bits, addressed by u's range.
func (u Unsigned) Bits() *BitVector { return intBits(u.val(), u.rng) }

// Slice returns the bits i dir j of u.
//
func (u Unsigned) Slice(i, j int) (*BitVector, error) { return u.Bits().Slice(i, j) }

// Concat returns the concatenation of u and o, u being the most significant
// part. The result is addressed by u.Width()+o.Width()-1 downto 0.
//
func (u Unsigned) Concat(o Unsigned) Unsigned { return Unsigned{u.concat(o.intval, false)} }

// Signed returns the two's complement interpretation of u's bits.
//
func (u Unsigned) Signed() Signed {
	return Signed{intval{u.rng, wrapInt(u.val(), u.width(), true)}}
}

// Text returns the value of u in the given base, as big.Int.Text.
func (u Unsigned) Text(base int) string { return u.val().Text(base) }

// String returns the bits of u, most significant first.
func (u Unsigned) String() string { return intString(u.val(), u.width()) }
