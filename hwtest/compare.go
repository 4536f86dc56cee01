// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing hardware arithmetic
// against a math/big reference model.
//
package hwtest

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"
	"time"

	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
)

// ExhaustiveBits is the maximum number of operand bits for which the Compare
// functions try all operand combinations. Wider operands are tested on their
// extreme values plus 1<<ExhaustiveBits random values.
//
const ExhaustiveBits = 12

// Ref is a reference implementation of a binary operator on unbounded
// integers. It returns nil when the operation must fail, like a division by
// zero. z is a fresh value that Ref may use to store its result.
//
type Ref func(z, x, y *big.Int) *big.Int

// Checked adapts an operator that cannot fail to the form expected by the
// Compare functions.
//
func Checked[T any](f func(x, y T) T) func(x, y T) (T, error) {
	return func(x, y T) (T, error) { return f(x, y), nil }
}

// NonZero returns a Ref that returns nil when y is zero and f(z, x, y)
// otherwise.
//
func NonZero(f Ref) Ref {
	return func(z, x, y *big.Int) *big.Int {
		if y.Sign() == 0 {
			return nil
		}
		return f(z, x, y)
	}
}

// operands calls f with pairs of integers in [lo, hi]. If both operands
// together have no more than ExhaustiveBits bits, f is called with all pairs,
// otherwise with the bounds, zero and random values. f returns false to stop.
//
func operands(width int, lo, hi *big.Int, f func(x, y *big.Int) bool) {
	if 2*width <= ExhaustiveBits {
		for x := new(big.Int).Set(lo); x.Cmp(hi) <= 0; x.Add(x, big.NewInt(1)) {
			for y := new(big.Int).Set(lo); y.Cmp(hi) <= 0; y.Add(y, big.NewInt(1)) {
				if !f(x, y) {
					return
				}
			}
		}
		return
	}

	edges := []*big.Int{lo, hi, big.NewInt(0), big.NewInt(1)}
	if lo.Sign() < 0 {
		edges = append(edges, big.NewInt(-1))
	}
	for _, x := range edges {
		for _, y := range edges {
			if !f(x, y) {
				return
			}
		}
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))
	random := func() *big.Int {
		v := new(big.Int).Rand(rnd, span)
		return v.Add(v, lo)
	}
	for i := 0; i < 1<<ExhaustiveBits; i++ {
		if !f(random(), random()) {
			return
		}
	}
}

// wrap reduces v modulo 2**n, into [0, 2**n) or [-2**(n-1), 2**(n-1)).
func wrap(v *big.Int, n int, signed bool) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(n))
	z := new(big.Int).Mod(v, m)
	if signed && z.Cmp(new(big.Int).Rsh(m, 1)) >= 0 {
		z.Sub(z, m)
	}
	return z
}

func compare[T hw.Integer](t *testing.T, name string, width int, signed bool, mk func(v *big.Int) T, got func(x, y T) (T, error), want Ref) {
	t.Helper()
	var lo, hi *big.Int
	if signed {
		lo = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(width-1)))
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width-1)), big.NewInt(1))
	} else {
		lo = big.NewInt(0)
		hi = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	}

	start := time.Now()
	count := 0
	operands(width, lo, hi, func(x, y *big.Int) bool {
		count++
		a, b := mk(x), mk(y)
		z, err := got(a, b)
		ref := want(new(big.Int), x, y)
		if ref == nil {
			if err == nil {
				t.Errorf("%s(%v, %v): expected an error, got %v", name, x, y, z.BigInt())
				return false
			}
			return true
		}
		if err != nil {
			t.Errorf("%s(%v, %v): %+v", name, x, y, err)
			return false
		}
		ex := wrap(ref, width, signed)
		if z.Width() != width || z.BigInt().Cmp(ex) != 0 {
			t.Error(errString(name, x, y, ex, width, z))
			return false
		}
		return true
	})
	t.Logf("%s: %d operand pairs of %d bits in %v", name, count, width, time.Since(start))
}

func errString(name string, x, y, ex *big.Int, width int, got hw.Integer) string {
	var b strings.Builder
	b.WriteString("\nExpected ")
	b.WriteString(name)
	b.WriteString("(")
	b.WriteString(x.String())
	b.WriteString(", ")
	b.WriteString(y.String())
	b.WriteString(") = ")
	b.WriteString(ex.String())
	b.WriteString(" on ")
	b.WriteString(big.NewInt(int64(width)).String())
	b.WriteString(" bits\nGot ")
	b.WriteString(got.BigInt().String())
	b.WriteString(" (")
	b.WriteString(got.String())
	b.WriteString(")")
	return b.String()
}

// CompareUnsigned checks that got computes want modulo 2**width for pairs of
// width bits Unsigned operands.
//
func CompareUnsigned(t *testing.T, name string, width int, got func(x, y hw.Unsigned) (hw.Unsigned, error), want Ref) {
	t.Helper()
	mk := func(v *big.Int) hw.Unsigned {
		u, err := hw.UnsignedFromBig(v, width, hw.OverflowError)
		if err != nil {
			t.Fatal(err)
		}
		return u
	}
	compare(t, name, width, false, mk, got, want)
}

// CompareSigned is like CompareUnsigned for two's complement operands.
//
func CompareSigned(t *testing.T, name string, width int, got func(x, y hw.Signed) (hw.Signed, error), want Ref) {
	t.Helper()
	mk := func(v *big.Int) hw.Signed {
		s, err := hw.SignedFromBig(v, width, hw.OverflowError)
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	compare(t, name, width, true, mk, got, want)
}

// CompareUfixed checks that got computes the exact value want for pairs of
// Ufixed operands with bounds high downto low. want returns nil when the
// operation must fail.
//
func CompareUfixed(t *testing.T, name string, high, low int, got func(x, y hw.Ufixed) (hw.Ufixed, error), want func(x, y *big.Rat) *big.Rat) {
	t.Helper()
	width := high - low + 1
	hi := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	scale := new(big.Rat)
	if low < 0 {
		scale.SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), uint(-low)))
	} else {
		scale.SetInt(new(big.Int).Lsh(big.NewInt(1), uint(low)))
	}
	mk := func(m *big.Int) hw.Ufixed {
		r := new(big.Rat).Mul(new(big.Rat).SetInt(m), scale)
		x, err := hw.UfixedFromRat(r, high, low, hw.RoundHalfEven, hw.OverflowError)
		if err != nil {
			t.Fatal(err)
		}
		return x
	}
	operands(width, big.NewInt(0), hi, func(mx, my *big.Int) bool {
		x, y := mk(mx), mk(my)
		z, err := got(x, y)
		ex := want(x.Rat(), y.Rat())
		switch {
		case ex == nil && err == nil:
			t.Errorf("%s(%v, %v): expected an error, got %v", name, x.Text(), y.Text(), z.Text())
		case ex == nil:
			return true
		case err != nil:
			t.Errorf("%s(%v, %v): %+v", name, x.Text(), y.Text(), err)
		case z.Rat().Cmp(ex) != 0:
			t.Errorf("%s(%v, %v): expected %v, got %v (%v)", name, x.Text(), y.Text(), ex.RatString(), z.Text(), z)
		default:
			return true
		}
		return false
	})
}

// ErrorIs returns true if err wraps target.
//
func ErrorIs(err, target error) bool {
	return err != nil && errors.Cause(err) == target
}
