// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math/big"

	"github.com/cockroachdb/apd"
)

var bigTen = big.NewInt(10)

// decimalRat parses a decimal number like "2.75", "-1e-3" or "0.1" into an
// exact rational. Values too small or too large for bounds high downto low are
// replaced by a power of two that rounds and overflows the same way, so that
// exponents like 1e-999999999 never get expanded.
//
func decimalRat(s string, high, low int) (*big.Rat, error) {
	var d apd.Decimal
	if _, _, err := d.SetString(s); err != nil {
		return nil, valueErrorf("invalid decimal literal %q: %v", s, err)
	}
	if d.Form != apd.Finite {
		return nil, valueErrorf("cannot convert %q to fixed-point", s)
	}
	if d.Coeff.Sign() == 0 {
		return new(big.Rat), nil
	}
	e := int(d.Exponent)
	// |value| < 10**k <= 2**(3k) for k <= 0
	k := len(d.Coeff.Text(10)) + e
	switch {
	case k <= 0 && 3*k <= low-2:
		// below a quarter of the lsb
		return signedPow2(low-2, d.Negative), nil
	case e >= 0 && e >= high+2:
		// a multiple of 2**e, at least 2**(high+2)
		return signedPow2(high+2, d.Negative), nil
	}
	r := new(big.Rat).SetInt(&d.Coeff)
	if d.Negative {
		r.Neg(r)
	}
	p := new(big.Int).Exp(bigTen, big.NewInt(int64(abs(e))), nil)
	if e >= 0 {
		return r.Mul(r, new(big.Rat).SetInt(p)), nil
	}
	return r.Quo(r, new(big.Rat).SetInt(p)), nil
}

func signedPow2(e int, neg bool) *big.Rat {
	r := pow2Rat(e)
	if neg {
		r.Neg(r)
	}
	return r
}

// decimalText returns the exact decimal representation of x. Since x is a
// multiple of 2**low, m * 2**low = m * 5**-low * 10**low when low < 0, and the
// result never needs more than -low fractional digits.
//
func decimalText(x fixval) string {
	var d apd.Decimal
	m := x.val()
	if x.low >= 0 {
		d.Coeff.Lsh(m, uint(x.low))
	} else {
		d.Coeff.Mul(m, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-x.low)), nil))
		d.Exponent = int32(x.low)
	}
	if d.Coeff.Sign() < 0 {
		d.Negative = true
		d.Coeff.Neg(&d.Coeff)
	}
	// strip trailing fractional zeros
	var q, r big.Int
	for d.Exponent < 0 {
		q.QuoRem(&d.Coeff, bigTen, &r)
		if r.Sign() != 0 {
			break
		}
		d.Coeff.Set(&q)
		d.Exponent++
	}
	if d.Coeff.Sign() == 0 {
		d.Negative = false
	}
	return d.Text('f')
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
