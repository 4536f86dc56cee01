// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"math/big"
	"strconv"
	"strings"
)

// Round selects how fixed-point values are rounded when low order bits are
// discarded.
//
type Round uint8

// Rounding modes. RoundHalfEven and RoundTruncate correspond to fixed_round
// and fixed_truncate in IEEE 1076-2008 fixed_pkg.
//
const (
	RoundHalfEven   Round = iota // nearest, ties to even
	RoundTruncate                // toward negative infinity
	RoundTowardZero              // toward zero
	RoundHalfUp                  // nearest, ties toward positive infinity
	RoundCeil                    // toward positive infinity
)

var roundNames = [...]string{
	RoundHalfEven:   "half-even",
	RoundTruncate:   "truncate",
	RoundTowardZero: "toward-zero",
	RoundHalfUp:     "half-up",
	RoundCeil:       "ceil",
}

func (r Round) String() string {
	if int(r) < len(roundNames) {
		return roundNames[r]
	}
	return "Round(" + strconv.Itoa(int(r)) + ")"
}

// ParseRound returns the rounding mode named s. Valid names are the ones
// returned by Round.String.
//
func ParseRound(s string) (Round, error) {
	s = strings.ToLower(s)
	for i, n := range roundNames {
		if n == s {
			return Round(i), nil
		}
	}
	return RoundHalfEven, valueErrorf("invalid rounding mode %q", s)
}

// roundRat rounds r to an integer.
//
func roundRat(r *big.Rat, mode Round) *big.Int {
	num, den := r.Num(), r.Denom()
	// den > 0, so the Euclidean quotient is the floor of r and m >= 0.
	q, m := new(big.Int).DivMod(num, den, new(big.Int))
	if m.Sign() == 0 {
		return q
	}
	switch mode {
	case RoundTruncate:
		return q
	case RoundCeil:
		return q.Add(q, bigOne)
	case RoundTowardZero:
		if num.Sign() < 0 {
			q.Add(q, bigOne)
		}
		return q
	}
	switch m.Lsh(m, 1).Cmp(den) {
	case 1:
		q.Add(q, bigOne)
	case 0:
		if mode == RoundHalfUp || q.Bit(0) != 0 {
			q.Add(q, bigOne)
		}
	}
	return q
}
