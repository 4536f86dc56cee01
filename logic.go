// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"strconv"
)

// StdLogic is a 9-value logic value, as defined by IEEE 1164 (std_ulogic).
// Unlike VHDL signals, which start as 'U', the zero value is '0'.
//
// X01Z and Bit share the same code space, so that widening conversions are
// plain Go conversions:
//
//	StdLogic(Bit1) == L1 // true
//
type StdLogic uint8

// X01Z is a 4-value logic value: X, 0, 1 and Z, like the X01Z subtype of
// IEEE 1164 or Verilog's 4-state logic.
//
type X01Z uint8

// Bit is a 2-value logic value.
//
type Bit uint8

// StdLogic values. Codes are ordered so that the members of the Bit and X01Z
// subsets come first; the zero value of all three types is 0.
//
const (
	L0 StdLogic = iota // forcing 0
	L1                 // forcing 1
	X                  // forcing unknown
	Z                  // high impedance
	U                  // uninitialized
	W                  // weak unknown
	L                  // weak 0
	H                  // weak 1
	DC                 // don't care
)

// Bit values.
const (
	Bit0 = Bit(L0)
	Bit1 = Bit(L1)
)

const logicChars = "01XZUWLH-"

// ValueSet identifies the set of values a logic type can hold. Sets are
// ordered by inclusion: BitSet ⊂ X01ZSet ⊂ StdLogicSet.
//
type ValueSet uint8

// Value sets.
const (
	BitSet ValueSet = iota
	X01ZSet
	StdLogicSet
)

var setMembers = [...]uint16{
	BitSet:      1<<L0 | 1<<L1,
	X01ZSet:     1<<X | 1<<L0 | 1<<L1 | 1<<Z,
	StdLogicSet: 1<<9 - 1,
}

// Contains returns true if l can be represented in s.
//
func (s ValueSet) Contains(l StdLogic) bool {
	return l <= DC && setMembers[s]&(1<<l) != 0
}

// Widen returns the widest of s and o.
//
func (s ValueSet) Widen(o ValueSet) ValueSet {
	if o > s {
		return o
	}
	return s
}

// Of returns l as a value of the logic type for s. l must be a member of s.
//
func (s ValueSet) Of(l StdLogic) Logic {
	switch s {
	case BitSet:
		return Bit(l)
	case X01ZSet:
		return X01Z(l)
	}
	return l
}

func (s ValueSet) String() string {
	switch s {
	case BitSet:
		return "Bit"
	case X01ZSet:
		return "X01Z"
	case StdLogicSet:
		return "StdLogic"
	}
	return "ValueSet(" + strconv.Itoa(int(s)) + ")"
}

// Logic is implemented by the three logic scalar types.
//
type Logic interface {
	// Std returns the value widened to StdLogic.
	Std() StdLogic
	// Set returns the value set of the concrete type.
	Set() ValueSet
	String() string
}

// Scalar is a type constraint for generic code over logic scalars.
//
type Scalar interface {
	StdLogic | X01Z | Bit
	Logic
}

var andTable = [9][9]StdLogic{
	{L0, L0, L0, L0, L0, L0, L0, L0, L0}, // 0
	{L0, L1, X, X, U, X, L0, L1, X}, // 1
	{L0, X, X, X, U, X, L0, X, X}, // X
	{L0, X, X, X, U, X, L0, X, X}, // Z
	{L0, U, U, U, U, U, L0, U, U}, // U
	{L0, X, X, X, U, X, L0, X, X}, // W
	{L0, L0, L0, L0, L0, L0, L0, L0, L0}, // L
	{L0, L1, X, X, U, X, L0, L1, X}, // H
	{L0, X, X, X, U, X, L0, X, X}, // -
}

var orTable = [9][9]StdLogic{
	{L0, L1, X, X, U, X, L0, L1, X}, // 0
	{L1, L1, L1, L1, L1, L1, L1, L1, L1}, // 1
	{X, L1, X, X, U, X, X, L1, X}, // X
	{X, L1, X, X, U, X, X, L1, X}, // Z
	{U, L1, U, U, U, U, U, L1, U}, // U
	{X, L1, X, X, U, X, X, L1, X}, // W
	{L0, L1, X, X, U, X, L0, L1, X}, // L
	{L1, L1, L1, L1, L1, L1, L1, L1, L1}, // H
	{X, L1, X, X, U, X, X, L1, X}, // -
}

var xorTable = [9][9]StdLogic{
	{L0, L1, X, X, U, X, L0, L1, X}, // 0
	{L1, L0, X, X, U, X, L1, L0, X}, // 1
	{X, X, X, X, U, X, X, X, X}, // X
	{X, X, X, X, U, X, X, X, X}, // Z
	{U, U, U, U, U, U, U, U, U}, // U
	{X, X, X, X, U, X, X, X, X}, // W
	{L0, L1, X, X, U, X, L0, L1, X}, // L
	{L1, L0, X, X, U, X, L1, L0, X}, // H
	{X, X, X, X, U, X, X, X, X}, // -
}

var notTable = [9]StdLogic{L1, L0, X, X, U, X, L1, L0, X}

// ParseStdLogic returns the StdLogic value for the symbol c. Letters are case
// insensitive.
//
func ParseStdLogic(c rune) (StdLogic, error) {
	switch c {
	case 'U', 'u':
		return U, nil
	case 'X', 'x':
		return X, nil
	case '0':
		return L0, nil
	case '1':
		return L1, nil
	case 'Z', 'z':
		return Z, nil
	case 'W', 'w':
		return W, nil
	case 'L', 'l':
		return L, nil
	case 'H', 'h':
		return H, nil
	case '-':
		return DC, nil
	}
	return U, valueErrorf("invalid logic literal %q", c)
}

// ParseLogic parses the symbol c as a value of type T. It fails if c is not a
// valid symbol or if its value is not a member of T's value set.
//
func ParseLogic[T Scalar](c rune) (T, error) {
	var zero T
	l, err := ParseStdLogic(c)
	if err != nil {
		return zero, err
	}
	if !zero.Set().Contains(l) {
		return zero, valueErrorf("literal %q not in %v", c, zero.Set())
	}
	return T(l), nil
}

// ParseX01Z returns the X01Z value for the symbol c.
//
func ParseX01Z(c rune) (X01Z, error) { return ParseLogic[X01Z](c) }

// ParseBit returns the Bit value for the symbol c.
//
func ParseBit(c rune) (Bit, error) { return ParseLogic[Bit](c) }

// LogicOf returns Bit1 if b is true, Bit0 otherwise.
//
func LogicOf(b bool) Bit {
	if b {
		return Bit1
	}
	return Bit0
}

// NarrowMode selects how values are converted to a narrower value set.
//
type NarrowMode uint8

const (
	// Strict fails on any value that has no exact representation in the target set.
	Strict NarrowMode = iota
	// Relaxed maps weak values to their strong equivalent (L to 0, H to 1) and,
	// when the target is X01Z, the remaining metavalues to X, like To_X01Z in
	// IEEE 1164. Metavalues still fail when the target is Bit.
	Relaxed
)

// Narrow converts l to type T.
//
func Narrow[T Scalar](l Logic, mode NarrowMode) (T, error) {
	var zero T
	v, set := l.Std(), zero.Set()
	if set.Contains(v) {
		return T(v), nil
	}
	if mode == Relaxed {
		switch v {
		case L:
			return T(L0), nil
		case H:
			return T(L1), nil
		case U, W, DC:
			if set.Contains(X) {
				return T(X), nil
			}
		}
	}
	return zero, valueErrorf("%v(%s) not in %v", l.Set(), v, set)
}

// ToX01Z converts l to X01Z.
//
func ToX01Z(l Logic, mode NarrowMode) (X01Z, error) { return Narrow[X01Z](l, mode) }

// ToBit converts l to Bit.
//
func ToBit(l Logic, mode NarrowMode) (Bit, error) { return Narrow[Bit](l, mode) }

// And returns a & b in the widest value set of a and b.
//
func And(a, b Logic) Logic {
	return a.Set().Widen(b.Set()).Of(andTable[a.Std()][b.Std()])
}

// Or returns a | b in the widest value set of a and b.
//
func Or(a, b Logic) Logic {
	return a.Set().Widen(b.Set()).Of(orTable[a.Std()][b.Std()])
}

// Xor returns a ^ b in the widest value set of a and b.
//
func Xor(a, b Logic) Logic {
	return a.Set().Widen(b.Set()).Of(xorTable[a.Std()][b.Std()])
}

// Not returns ~a.
//
func Not(a Logic) Logic {
	return a.Set().Of(notTable[a.Std()])
}

// StdLogic

func (l StdLogic) Std() StdLogic  { return l }
func (l StdLogic) Set() ValueSet  { return StdLogicSet }
func (l StdLogic) Char() byte     { return logicChars[l] }
func (l StdLogic) String() string { return logicChars[l : l+1] }

func (l StdLogic) And(o StdLogic) StdLogic  { return andTable[l][o] }
func (l StdLogic) Or(o StdLogic) StdLogic   { return orTable[l][o] }
func (l StdLogic) Xor(o StdLogic) StdLogic  { return xorTable[l][o] }
func (l StdLogic) Not() StdLogic            { return notTable[l] }
func (l StdLogic) Nand(o StdLogic) StdLogic { return notTable[andTable[l][o]] }
func (l StdLogic) Nor(o StdLogic) StdLogic  { return notTable[orTable[l][o]] }
func (l StdLogic) Xnor(o StdLogic) StdLogic { return notTable[xorTable[l][o]] }

// IsMeta returns true if l is one of the metavalues U, X, Z, W or -.
//
func (l StdLogic) IsMeta() bool {
	return l != L0 && l != L1 && l != L && l != H
}

// Bool returns the boolean value of l. It fails if l is a metavalue.
//
func (l StdLogic) Bool() (bool, error) {
	switch l {
	case L0, L:
		return false, nil
	case L1, H:
		return true, nil
	}
	return false, valueErrorf("metavalue %s has no boolean value", l)
}

// X01Z

func (l X01Z) Std() StdLogic  { return StdLogic(l) }
func (l X01Z) Set() ValueSet  { return X01ZSet }
func (l X01Z) Char() byte     { return StdLogic(l).Char() }
func (l X01Z) String() string { return StdLogic(l).String() }

func (l X01Z) And(o X01Z) X01Z  { return X01Z(andTable[l][o]) }
func (l X01Z) Or(o X01Z) X01Z   { return X01Z(orTable[l][o]) }
func (l X01Z) Xor(o X01Z) X01Z  { return X01Z(xorTable[l][o]) }
func (l X01Z) Not() X01Z        { return X01Z(notTable[l]) }
func (l X01Z) Nand(o X01Z) X01Z { return l.And(o).Not() }
func (l X01Z) Nor(o X01Z) X01Z  { return l.Or(o).Not() }
func (l X01Z) Xnor(o X01Z) X01Z { return l.Xor(o).Not() }

// Bit

func (b Bit) Std() StdLogic  { return StdLogic(b) }
func (b Bit) Set() ValueSet  { return BitSet }
func (b Bit) Char() byte     { return StdLogic(b).Char() }
func (b Bit) String() string { return StdLogic(b).String() }

func (b Bit) And(o Bit) Bit  { return Bit(andTable[b][o]) }
func (b Bit) Or(o Bit) Bit   { return Bit(orTable[b][o]) }
func (b Bit) Xor(o Bit) Bit  { return Bit(xorTable[b][o]) }
func (b Bit) Not() Bit       { return Bit(notTable[b]) }
func (b Bit) Nand(o Bit) Bit { return b.And(o).Not() }
func (b Bit) Nor(o Bit) Bit  { return b.Or(o).Not() }
func (b Bit) Xnor(o Bit) Bit { return b.Xor(o).Not() }

// Bool returns true for Bit1.
//
func (b Bit) Bool() bool { return b == Bit1 }
