// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package lit

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Range directions as parsed.
const (
	DirInfer = iota
	DirTo
	DirDownto
)

// RangeSpec is a parsed range specification.
//
type RangeSpec struct {
	Left  int
	Dir   int
	Right int
}

// ParseRange parses a range specification:
//
//	7 downto 0
//	(0 to 3)
//	[7..0]     // direction inferred
//
func ParseRange(in string) (RangeSpec, error) {
	var r RangeSpec
	l := NewLexer(in)
	i := l.Lex()
	var closing Type
	switch i.Type {
	case BracketOpen:
		closing = BracketClose
		i = l.Lex()
	case ParenOpen:
		closing = ParenClose
		i = l.Lex()
	}
	if i.Type != Int {
		return r, parseError(in, i.Pos, "expected left bound, got "+i.String())
	}
	r.Left = i.Value.(int)
	i = l.Lex()
	switch {
	case i.Type == Range && closing == BracketClose:
		r.Dir = DirInfer
	case i.Type == Ident && strings.EqualFold(i.Value.(string), "to") && closing != BracketClose:
		r.Dir = DirTo
	case i.Type == Ident && strings.EqualFold(i.Value.(string), "downto") && closing != BracketClose:
		r.Dir = DirDownto
	default:
		return r, parseError(in, i.Pos, "expected direction, got "+i.String())
	}
	i = l.Lex()
	if i.Type != Int {
		return r, parseError(in, i.Pos, "expected right bound, got "+i.String())
	}
	r.Right = i.Value.(int)
	i = l.Lex()
	if closing != EOF {
		if i.Type != closing {
			return r, parseError(in, i.Pos, "expected "+closing.String()+", got "+i.String())
		}
		i = l.Lex()
	}
	if i.Type != EOF {
		return r, parseError(in, i.Pos, "unexpected "+i.String())
	}
	return r, nil
}

// BitString is a parsed bit string literal.
//
type BitString struct {
	// Symbols holds the expanded literal, one symbol per element, leftmost
	// first. Symbols are not validated against any value set.
	Symbols string
	// Signed is true for literals with an 's' base specifier.
	Signed bool
}

// ParseBitString parses a bit string literal. Bare symbol strings like
// "01XZ" or "1010_0101" are returned as is, minus underscores. Otherwise the
// input must be a VHDL-2008 bit string literal:
//
//	"0101"  b"0101"  x"F0"  o"17"  d"42"  8ux"F"  12sx"F"  x"-Z"
//
// Non-digit characters in octal and hexadecimal literals are replicated 3 or
// 4 times, so that x"Z" expands to "ZZZZ". When a width is given, the
// expanded string is padded or truncated to that width: sign-extended for
// signed literals, zero-extended otherwise. Truncation only drops characters
// equal to the padding character.
//
func ParseBitString(in string) (BitString, error) {
	if !strings.ContainsRune(in, '"') {
		s := strings.ReplaceAll(strings.TrimSpace(in), "_", "")
		if s == "" {
			return BitString{}, parseError(in, 0, "empty literal")
		}
		return BitString{Symbols: s}, nil
	}

	l := NewLexer(in)
	i := l.Lex()
	width := -1
	if i.Type == Int {
		width = i.Value.(int)
		if width <= 0 {
			return BitString{}, parseError(in, i.Pos, "invalid literal width")
		}
		i = l.Lex()
	}
	base := "b"
	if i.Type == Ident {
		base = strings.ToLower(i.Value.(string))
		i = l.Lex()
	}
	if i.Type != String {
		return BitString{}, parseError(in, i.Pos, "expected string literal, got "+i.String())
	}
	body, pos := strings.ReplaceAll(i.Value.(string), "_", ""), i.Pos
	if i = l.Lex(); i.Type != EOF {
		return BitString{}, parseError(in, i.Pos, "unexpected "+i.String())
	}

	var bs BitString
	switch base {
	case "s", "u":
		return bs, parseError(in, pos, "missing base specifier after "+base)
	}
	if len(base) == 2 {
		switch base[0] {
		case 's':
			bs.Signed = true
		case 'u':
		default:
			return bs, parseError(in, pos, "invalid base specifier "+base)
		}
		base = base[1:]
	}

	var err error
	switch base {
	case "b":
		bs.Symbols = body
	case "o":
		bs.Symbols, err = expandDigits(body, 3)
	case "x":
		bs.Symbols, err = expandDigits(body, 4)
	case "d":
		if bs.Signed {
			return bs, parseError(in, pos, "signed decimal literal")
		}
		bs.Symbols, err = decimalBits(body)
	default:
		return bs, parseError(in, pos, "invalid base specifier "+base)
	}
	if err != nil {
		return bs, parseError(in, pos, err.Error())
	}
	if bs.Symbols == "" && width < 0 {
		return bs, parseError(in, pos, "empty literal")
	}
	if width >= 0 {
		bs.Symbols, err = fit(bs.Symbols, width, bs.Signed)
		if err != nil {
			return bs, parseError(in, pos, err.Error())
		}
	}
	return bs, nil
}

func expandDigits(s string, bits int) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * bits)
	for _, r := range s {
		var d int
		switch {
		case '0' <= r && r <= '9':
			d = int(r - '0')
		case 'a' <= r && r <= 'f':
			d = int(r-'a') + 10
		case 'A' <= r && r <= 'F':
			d = int(r-'A') + 10
		default:
			b.WriteString(strings.Repeat(string(r), bits))
			continue
		}
		if d >= 1<<uint(bits) {
			return "", errors.New("digit " + string(r) + " out of base")
		}
		for i := bits - 1; i >= 0; i-- {
			b.WriteByte('0' + byte(d>>uint(i)&1))
		}
	}
	return b.String(), nil
}

func decimalBits(s string) (string, error) {
	var v big.Int
	if _, ok := v.SetString(s, 10); !ok || v.Sign() < 0 {
		return "", errors.New("invalid decimal digits " + s)
	}
	return v.Text(2), nil
}

func fit(s string, width int, signed bool) (string, error) {
	pad := byte('0')
	if signed && len(s) > 0 {
		pad = s[0]
	}
	if len(s) < width {
		return strings.Repeat(string(pad), width-len(s)) + s, nil
	}
	drop := s[:len(s)-width]
	s = s[len(s)-width:]
	if signed && len(s) > 0 {
		pad = s[0]
	}
	for i := 0; i < len(drop); i++ {
		if drop[i] != pad {
			return "", errors.New("literal does not fit in " + strconv.Itoa(width) + " elements")
		}
	}
	return s, nil
}
