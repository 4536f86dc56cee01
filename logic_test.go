package hwtypes_test

import (
	"testing"
	"testing/quick"

	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLogic = []hw.StdLogic{hw.U, hw.X, hw.L0, hw.L1, hw.Z, hw.W, hw.L, hw.H, hw.DC}

// stdLogic maps an arbitrary byte to a valid StdLogic, for use with quick.
func stdLogic(b uint8) hw.StdLogic { return allLogic[int(b)%len(allLogic)] }

func TestLogic_zero(t *testing.T) {
	var (
		s hw.StdLogic
		x hw.X01Z
		b hw.Bit
	)
	assert.Equal(t, "0", s.String())
	assert.Equal(t, "0", x.String())
	assert.Equal(t, "0", b.String())
	assert.Equal(t, hw.Bit0, b)
}

func TestParseStdLogic(t *testing.T) {
	for _, l := range allLogic {
		c := rune(l.Char())
		p, err := hw.ParseStdLogic(c)
		require.NoError(t, err)
		assert.Equal(t, l, p, "symbol %c", c)
	}
	for _, c := range "uxzwlh" {
		_, err := hw.ParseStdLogic(c)
		assert.NoError(t, err, "lower case %c", c)
	}
	_, err := hw.ParseStdLogic('q')
	assert.Equal(t, hw.ErrValue, errors.Cause(err))

	_, err = hw.ParseBit('X')
	assert.Equal(t, hw.ErrValue, errors.Cause(err))
	x, err := hw.ParseX01Z('z')
	require.NoError(t, err)
	assert.Equal(t, hw.X01Z(hw.Z), x)
	_, err = hw.ParseX01Z('H')
	assert.Error(t, err)
}

func TestLogic_laws(t *testing.T) {
	commute := func(a, b uint8) bool {
		x, y := stdLogic(a), stdLogic(b)
		return x.And(y) == y.And(x) && x.Or(y) == y.Or(x) && x.Xor(y) == y.Xor(x)
	}
	deMorgan := func(a, b uint8) bool {
		x, y := stdLogic(a), stdLogic(b)
		return x.Nand(y) == x.Not().Or(y.Not()) && x.Nor(y) == x.Not().And(y.Not())
	}
	// and with 1, or with 0 and double negation all strip strength
	strength := func(a uint8) bool {
		x := stdLogic(a)
		s := x.Not().Not()
		return x.And(hw.L1) == s && x.Or(hw.L0) == s && x.Xor(hw.L0) == s
	}
	for name, f := range map[string]interface{}{"commute": commute, "de Morgan": deMorgan, "strength": strength} {
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	td := []struct {
		a, b hw.StdLogic
		and  hw.StdLogic
		or   hw.StdLogic
		xor  hw.StdLogic
	}{
		{hw.L0, hw.U, hw.L0, hw.U, hw.U},
		{hw.L1, hw.U, hw.U, hw.L1, hw.U},
		{hw.L0, hw.X, hw.L0, hw.X, hw.X},
		{hw.L1, hw.Z, hw.X, hw.L1, hw.X},
		{hw.H, hw.L, hw.L0, hw.L1, hw.L1},
		{hw.W, hw.L1, hw.X, hw.L1, hw.X},
		{hw.DC, hw.L0, hw.L0, hw.X, hw.X},
	}
	for _, d := range td {
		assert.Equal(t, d.and, d.a.And(d.b), "%v and %v", d.a, d.b)
		assert.Equal(t, d.or, d.a.Or(d.b), "%v or %v", d.a, d.b)
		assert.Equal(t, d.xor, d.a.Xor(d.b), "%v xor %v", d.a, d.b)
	}
	assert.Equal(t, hw.U, hw.U.Not())
	assert.Equal(t, hw.X, hw.Z.Not())
	assert.Equal(t, hw.L0, hw.H.Not())
}

func TestLogic_subsets(t *testing.T) {
	bits := []hw.Bit{hw.Bit0, hw.Bit1}
	for _, a := range bits {
		for _, b := range bits {
			assert.Equal(t, hw.LogicOf(a.Bool() && b.Bool()), a.And(b))
			assert.Equal(t, hw.LogicOf(a.Bool() || b.Bool()), a.Or(b))
			assert.Equal(t, hw.LogicOf(a.Bool() != b.Bool()), a.Xor(b))
			assert.Equal(t, hw.LogicOf(a.Bool() == b.Bool()), a.Xnor(b))
		}
	}
	x := hw.X01Z(hw.Z)
	assert.Equal(t, hw.X01Z(hw.X), x.And(hw.X01Z(hw.L1)))
	assert.Equal(t, hw.X01Z(hw.L0), x.And(hw.X01Z(hw.L0)))
	assert.Equal(t, hw.X01Z(hw.X), x.Not())
}

func TestLogic_promotion(t *testing.T) {
	r := hw.And(hw.Bit1, hw.X01Z(hw.X))
	assert.IsType(t, hw.X01Z(0), r)
	assert.Equal(t, hw.X, r.Std())

	r = hw.Or(hw.Bit0, hw.H)
	assert.IsType(t, hw.StdLogic(0), r)
	assert.Equal(t, hw.L1, r)

	r = hw.Xor(hw.Bit1, hw.Bit1)
	assert.IsType(t, hw.Bit(0), r)
	assert.Equal(t, hw.Bit0, r)

	r = hw.Not(hw.X01Z(hw.L0))
	assert.IsType(t, hw.X01Z(0), r)

	// widening is a plain conversion
	assert.Equal(t, hw.L1, hw.StdLogic(hw.Bit1))
	assert.Equal(t, hw.Z, hw.X01Z(hw.Z).Std())
	assert.True(t, hw.StdLogicSet.Contains(hw.DC))
	assert.False(t, hw.X01ZSet.Contains(hw.U))
	assert.Equal(t, hw.StdLogicSet, hw.BitSet.Widen(hw.StdLogicSet))
}

func TestNarrow(t *testing.T) {
	td := []struct {
		in   hw.StdLogic
		mode hw.NarrowMode
		bit  hw.Bit
		bok  bool
		x01z hw.X01Z
		xok  bool
	}{
		{hw.L0, hw.Strict, hw.Bit0, true, hw.X01Z(hw.L0), true},
		{hw.L1, hw.Strict, hw.Bit1, true, hw.X01Z(hw.L1), true},
		{hw.H, hw.Strict, 0, false, 0, false},
		{hw.H, hw.Relaxed, hw.Bit1, true, hw.X01Z(hw.L1), true},
		{hw.L, hw.Relaxed, hw.Bit0, true, hw.X01Z(hw.L0), true},
		{hw.Z, hw.Strict, 0, false, hw.X01Z(hw.Z), true},
		{hw.U, hw.Strict, 0, false, 0, false},
		{hw.U, hw.Relaxed, 0, false, hw.X01Z(hw.X), true},
		{hw.W, hw.Relaxed, 0, false, hw.X01Z(hw.X), true},
		{hw.DC, hw.Relaxed, 0, false, hw.X01Z(hw.X), true},
		{hw.X, hw.Relaxed, 0, false, hw.X01Z(hw.X), true},
	}
	for _, d := range td {
		b, err := hw.ToBit(d.in, d.mode)
		if d.bok {
			require.NoError(t, err)
			assert.Equal(t, d.bit, b)
		} else {
			assert.Equal(t, hw.ErrValue, errors.Cause(err), "ToBit(%v)", d.in)
		}
		x, err := hw.ToX01Z(d.in, d.mode)
		if d.xok {
			require.NoError(t, err)
			assert.Equal(t, d.x01z, x)
		} else {
			assert.Equal(t, hw.ErrValue, errors.Cause(err), "ToX01Z(%v)", d.in)
		}
	}
}

func TestStdLogic_Bool(t *testing.T) {
	for _, l := range allLogic {
		v, err := l.Bool()
		switch l {
		case hw.L0, hw.L:
			assert.NoError(t, err)
			assert.False(t, v)
		case hw.L1, hw.H:
			assert.NoError(t, err)
			assert.True(t, v)
		default:
			assert.True(t, l.IsMeta())
			assert.Error(t, err)
		}
	}
}
