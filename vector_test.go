package hwtypes_test

import (
	"testing"

	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	td := []struct {
		in  string
		out string
		err bool
	}{
		{in: "01XZ_UWLH-", out: "01XZUWLH-"},
		{in: `x"A5"`, out: "10100101"},
		{in: `6sx"E"`, out: "111110"},
		{in: `x"-"`, out: "----"},
		{in: "01?", err: true},
		{in: `x"5`, err: true},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			v, err := hw.ParseVector[hw.StdLogic](d.in)
			if d.err {
				assert.Equal(t, hw.ErrValue, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.out, v.String())
			assert.Equal(t, hw.Ascending(len(d.out)), v.Range())
		})
	}

	_, err := hw.ParseVector[hw.Bit]("01Z")
	assert.Equal(t, hw.ErrValue, errors.Cause(err))
	_, err = hw.ParseVector[hw.X01Z]("01H")
	assert.Equal(t, hw.ErrValue, errors.Cause(err))

	v, err := hw.ParseVectorIn[hw.Bit](`x"3"`, hw.Descending(4))
	require.NoError(t, err)
	b, _ := v.Get(0)
	assert.Equal(t, hw.Bit1, b)
	b, _ = v.Get(3)
	assert.Equal(t, hw.Bit0, b)
	_, err = hw.ParseVectorIn[hw.Bit]("0011", hw.Descending(3))
	assert.Equal(t, hw.ErrValue, errors.Cause(err))

	assert.Panics(t, func() { hw.MustParseVector[hw.Bit]("2") })
}

func TestVector_ops(t *testing.T) {
	a := hw.MustParseVector[hw.StdLogic]("01XZUWLH-")
	b := hw.MustParseVector[hw.StdLogic]("111111111")

	and, err := a.And(b)
	require.NoError(t, err)
	assert.Equal(t, "01XXUX01X", and.String())
	or, err := a.Or(b)
	require.NoError(t, err)
	assert.Equal(t, "111111111", or.String())
	xor, err := a.Xor(b)
	require.NoError(t, err)
	assert.Equal(t, "10XXUX10X", xor.String())
	assert.Equal(t, "10XXUX10X", a.Not().String())

	nand, _ := a.Nand(b)
	assert.Equal(t, a.Not().String(), nand.String())
	nor, _ := a.Nor(b)
	assert.Equal(t, "000000000", nor.String())
	xnor, _ := a.Xnor(b)
	assert.Equal(t, and.String(), xnor.String())

	_, err = a.And(hw.MustParseVector[hw.StdLogic]("1"))
	assert.Equal(t, hw.ErrValue, errors.Cause(err))

	// the result keeps the left operand's range
	x, _ := hw.ParseVectorIn[hw.Bit]("1100", hw.Descending(4))
	y := hw.MustParseVector[hw.Bit]("1010")
	z, err := x.Xor(y)
	require.NoError(t, err)
	assert.Equal(t, hw.Descending(4), z.Range())
	assert.Equal(t, "0110", z.String())
}

func TestVector_reduce(t *testing.T) {
	td := []struct {
		in            string
		and, or, xor hw.StdLogic
	}{
		{"1111", hw.L1, hw.L1, hw.L0},
		{"0100", hw.L0, hw.L1, hw.L1},
		{"1H1", hw.L1, hw.L1, hw.L1},
		{"1X1", hw.X, hw.L1, hw.X},
		{"0", hw.L0, hw.L0, hw.L0},
		{"Z", hw.X, hw.X, hw.X},
	}
	for _, d := range td {
		v := hw.MustParseVector[hw.StdLogic](d.in)
		assert.Equal(t, d.and, v.ReduceAnd(), "and %s", d.in)
		assert.Equal(t, d.or, v.ReduceOr(), "or %s", d.in)
		assert.Equal(t, d.xor, v.ReduceXor(), "xor %s", d.in)
	}
}

func TestVector_slice(t *testing.T) {
	v, _ := hw.ParseVectorIn[hw.X01Z]("10ZX", hw.Descending(4))
	s, err := v.Slice(2, 1)
	require.NoError(t, err)
	assert.Equal(t, "0Z", s.String())
	assert.Equal(t, hw.MustRange(2, hw.Downto, 1), s.Range())
	require.NoError(t, s.Set(2, hw.X01Z(hw.L1)))
	assert.Equal(t, "10ZX", v.String())

	c := v.Concat(s)
	assert.Equal(t, "10ZX1Z", c.String())
	assert.Equal(t, hw.Ascending(6), c.Range())

	w, err := v.WithRange(hw.MustRange(11, hw.Downto, 8))
	require.NoError(t, err)
	e, _ := w.Get(11)
	assert.Equal(t, hw.X01Z(hw.L1), e)
	_, err = v.WithRange(hw.Ascending(3))
	assert.Error(t, err)

	cl := v.Clone()
	require.NoError(t, cl.Set(0, hw.X01Z(hw.L0)))
	assert.Equal(t, "10ZX", v.String())
	assert.Equal(t, "10Z0", cl.String())
}

func TestConvertVector(t *testing.T) {
	s, _ := hw.ParseVectorIn[hw.StdLogic]("01LH", hw.Descending(4))

	_, err := hw.ConvertVector[hw.Bit](s, hw.Strict)
	assert.Equal(t, hw.ErrValue, errors.Cause(err))

	b, err := hw.ConvertVector[hw.Bit](s, hw.Relaxed)
	require.NoError(t, err)
	assert.Equal(t, "0101", b.String())
	assert.Equal(t, s.Range(), b.Range())

	x, err := hw.ConvertVector[hw.X01Z](hw.MustParseVector[hw.StdLogic]("U-Z"), hw.Relaxed)
	require.NoError(t, err)
	assert.Equal(t, "XXZ", x.String())

	// widening never fails
	w, err := hw.ConvertVector[hw.StdLogic](b, hw.Strict)
	require.NoError(t, err)
	assert.True(t, hw.EqualVectors(w, b))
	assert.False(t, hw.EqualVectors(w, s))
	assert.Equal(t, "0101", b.Std().String())
}

func TestVector_meta(t *testing.T) {
	assert.False(t, hw.MustParseVector[hw.StdLogic]("01LH").HasMeta())
	assert.True(t, hw.MustParseVector[hw.StdLogic]("01-1").HasMeta())
	assert.True(t, hw.MustParseVector[hw.X01Z]("Z").HasMeta())

	v := hw.VectorOf(hw.Bit1, hw.Bit0)
	assert.Equal(t, `BitVector("10", 0 to 1)`, v.GoString())
}
