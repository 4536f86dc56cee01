package hwtypes_test

import (
	"testing"

	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRange(t *testing.T) {
	r, err := hw.NewRange(7, hw.Downto, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Len())
	assert.Equal(t, 0, r.Low())
	assert.Equal(t, 7, r.High())
	assert.Equal(t, "7 downto 0", r.String())
	assert.Equal(t, hw.Descending(8), r)

	r = hw.MustRange(-2, hw.To, 1)
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, -2, r.Left())
	assert.Equal(t, hw.To, r.Dir())

	_, err = hw.NewRange(0, hw.Downto, 3)
	assert.Equal(t, hw.ErrValue, errors.Cause(err))
	_, err = hw.NewRange(3, hw.To, 0)
	assert.Equal(t, hw.ErrValue, errors.Cause(err))
	_, err = hw.NewRange(0, 0, 0)
	assert.Error(t, err)
	assert.Panics(t, func() { hw.Ascending(0) })

	assert.Equal(t, hw.To, hw.Span(3, 3).Dir())
	assert.Equal(t, hw.Downto, hw.Span(3, 1).Dir())
	assert.Equal(t, hw.Span(1, 3), hw.Span(3, 1).Reverse())

	var zero hw.Range
	assert.Equal(t, "0 to 0", zero.String())
	assert.Equal(t, 1, zero.Len())
}

func TestRange_index(t *testing.T) {
	for _, r := range []hw.Range{hw.Descending(8), hw.Ascending(8), hw.MustRange(12, hw.Downto, 5), hw.MustRange(-3, hw.To, 4)} {
		for k := 0; k < r.Len(); k++ {
			i := r.At(k)
			require.True(t, r.Contains(i))
			o, err := r.Offset(i)
			require.NoError(t, err)
			assert.Equal(t, k, o, "%v: offset of %d", r, i)
		}
		_, err := r.Offset(r.High() + 1)
		assert.Equal(t, hw.ErrIndex, errors.Cause(err))
		assert.Panics(t, func() { r.At(r.Len()) })
	}
}

func TestRange_Sub(t *testing.T) {
	r := hw.Descending(8)
	s, err := r.Sub(5, 2)
	require.NoError(t, err)
	assert.Equal(t, hw.MustRange(5, hw.Downto, 2), s)

	_, err = r.Sub(2, 5)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))
	_, err = r.Sub(8, 2)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))

	s, err = hw.Ascending(4).Sub(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestParseRange(t *testing.T) {
	td := []struct {
		in  string
		out hw.Range
		err bool
	}{
		{in: "7 downto 0", out: hw.Descending(8)},
		{in: "(0 to 3)", out: hw.Ascending(4)},
		{in: "[7..0]", out: hw.Descending(8)},
		{in: "[0..7]", out: hw.Ascending(8)},
		{in: "[2..2]", out: hw.MustRange(2, hw.To, 2)},
		{in: "0 downto 7", err: true},
		{in: "7 to", err: true},
		{in: "seven downto 0", err: true},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			r, err := hw.ParseRange(d.in)
			if d.err {
				assert.Equal(t, hw.ErrValue, errors.Cause(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.out, r)
		})
	}
}
