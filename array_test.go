package hwtypes_test

import (
	"testing"
	"testing/quick"

	hw "github.com/db47h/hwtypes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_access(t *testing.T) {
	a, err := hw.NewArray([]string{"a", "b", "c", "d"}, hw.Descending(4))
	require.NoError(t, err)

	v, err := a.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	v, _ = a.Get(0)
	assert.Equal(t, "d", v)

	_, err = a.Get(4)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))
	assert.Equal(t, hw.ErrIndex, errors.Cause(a.Set(-1, "x")))

	require.NoError(t, a.Set(2, "B"))
	assert.Equal(t, []string{"a", "B", "c", "d"}, a.Values())

	require.NoError(t, a.SetSlice(1, 0, []string{"C", "D"}))
	assert.Equal(t, []string{"a", "B", "C", "D"}, a.Values())
	assert.Equal(t, hw.ErrValue, errors.Cause(a.SetSlice(1, 0, []string{"x"})))
	assert.Equal(t, hw.ErrIndex, errors.Cause(a.SetSlice(0, 1, []string{"x", "y"})))

	var idx []int
	for i, v := range a.All() {
		idx = append(idx, i)
		if v == "C" {
			break
		}
	}
	assert.Equal(t, []int{3, 2, 1}, idx)

	_, err = hw.NewArray([]int{1, 2}, hw.Ascending(3))
	assert.Equal(t, hw.ErrValue, errors.Cause(err))
	assert.Equal(t, "[a, B, C, D](3 downto 0)", a.String())
}

func TestArray_zero(t *testing.T) {
	var a hw.Array[int]
	assert.Equal(t, 0, a.Len())
	_, err := a.Get(0)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))
	assert.Equal(t, hw.ErrIndex, errors.Cause(a.Set(0, 1)))
	assert.Equal(t, hw.ErrIndex, errors.Cause(a.SetSlice(0, 0, []int{1})))
	_, err = a.Slice(0, 0)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))

	var f hw.Frozen[int]
	_, err = f.With(0, 1)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))
	_, err = f.Slice(0, 0)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))
}

func TestArray_Slice(t *testing.T) {
	a, _ := hw.NewArray([]int{7, 6, 5, 4, 3, 2, 1, 0}, hw.Descending(8))
	s, err := a.Slice(5, 2)
	require.NoError(t, err)
	assert.Equal(t, hw.MustRange(5, hw.Downto, 2), s.Range())
	assert.Equal(t, []int{5, 4, 3, 2}, s.Values())

	// slices of mutable arrays are copies
	require.NoError(t, s.Set(5, 50))
	v, _ := a.Get(5)
	assert.Equal(t, 5, v)
	require.NoError(t, a.Set(4, 40))
	v, _ = s.Get(4)
	assert.Equal(t, 4, v)

	_, err = a.Slice(2, 5)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))

	// slicing the whole range gives the array back
	f := func(values []int8) bool {
		if len(values) == 0 {
			return true
		}
		a, _ := hw.NewArray(values, hw.Descending(len(values)))
		s, err := a.Slice(len(values)-1, 0)
		return err == nil && hw.Equal[int8](a, s) && s.Range() == a.Range()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestArray_Concat(t *testing.T) {
	f := func(x, y []uint16) bool {
		if len(x) == 0 || len(y) == 0 {
			return true
		}
		a, b := hw.ArrayOf(x...), hw.ArrayOf(y...)
		c := a.Concat(b)
		if c.Len() != len(x)+len(y) || c.Range() != hw.Ascending(len(x)+len(y)) {
			return false
		}
		l, _ := c.Slice(0, len(x)-1)
		r, _ := c.Slice(len(x), c.Len()-1)
		return hw.Equal[uint16](l, a) && hw.Equal[uint16](r, b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestFrozen(t *testing.T) {
	a := hw.ArrayOf(1, 2, 3, 4)
	f := a.Freeze()
	require.NoError(t, a.Set(0, 10))
	v, _ := f.Get(0)
	assert.Equal(t, 1, v, "Freeze must copy")

	g, err := f.With(1, 20)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, f.Values())
	assert.Equal(t, []int{1, 20, 3, 4}, g.Values())

	g, err = f.WithSlice(2, 3, []int{30, 40})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 30, 40}, g.Values())
	_, err = f.With(4, 0)
	assert.Equal(t, hw.ErrIndex, errors.Cause(err))

	s, err := f.Slice(1, 2)
	require.NoError(t, err)
	assert.Equal(t, hw.MustRange(1, hw.To, 2), s.Range())
	assert.Equal(t, []int{2, 3}, s.Values())

	// With on a slice never leaks into its parent
	s2, err := s.With(2, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, s2.Values())
	assert.Equal(t, []int{1, 2, 3, 4}, f.Values())

	c := f.Concat(hw.ArrayOf(5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, c.Values())

	m := f.Thaw()
	require.NoError(t, m.Set(3, 0))
	assert.Equal(t, []int{1, 2, 3, 4}, f.Values())

	nf, err := hw.NewFrozen([]int{1}, hw.Ascending(1))
	require.NoError(t, err)
	assert.True(t, hw.Equal[int](nf, hw.ArrayOf(1)))
	assert.False(t, hw.Equal[int](nf, hw.ArrayOf(1, 2)))
}
