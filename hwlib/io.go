// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	hw "github.com/db47h/hwtypes"
)

// Int64 returns the bits as an int64. The rightmost bit is the lsb. Bits past
// the 64th are ignored.
//
func Int64(bits hw.Sequence[hw.Bit]) int64 {
	var out int64
	v := bits.Values()
	for i := 0; i < len(v) && i < 64; i++ {
		if v[len(v)-1-i] == hw.Bit1 {
			out |= 1 << uint(i)
		}
	}
	return out
}

// SetInt64 sets the bits to the given int64 value, sign extending v if there
// are more than 64 bits.
//
func SetInt64(bits *hw.BitVector, v int64) {
	r := bits.Range()
	n := r.Len()
	for k := 0; k < n; k++ {
		bit := n - 1 - k
		if bit > 63 {
			bit = 63
		}
		// cannot fail: r.At(k) is in range
		_ = bits.Set(r.At(k), hw.LogicOf(v&(1<<uint(bit)) != 0))
	}
}

// Bus returns a new BitVector of n bits, n-1 downto 0, holding v.
//
func Bus(n int, v int64) *hw.BitVector {
	b, _ := hw.NewVector(make([]hw.Bit, n), hw.Descending(n))
	SetInt64(b, v)
	return b
}
