package hwlib_test

import (
	"math/big"
	"testing"

	"github.com/db47h/hwtypes/hwtest"

	hw "github.com/db47h/hwtypes"
	hl "github.com/db47h/hwtypes/hwlib"
)

func TestHalfAdder(t *testing.T) {
	testGate(t, "HalfAdder.s", func(a, b hw.Bit) hw.Bit { s, _ := hl.HalfAdder(a, b); return s }, []bool{false, true, true, false})
	testGate(t, "HalfAdder.c", func(a, b hw.Bit) hw.Bit { _, c := hl.HalfAdder(a, b); return c }, []bool{false, false, false, true})
}

func TestFullAdder(t *testing.T) {
	for i := 0; i < 8; i++ {
		a, b, cin := bits[i>>2], bits[i>>1&1], bits[i&1]
		s, cout := hl.FullAdder(a, b, cin)
		sum := i>>2 + i>>1&1 + i&1
		if s != hw.LogicOf(sum&1 != 0) || cout != hw.LogicOf(sum > 1) {
			t.Errorf("FullAdder(%v, %v, %v) = %d, got s=%v, c=%v", a, b, cin, sum, s, cout)
		}
	}
}

// the ripple carry adder must agree with Unsigned arithmetic
func TestAdderN(t *testing.T) {
	add := func(x, y hw.Unsigned) (hw.Unsigned, error) {
		out, _, err := hl.AdderN(x.Bits(), y.Bits(), hw.Bit0)
		if err != nil {
			return hw.Unsigned{}, err
		}
		return hw.UnsignedFromBits(out), nil
	}
	sub := func(x, y hw.Unsigned) (hw.Unsigned, error) {
		out, _, err := hl.SubtractorN(x.Bits(), y.Bits())
		if err != nil {
			return hw.Unsigned{}, err
		}
		return hw.UnsignedFromBits(out), nil
	}
	for _, w := range []int{1, 4, 6, 16} {
		hwtest.CompareUnsigned(t, "AdderN", w, add, (*big.Int).Add)
		hwtest.CompareUnsigned(t, "SubtractorN", w, sub, (*big.Int).Sub)
	}
}

func TestAdderCarry(t *testing.T) {
	_, c, err := hl.AdderN(hl.Bus(4, 0xf), hl.Bus(4, 1), hw.Bit0)
	if err != nil {
		t.Fatal(err)
	}
	if c != hw.Bit1 {
		t.Fatalf("expected carry out")
	}
	if _, _, err = hl.AdderN(hl.Bus(4, 0), hl.Bus(3, 0), hw.Bit0); err == nil {
		t.Fatal("expected error for bus width mismatch")
	}
}

// an unknown input bit taints every bit from its position up
func TestAdderMetavalues(t *testing.T) {
	a := hw.MustParseVector[hw.StdLogic]("00X1")
	b := hw.MustParseVector[hw.StdLogic]("0001")
	out, c, err := hl.AdderN(a, b, hw.L0)
	if err != nil {
		t.Fatal(err)
	}
	if s := out.String(); s != "0XX0" {
		t.Fatalf("Expected 0XX0, got %s", s)
	}
	if c != hw.L0 {
		t.Fatalf("Expected carry 0, got %v", c)
	}
}

func TestIncrementer(t *testing.T) {
	for i := int64(0); i < 16; i++ {
		if v := hl.Int64(hl.Incrementer(hl.Bus(4, i))); v != (i+1)&0xf {
			t.Errorf("Incrementer(%d) = %d, got %d", i, (i+1)&0xf, v)
		}
	}
}
