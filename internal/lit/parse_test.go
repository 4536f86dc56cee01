package lit_test

import (
	"testing"

	"github.com/db47h/hwtypes/internal/lit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBitString(t *testing.T) {
	td := []struct {
		in     string
		out    string
		signed bool
		err    bool
	}{
		{in: "01XZ", out: "01XZ"},
		{in: " 1010_0101 ", out: "10100101"},
		{in: `"0101"`, out: "0101"},
		{in: `b"01_01"`, out: "0101"},
		{in: `x"F0"`, out: "11110000"},
		{in: `X"a"`, out: "1010"},
		{in: `o"17"`, out: "001111"},
		{in: `d"42"`, out: "101010"},
		{in: `8d"42"`, out: "00101010"},
		{in: `8ux"F"`, out: "00001111"},
		{in: `12sx"F"`, out: "111111111111", signed: true},
		{in: `4sx"FE"`, out: "1110", signed: true},
		{in: `4ux"0F"`, out: "1111"},
		{in: `x"-Z"`, out: "----ZZZZ"},
		{in: `4ux"F0"`, err: true},
		{in: `sd"1"`, err: true},
		{in: `o"9"`, err: true},
		{in: `o"8"`, err: true},
		{in: `q"1"`, err: true},
		{in: `s"1"`, err: true},
		{in: `x"F`, err: true},
		{in: `x"F" 1`, err: true},
		{in: `0x"F"`, err: true},
		{in: "", err: true},
		{in: `""`, err: true},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			bs, err := lit.ParseBitString(d.in)
			if d.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.out, bs.Symbols)
			assert.Equal(t, d.signed, bs.Signed)
		})
	}
}

func TestParseRange(t *testing.T) {
	td := []struct {
		in  string
		out lit.RangeSpec
		err bool
	}{
		{in: "7 downto 0", out: lit.RangeSpec{Left: 7, Dir: lit.DirDownto, Right: 0}},
		{in: "(0 to 3)", out: lit.RangeSpec{Left: 0, Dir: lit.DirTo, Right: 3}},
		{in: "0 TO 3", out: lit.RangeSpec{Left: 0, Dir: lit.DirTo, Right: 3}},
		{in: "-2 to 1", out: lit.RangeSpec{Left: -2, Dir: lit.DirTo, Right: 1}},
		{in: "[7..0]", out: lit.RangeSpec{Left: 7, Dir: lit.DirInfer, Right: 0}},
		{in: "[1_0..0]", out: lit.RangeSpec{Left: 10, Dir: lit.DirInfer, Right: 0}},
		{in: "7 .. 0", err: true},
		{in: "[7 to 0]", err: true},
		{in: "(7 downto 0", err: true},
		{in: "7 downto", err: true},
		{in: "7 upto 0", err: true},
		{in: "7 to 0 junk", err: true},
		{in: "", err: true},
		{in: "99999999999999999999 downto 0", err: true},
		{in: "0 to 99999999999999999999", err: true},
		{in: "[-99999999999999999999..0]", err: true},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			r, err := lit.ParseRange(d.in)
			if d.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, d.out, r)
		})
	}
}

func TestLexer(t *testing.T) {
	l := lit.NewLexer(`12sx"F_0" [3..0]`)
	var types []lit.Type
	for i := l.Lex(); i.Type != lit.EOF; i = l.Lex() {
		types = append(types, i.Type)
	}
	assert.Equal(t, []lit.Type{lit.Int, lit.Ident, lit.String, lit.BracketOpen, lit.Int, lit.Range, lit.Int, lit.BracketClose}, types)

	l = lit.NewLexer("a ?")
	assert.Equal(t, lit.Ident, l.Lex().Type)
	i := l.Lex()
	assert.Equal(t, lit.Raw, i.Type)
	assert.Equal(t, 2, i.Pos)
	assert.Equal(t, lit.EOF, l.Lex().Type)

	l = lit.NewLexer("-1_000 99999999999999999999")
	i = l.Lex()
	assert.Equal(t, lit.Int, i.Type)
	assert.Equal(t, -1000, i.Value)
	i = l.Lex()
	assert.Equal(t, lit.Raw, i.Type)
	assert.Equal(t, "99999999999999999999", i.Value)
}
