/*
Package hwtypes provides bit-accurate hardware value types modeled after VHDL's
std_logic_1164, numeric_std and fixed_pkg packages.

This includes the nine valued StdLogic and its X01Z and Bit subsets, arrays
addressed by VHDL style ranges ("7 downto 0", "0 to 3"), unsigned and two's
complement integers of arbitrary width with wrapping arithmetic, and unsigned
and signed fixed-point numbers whose operators compute result bounds the way
fixed_pkg does.

All scalar and numeric types are immutable values and safe for concurrent use.
Array is the only mutable type: slicing an Array returns a copy, whereas a
Frozen array is copy-on-write and its slices share storage with the original.

Errors returned by this package wrap one of ErrValue, ErrIndex, ErrOverflow or
ErrDivisionByZero. Use errors.Is (or errors.Cause from github.com/pkg/errors)
to test for them.

Sub-package hwlib provides gate level reference models (adders, multiplexers,
n-way gates) built on these types.

*/
package hwtypes
