// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtypes

import (
	"github.com/pkg/errors"
)

// Error classes. Every error returned by this package wraps exactly one of
// these; use errors.Cause (or errors.Is) to test the class:
//
//	if errors.Cause(err) == hwtypes.ErrIndex {
//		// out of range
//	}
//
var (
	// ErrValue reports a malformed literal, a symbol outside the target value
	// set, a length mismatch or an invalid narrowing conversion.
	ErrValue = errors.New("invalid value")
	// ErrIndex reports an index or slice outside the declared Range.
	ErrIndex = errors.New("index out of range")
	// ErrOverflow reports a value that does not fit in the requested width or
	// binary point position.
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero reports a division or remainder by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

func valueErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrValue, format, args...)
}

func indexErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrIndex, format, args...)
}

func overflowErrorf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOverflow, format, args...)
}

func divByZero(op string) error {
	return errors.Wrap(ErrDivisionByZero, op)
}

// must panics if err is not nil.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
