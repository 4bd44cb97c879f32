// SPDX-License-Identifier: MIT
// Package vdstring: sentinel error set.
// Sentinels follow the "vdstring: ..." prefix convention and are matched
// via errors.Is. ParseError carries the failure detail and unwraps to
// ErrInvalidString so callers can match either way (errors.Is for the
// class, errors.As for position and offending rune).

package vdstring

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidString is returned by Parse when the input contains a
	// character outside the permitted set. The whole input is rejected;
	// no partial string is ever produced.
	ErrInvalidString = errors.New("vdstring: string contains disallowed character")

	// ErrIndexOutOfRange is returned by At for indexes outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vdstring: index out of range")
)

// ParseError describes the first disallowed character of a rejected input.
type ParseError struct {
	// Pos is the zero-based rune position of the offending character.
	Pos int

	// Rune is the offending character itself.
	Rune rune
}

// Error renders the position and offender alongside the sentinel text.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrInvalidString, e.Rune, e.Pos)
}

// Unwrap makes errors.Is(err, ErrInvalidString) hold for every ParseError.
func (e *ParseError) Unwrap() error {
	return ErrInvalidString
}
