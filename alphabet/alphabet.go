// SPDX-License-Identifier: MIT
// Package alphabet: the single source of truth for permitted characters.
//
// Design:
//   - symbols is the fixed, ordered table; index order is the sampling order.
//   - position is a dense ASCII reverse-index for O(1) membership and lookup.
//   - No mutation API exists; both tables are package-private.

package alphabet

import "errors"

// ErrIndexOutOfRange is returned by At for indexes outside [0, Size()).
var ErrIndexOutOfRange = errors.New("alphabet: index out of range")

// symbols is the ordered set of permitted characters.
// Uppercase Latin letters and digits, minus the visually confusable
// glyphs 'I', 'L', 'O', '0' and '1'.
var symbols = []rune("ABCDEFGHJKMNPQRSTUVWXYZ23456789")

// asciiLimit bounds the reverse-index table; every symbol is ASCII.
const asciiLimit = 128

// notMember marks a rune absent from the set in the reverse index.
const notMember = -1

// position maps an ASCII code point to its index in symbols, or notMember.
var position [asciiLimit]int

func init() {
	var i int
	for i = 0; i < asciiLimit; i++ {
		position[i] = notMember
	}
	for i = range symbols {
		position[symbols[i]] = i
	}
}

// Contains reports whether r is a member of the alphabet.
//
// Complexity: O(1).
func Contains(r rune) bool {
	return r >= 0 && r < asciiLimit && position[r] != notMember
}

// Size returns the number of symbols in the alphabet.
//
// Complexity: O(1).
func Size() int {
	return len(symbols)
}

// At returns the i-th symbol of the alphabet in its fixed order.
// Indexes outside [0, Size()) return ErrIndexOutOfRange.
//
// At is the mapping used for uniform sampling: a uniform index in
// [0, Size()) yields a uniform symbol.
//
// Complexity: O(1).
func At(i int) (rune, error) {
	if i < 0 || i >= len(symbols) {
		return 0, ErrIndexOutOfRange
	}

	return symbols[i], nil
}

// IndexOf returns the alphabet position of r and true when r is a member,
// or 0 and false otherwise.
//
// Complexity: O(1).
func IndexOf(r rune) (int, bool) {
	if !Contains(r) {
		return 0, false
	}

	return position[r], true
}

// Runes returns a copy of the alphabet in its fixed order.
// The copy keeps the underlying table immutable.
//
// Complexity: O(Size()) time and space.
func Runes() []rune {
	out := make([]rune, len(symbols))
	copy(out, symbols)

	return out
}
