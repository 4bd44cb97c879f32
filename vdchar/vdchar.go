// SPDX-License-Identifier: MIT
// Package vdchar: the validated single-character type.
//
// Design:
//   - Char wraps an alphabet index (uint8 is ample for a 31-symbol set).
//   - Both construction paths validate through the alphabet package;
//     no ad hoc range checks exist here.
//   - No logging, no panics on user input; only sentinel errors.

package vdchar

import (
	"errors"

	"github.com/ianwillis98/vds/alphabet"
)

// ErrNotInAlphabet is returned when a code point outside the permitted
// set is passed to New (directly or through a decoding adapter).
var ErrNotInAlphabet = errors.New("vdchar: character not in alphabet")

// Char is a single visibly distinguishable character.
//
// The zero value is the first alphabet symbol ('A'); it is always valid.
// Char is comparable, so == and map keys work structurally.
type Char struct {
	idx uint8
}

// New validates r against the alphabet and wraps it.
// Returns ErrNotInAlphabet when r is not a member — including lowercase
// letters and the intentionally excluded glyphs.
//
// Complexity: O(1).
func New(r rune) (Char, error) {
	i, ok := alphabet.IndexOf(r)
	if !ok {
		return Char{}, ErrNotInAlphabet
	}

	return Char{idx: uint8(i)}, nil
}

// FromIndex wraps the i-th alphabet symbol. Indexes outside
// [0, alphabet.Size()) return alphabet.ErrIndexOutOfRange.
//
// This is the generator's mapping from a uniform draw to a Char.
//
// Complexity: O(1).
func FromIndex(i int) (Char, error) {
	if _, err := alphabet.At(i); err != nil {
		return Char{}, err
	}

	return Char{idx: uint8(i)}, nil
}

// Rune returns the underlying code point.
//
// Complexity: O(1).
func (c Char) Rune() rune {
	r, _ := alphabet.At(int(c.idx)) // index is valid by construction
	return r
}

// Index returns the character's position in the alphabet's fixed order.
//
// Complexity: O(1).
func (c Char) Index() int {
	return int(c.idx)
}

// Compare orders two Chars by underlying code point:
// -1 when c < o, 0 when equal, +1 when c > o.
//
// Alphabet order is not rune order across the letter/digit boundary,
// so Compare deliberately looks at runes, not indexes, to stay
// consistent with plain-text ordering.
//
// Complexity: O(1).
func (c Char) Compare(o Char) int {
	cr, or := c.Rune(), o.Rune()
	switch {
	case cr < or:
		return -1
	case cr > or:
		return 1
	default:
		return 0
	}
}

// String returns the canonical one-character text form.
func (c Char) String() string {
	return string(c.Rune())
}
