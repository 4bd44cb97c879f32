// SPDX-License-Identifier: MIT
// Package vdstring: the validated string type.
//
// Design:
//   - VDString owns a private []vdchar.Char plus a cached text projection;
//     both are fixed at construction, accessors hand out copies or views.
//   - All validation routes through vdchar.New (and therefore through the
//     alphabet package); Parse performs no character checks of its own.
//   - No logging, no panics on user input; only sentinel errors.

package vdstring

import (
	"strings"

	"github.com/ianwillis98/vds/vdchar"
)

// VDString is an immutable sequence of validated characters.
//
// The zero value is the empty string and is valid. VDString contains a
// slice, so use Equal rather than == for comparisons.
type VDString struct {
	chars []vdchar.Char
	text  string
}

// Parse validates every character of s in order and wraps the result.
//
// On the first disallowed character it returns a *ParseError (unwrapping
// to ErrInvalidString) identifying the rune position and offender; the
// input as a whole is rejected and no partial result is produced.
// The empty string parses to the valid empty VDString.
//
// Complexity: O(len(s)) time and space.
func Parse(s string) (VDString, error) {
	if s == "" {
		return VDString{}, nil
	}

	chars := make([]vdchar.Char, 0, len(s))

	var pos int
	for _, r := range s {
		c, err := vdchar.New(r)
		if err != nil {
			return VDString{}, &ParseError{Pos: pos, Rune: r}
		}
		chars = append(chars, c)
		pos++
	}

	return VDString{chars: chars, text: s}, nil
}

// FromChars wraps an already-validated character sequence.
//
// Construction cannot fail: every vdchar.Char is valid by its own
// constructor contract. The input slice is copied, so the new VDString
// owns its sequence exclusively and later mutation of chars by the
// caller has no effect.
//
// Complexity: O(len(chars)) time and space.
func FromChars(chars []vdchar.Char) VDString {
	if len(chars) == 0 {
		return VDString{}
	}

	owned := make([]vdchar.Char, len(chars))
	copy(owned, chars)

	var b strings.Builder
	b.Grow(len(owned))
	for _, c := range owned {
		b.WriteRune(c.Rune())
	}

	return VDString{chars: owned, text: b.String()}
}

// String returns the canonical text projection: the characters
// concatenated in order, no delimiters, no escaping. The projection is
// cached at construction, so each call is zero-copy.
func (v VDString) String() string {
	return v.text
}

// Len returns the number of characters.
func (v VDString) Len() int {
	return len(v.chars)
}

// IsEmpty reports whether the string holds no characters.
func (v VDString) IsEmpty() bool {
	return len(v.chars) == 0
}

// At returns the i-th character. Indexes outside [0, Len()) return
// ErrIndexOutOfRange.
//
// Complexity: O(1).
func (v VDString) At(i int) (vdchar.Char, error) {
	if i < 0 || i >= len(v.chars) {
		return vdchar.Char{}, ErrIndexOutOfRange
	}

	return v.chars[i], nil
}

// Chars returns a copy of the validated character sequence.
// The copy keeps the VDString immutable.
//
// Complexity: O(Len()) time and space.
func (v VDString) Chars() []vdchar.Char {
	if len(v.chars) == 0 {
		return nil
	}

	out := make([]vdchar.Char, len(v.chars))
	copy(out, v.chars)

	return out
}

// Each walks the characters in order, calling fn with each position and
// character until fn returns false or the sequence ends. The walk is
// finite, restartable, and never mutates the VDString.
//
// Complexity: O(Len()).
func (v VDString) Each(fn func(i int, c vdchar.Char) bool) {
	for i, c := range v.chars {
		if !fn(i, c) {
			return
		}
	}
}

// Equal reports structural equality: same length, same characters in the
// same positions.
//
// Complexity: O(Len()).
func (v VDString) Equal(o VDString) bool {
	return v.text == o.text
}

// Compare orders two VDStrings lexicographically by underlying code
// points: -1 when v < o, 0 when equal, +1 when v > o. The ordering is
// identical to strings.Compare of the text projections.
//
// Complexity: O(min(Len())).
func (v VDString) Compare(o VDString) int {
	return strings.Compare(v.text, o.text)
}

// Concat returns the concatenation v + o. Both inputs are valid by
// construction, so the composition is valid without re-validation.
//
// Complexity: O(v.Len() + o.Len()) time and space.
func (v VDString) Concat(o VDString) VDString {
	if o.IsEmpty() {
		return v
	}
	if v.IsEmpty() {
		return o
	}

	joined := make([]vdchar.Char, 0, len(v.chars)+len(o.chars))
	joined = append(joined, v.chars...)
	joined = append(joined, o.chars...)

	return VDString{chars: joined, text: v.text + o.text}
}
