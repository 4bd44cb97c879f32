// Package vdstring provides VDString, a validated, immutable string made
// entirely of visibly distinguishable characters.
//
// 🚀 What is a VDString?
//
//	A sequence of vdchar.Char values with a cached plain-text projection.
//	Every construction path validates: Parse checks each character of its
//	input against the alphabet and fails atomically on the first offender
//	(no partial or truncated result), while FromChars accepts only
//	already-validated Chars, so the type cannot hold an invalid character.
//
// ✨ Key behaviors:
//
//   - Parse("") succeeds: the empty string is a valid zero-length code.
//     This is a deliberate, tested contract, not an accident.
//   - String() is a zero-copy projection of the validated characters.
//   - Round-trip law: Parse(x.String()) equals x for every valid x.
//   - Equality is structural; Compare is lexicographic by code point,
//     matching plain-text ordering of the same alphabet.
//   - Instances are immutable value types, safe for concurrent readers.
//
// Failed parses report the rune position and the offending character via
// ParseError, which unwraps to the ErrInvalidString sentinel.
package vdstring
