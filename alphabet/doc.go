// Package alphabet defines the fixed, ordered set of visibly
// distinguishable characters permitted throughout vds.
//
// 🚀 What is the alphabet?
//
//	A curated table of 31 symbols — uppercase Latin letters and digits,
//	with the glyphs that are easy to confuse at a glance removed:
//		• 'O' and '0' (circle shapes)
//		• 'I', 'L' and '1' (vertical strokes)
//
// Every "is this character allowed" decision in the module routes through
// Contains; no other package performs ad hoc range checks. Adding or
// removing an excluded glyph is therefore a one-place change.
//
// Guarantees:
//
//   - The set is immutable for the lifetime of the process.
//   - Contains, Size, At and IndexOf are side-effect free and O(1).
//   - At is the uniform-sampling hook: indexes [0, Size()) map 1:1 onto
//     the symbols in their fixed declaration order.
//
// See vdchar for the validated single-character type and vdstring for the
// validated string type built on top of this set.
package alphabet
