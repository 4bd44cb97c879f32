// Package vds is a small library for visibly distinguishable strings —
// codes built from a curated alphabet that drops glyphs people confuse
// at a glance ('I', 'L', 'O', '0', '1').
//
// 🚀 What does vds give you?
//
//	• alphabet/ — the fixed 31-symbol set and the single membership predicate
//	• vdchar/   — a validated single character; invalid values are unrepresentable
//	• vdstring/ — a validated, immutable string with all-or-nothing parsing
//	• generate/ — constrained random codes via bounded rejection sampling
//
// ✨ Why choose vds?
//
//   - Validation at construction — no instance can hold a disallowed character
//   - Errors as values — sentinel errors, errors.Is everywhere, no panics
//   - Deterministic by design — randomness is an injected capability;
//     the same seed reproduces the same code on every platform
//   - Pure Go value types — immutable, safe for concurrent readers
//
// Typical use cases: voucher and invite codes, ticket references, device
// labels — anything a human reads aloud, types back in, or checks against
// a printout.
//
// A command-line front end lives in cmd/vdsgen; it is a thin caller of
// these packages, not part of the library contract.
package vds
