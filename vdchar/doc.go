// Package vdchar provides Char, a single validated character drawn from
// the vds alphabet.
//
// A Char can only come into existence through a validating constructor
// (New or FromIndex); an invalid Char is unrepresentable. Internally a
// Char stores its alphabet position rather than the code point itself —
// a compact representation that also makes the generator's bookkeeping
// (used-sets, adjacency checks) a plain integer comparison.
//
// Guarantees:
//
//   - New(r) succeeds if and only if alphabet.Contains(r) holds.
//   - Char is a comparable value type: == is structural equality.
//   - Compare orders by the underlying code point, consistent with
//     plain-text lexicographic ordering of the same alphabet.
//   - Instances are immutable and safe to share across goroutines.
//
// Encoding adapters (text and YAML) delegate decoding to New, so an
// invalid encoded character fails exactly as direct construction would.
package vdchar
