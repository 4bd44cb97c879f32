// SPDX-License-Identifier: MIT
// Package generate: sentinel error set, randomness contract and Options.
// Sentinels follow the "generate: ..." prefix convention and are matched
// via errors.Is. Context (requested vs available, failing position) is
// added by wrapping with %w; the sentinel still matches.

package generate

import "errors"

var (
	// ErrBadOptions is returned when Options are internally inconsistent:
	// a negative Length or a negative RetryFactor.
	ErrBadOptions = errors.New("generate: invalid options")

	// ErrNilRand is returned when generation needs entropy but no
	// randomness source was supplied.
	ErrNilRand = errors.New("generate: nil randomness source")

	// ErrConfigUnsatisfiable is returned before any sampling when the
	// constraints are provably impossible: NoRepeats with Length greater
	// than the alphabet size (pigeonhole bound).
	ErrConfigUnsatisfiable = errors.New("generate: configuration unsatisfiable")

	// ErrGenerationExhausted is returned when the per-position retry
	// budget runs out without an acceptable candidate.
	ErrGenerationExhausted = errors.New("generate: retry budget exhausted")
)

// Rand is the injected randomness capability: a source of uniformly
// distributed integers in [0, n). *math/rand.Rand satisfies it.
//
// The generator never reads raw bytes from it and never reseeds it.
// A Rand must not be shared across concurrent Generate calls unless the
// implementation itself guarantees thread safety.
type Rand interface {
	Intn(n int) int
}

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultLength is the output length when none is requested.
	DefaultLength = 6

	// DefaultRetryFactor scales the per-position retry budget:
	// budget = RetryFactor × alphabet.Size() draws.
	DefaultRetryFactor = 8
)

// Options describes the requested shape of the output. It is fully
// specified before generation begins and never mutated during a call.
//
// Fields:
//   - Length            — target character count; 0 yields the empty string.
//   - NoRepeats         — no character appears more than once anywhere.
//   - NoAdjacentRepeats — no two consecutive characters are equal.
//   - RetryFactor       — per-position budget scale; 0 resolves to
//     DefaultRetryFactor, negative values are rejected with ErrBadOptions.
type Options struct {
	Length            int
	NoRepeats         bool
	NoAdjacentRepeats bool
	RetryFactor       int
}

// DefaultOptions returns the documented defaults: Length 6, both
// constraints off, DefaultRetryFactor.
func DefaultOptions() Options {
	return Options{
		Length:      DefaultLength,
		RetryFactor: DefaultRetryFactor,
	}
}
