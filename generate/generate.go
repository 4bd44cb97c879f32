// SPDX-License-Identifier: MIT
// Package generate - the constrained sampling loop.
//
// Design:
//   - Deterministic, side-effect free apart from consuming entropy from
//     the injected Rand.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - Candidate characters are produced through vdchar.FromIndex, so the
//     alphabet package remains the single validation authority.
//   - Rejection sampling is bounded: statistical likelihood alone is never
//     trusted for termination.

package generate

import (
	"fmt"

	"github.com/ianwillis98/vds/alphabet"
	"github.com/ianwillis98/vds/vdchar"
	"github.com/ianwillis98/vds/vdstring"
)

// noPrevious marks "no character chosen yet" for the adjacency check.
const noPrevious = -1

// Generate produces a VDString matching opts, drawing entropy from rng.
//
// Contract:
//   - opts.Length < 0 or opts.RetryFactor < 0 ⇒ ErrBadOptions.
//   - opts.NoRepeats with opts.Length > alphabet.Size() ⇒
//     ErrConfigUnsatisfiable, before any draw (zero entropy consumed).
//   - opts.Length == 0 ⇒ the empty VDString, rng untouched (may be nil).
//   - rng == nil when entropy is needed ⇒ ErrNilRand.
//   - Per position, at most RetryFactor × alphabet.Size() draws; if none
//     is acceptable ⇒ ErrGenerationExhausted. No partial result.
//
// Concurrency: safe for concurrent calls with distinct Rand instances;
// all mutable state is call-local.
//
// Complexity: O(Length × RetryFactor × Size) worst case,
// O(Length) expected for satisfiable configurations.
func Generate(rng Rand, opts Options) (vdstring.VDString, error) {
	var err error
	if err = validateOptions(opts); err != nil {
		return vdstring.VDString{}, err
	}

	size := alphabet.Size()

	// Pigeonhole bound: provably impossible, refuse before sampling.
	if opts.NoRepeats && opts.Length > size {
		return vdstring.VDString{}, fmt.Errorf("%w: requested %d, available %d",
			ErrConfigUnsatisfiable, opts.Length, size)
	}

	// Zero-length output is a valid empty code; no entropy needed.
	if opts.Length == 0 {
		return vdstring.VDString{}, nil
	}

	if rng == nil {
		return vdstring.VDString{}, ErrNilRand
	}

	// Resolve the per-position draw budget (RetryFactor 0 ⇒ default).
	factor := opts.RetryFactor
	if factor == 0 {
		factor = DefaultRetryFactor
	}
	budget := factor * size

	var (
		chars = make([]vdchar.Char, 0, opts.Length)
		used  []bool
		prev  = noPrevious
	)
	if opts.NoRepeats {
		used = make([]bool, size)
	}

	var (
		pos       int
		attempt   int
		candidate int
		accepted  bool
		ch        vdchar.Char
	)
	for pos = 0; pos < opts.Length; pos++ {
		accepted = false
		for attempt = 0; attempt < budget; attempt++ {
			candidate = rng.Intn(size)

			if opts.NoRepeats && used[candidate] {
				continue
			}
			if opts.NoAdjacentRepeats && candidate == prev {
				continue
			}

			if ch, err = vdchar.FromIndex(candidate); err != nil {
				// Unreachable for a conforming Rand; surfaced rather than
				// swallowed in case Intn violates its [0, n) contract.
				return vdstring.VDString{}, err
			}
			chars = append(chars, ch)
			if opts.NoRepeats {
				used[candidate] = true
			}
			prev = candidate
			accepted = true

			break
		}

		if !accepted {
			return vdstring.VDString{}, fmt.Errorf("%w: position %d after %d draws",
				ErrGenerationExhausted, pos, budget)
		}
	}

	// Every element was validated on acceptance; wrapping cannot fail.
	return vdstring.FromChars(chars), nil
}

// validateOptions checks internal consistency of Options without touching
// the alphabet or the randomness source.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative lengths are undefined.
	if opts.Length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrBadOptions, opts.Length)
	}
	// A negative retry factor would disable the termination bound ⇒ reject.
	// Zero is "unset" and resolves to DefaultRetryFactor.
	if opts.RetryFactor < 0 {
		return fmt.Errorf("%w: negative retry factor %d", ErrBadOptions, opts.RetryFactor)
	}

	return nil
}
