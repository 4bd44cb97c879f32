// SPDX-License-Identifier: MIT
// Package generate - RNG utilities.
//
// This file centralizes deterministic random construction for callers of
// Generate. The core itself only consumes the Rand interface; nothing
// here is required — any uniform source works — but these helpers keep
// seeding policy in one place.
//
// Goals:
//   - Determinism: same seed ⇒ identical codes across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Use DeriveRand to create independent streams for parallel
//     batch generation.

package generate

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand satisfying Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Independent substreams from one base seed (e.g., batch generation of
//     many codes) must not be correlated.
//   - A SplitMix64-style avalanche mix eliminates those correlations.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They provide
//     strong bit diffusion; small input changes produce large, well-distributed
//     output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic RNG stream based on a base
// RNG and a stream identifier. If base==nil, defaultRNGSeed is used as the
// parent. Otherwise, base.Int63() is consumed once to decorrelate consecutive
// derivations, then mixed with the stream via deriveSeed.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-worker/per-code RNGs.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		// Int63() advances base state; this is intentional to avoid identical
		// children when the same stream id is reused by mistake.
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
