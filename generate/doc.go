// Package generate builds random vdstring.VDStrings under structural
// constraints, using bounded rejection sampling.
//
// 🚀 How it works
//
//	Each position draws a uniform index in [0, alphabet.Size()) from an
//	injected randomness source, maps it to a character, and accepts it
//	unless a constraint rejects it:
//		• NoRepeats          — the character already appears anywhere
//		• NoAdjacentRepeats  — the character equals its left neighbor
//	Rejected draws are retried with fresh entropy, up to a per-position
//	budget of RetryFactor × alphabet.Size() draws. An exhausted budget
//	fails with ErrGenerationExhausted — the loop can never spin forever,
//	no matter how adversarial the randomness source is.
//
// ✨ Guarantees:
//
//   - NoRepeats with Length > alphabet.Size() fails up front with
//     ErrConfigUnsatisfiable (pigeonhole), consuming zero entropy.
//   - Length 0 succeeds with the empty VDString, consuming zero entropy.
//   - On success the output has exactly the requested length and honors
//     every enabled constraint; on failure no partial string is returned.
//   - Same seed + same options ⇒ identical output (see NewRand).
//
// ⚙️ Usage:
//
//	rng := generate.NewRand(42)
//	code, err := generate.Generate(rng, generate.NewOptions(
//	    generate.WithLength(8),
//	    generate.WithNoRepeats(),
//	    generate.WithNoAdjacentRepeats(),
//	))
//
// Concurrency:
//
//	Generate keeps only call-local state and may be invoked from many
//	goroutines at once, provided each call has its own Rand —
//	*math/rand.Rand is not goroutine-safe. Use DeriveRand to fan a base
//	seed out into independent per-worker streams.
package generate
