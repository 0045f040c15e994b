// Package random implements the xoshiro256** pseudo-random number generator
// by David Blackman and Sebastiano Vigna (https://prng.di.unimi.it/).
//
// A Random produced from a known seed yields a fully deterministic sequence,
// which makes workloads and tests reproducible. Ranged draws are half-open
// [min, max) and use rejection sampling, so results are uniform over the
// range with no modulo bias. When min >= max every draw returns min.
//
// Fast and of decent statistical quality, but NOT cryptographically secure.
// Use crypto/rand where unpredictability matters.
//
// A Random is not safe for concurrent use.
package random
