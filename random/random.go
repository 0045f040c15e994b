package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/bits"

	"github.com/wippyai/runtime-kit/errors"
)

const opNew = errors.Op("random.new")

// Random is a xoshiro256** generator. Create instances with New or WithSeed;
// the zero value yields an all-zero state and must not be used.
type Random struct {
	seed  uint64
	state [4]uint64
}

// New returns a generator seeded from the operating system entropy source.
func New() (*Random, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return nil, errors.ReadFailed(opNew, err)
	}
	return WithSeed(binary.LittleEndian.Uint64(buf[:])), nil
}

// WithSeed returns a generator with a fixed seed. Equal seeds produce equal
// sequences.
func WithSeed(seed uint64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// Seed returns the seed the generator was last initialized with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// SetSeed reinitializes the generator state from seed. The 256-bit state is
// expanded from the seed with SplitMix64, as the xoshiro authors recommend.
func (r *Random) SetSeed(seed uint64) {
	r.seed = seed
	s := seed
	for i := range r.state {
		s += 0x9E3779B97F4A7C15
		z := s
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		r.state[i] = z ^ (z >> 31)
	}
}

// next advances the state and returns the next 64-bit word.
func (r *Random) next() uint64 {
	result := bits.RotateLeft64(r.state[1]*5, 7) * 9
	t := r.state[1] << 17
	r.state[2] ^= r.state[0]
	r.state[3] ^= r.state[1]
	r.state[1] ^= r.state[2]
	r.state[0] ^= r.state[3]
	r.state[2] ^= t
	r.state[3] = bits.RotateLeft64(r.state[3], 45)
	return result
}

// Int32 returns a pseudorandom value in [min, max), or min when min >= max.
func (r *Random) Int32(min, max int32) int32 {
	if min >= max {
		return min
	}
	return int32(uint32(min) + r.sample32(uint32(max)-uint32(min)))
}

// Uint32 returns a pseudorandom value in [min, max), or min when min >= max.
func (r *Random) Uint32(min, max uint32) uint32 {
	if min >= max {
		return min
	}
	return min + r.sample32(max-min)
}

// Int64 returns a pseudorandom value in [min, max), or min when min >= max.
func (r *Random) Int64(min, max int64) int64 {
	if min >= max {
		return min
	}
	return int64(uint64(min) + r.sample64(uint64(max)-uint64(min)))
}

// Uint64 returns a pseudorandom value in [min, max), or min when min >= max.
func (r *Random) Uint64(min, max uint64) uint64 {
	if min >= max {
		return min
	}
	return min + r.sample64(max-min)
}

// Float32 returns a pseudorandom value in [min, max), or min when min >= max.
func (r *Random) Float32(min, max float32) float32 {
	if min >= max {
		return min
	}
	// Top 24 bits scaled into [0, 1), per the xoshiro authors' remarks.
	scale := float32(r.next()>>40) * (1.0 / float32(1<<24))
	return min + scale*(max-min)
}

// Float64 returns a pseudorandom value in [min, max), or min when min >= max.
func (r *Random) Float64(min, max float64) float64 {
	if min >= max {
		return min
	}
	// Top 53 bits scaled into [0, 1).
	scale := float64(r.next()>>11) * (1.0 / float64(1<<53))
	return min + scale*(max-min)
}

// sample32 draws a uniform value in [0, rng) by rejection sampling the top
// 32 bits of the generator word, avoiding modulo bias.
func (r *Random) sample32(rng uint32) uint32 {
	threshold := -rng % rng
	for {
		result := uint32(r.next() >> 32)
		if result >= threshold {
			return result % rng
		}
	}
}

// sample64 draws a uniform value in [0, rng) by rejection sampling.
func (r *Random) sample64(rng uint64) uint64 {
	threshold := -rng % rng
	for {
		result := r.next()
		if result >= threshold {
			return result % rng
		}
	}
}
