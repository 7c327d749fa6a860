// Package randutil derives reproducible PCG generators from int64 seeds.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a generator seeded from seed. Both PCG words are mixed from the
// one value so nearby seeds give unrelated sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the generator for one stream of a seeded simulation.
// The same (seed, stream) pair always yields the same sequence.
func Derive(seed int64, stream int) *rand.Rand {
	return New(int64(mix(uint64(seed)) ^ mix(uint64(stream)*goldenRatio64+1)))
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
