// Package randutil builds reproducible PCG streams for simulations.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a PCG generator whose whole sequence is fixed by seed. Both
// PCG words are expanded from the one seed so nearby seeds do not correlate.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns the seed for the n-th independent stream of a parent seed.
// Workers and bucket simulations each take their own stream so results only
// depend on the parent seed and the stream number.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) ^ mix(uint64(n)+1)*goldenRatio64))
}

// Entropy returns a seed drawn from the runtime's random source, for callers
// that did not ask for reproducible output.
func Entropy() int64 {
	return rand.Int64()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
