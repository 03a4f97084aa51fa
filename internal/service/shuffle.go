package service

import "math/rand"

// intn draws from rng, or from the global source when rng is nil.
func intn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}
	return rand.Intn(n)
}

// shuffle permutes s in place with Fisher-Yates.
func shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(rng, i+1)
		s[i], s[j] = s[j], s[i]
	}
}

// sample returns n elements of in drawn without replacement, in random order.
// in is not modified.
func sample[T any](rng *rand.Rand, in []T, n int) []T {
	if n <= 0 {
		return nil
	}
	out := append([]T(nil), in...)
	shuffle(rng, out)
	if n < len(out) {
		out = out[:n]
	}
	return out
}
