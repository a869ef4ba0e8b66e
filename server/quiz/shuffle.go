package quiz

// seedFromDate hashes a day string into the shuffle seed. The same date
// always yields the same seed, which is what makes a day's quiz order
// stable across page reloads.
func seedFromDate(date string) uint32 {
	var h uint32
	for i := 0; i < len(date); i++ {
		h = h*31 + uint32(date[i])
	}
	return h
}

// shuffleWithSeed returns a seeded Fisher-Yates permutation of items. The
// generator is a bare multiplicative step; quiz pools hold at most a few
// hundred questions, so distribution quality is irrelevant next to the
// determinism requirement.
func shuffleWithSeed[T any](items []T, seed uint32) []T {
	out := make([]T, len(items))
	copy(out, items)
	h := seed
	for i := len(out) - 1; i > 0; i-- {
		h = h * 16807
		j := int(h % uint32(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
