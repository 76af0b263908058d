package cards

import "math/rand"

// Shuffle returns a copy of the given deck reordered by a seeded permutation.
// The permutation depends only on the seed and the deck length, so two decks
// of equal length shuffled with the same seed stay aligned by index. The
// math/rand sequence for a fixed seed is stable across process runs.
func Shuffle(in []Card, seed int64) []Card {
	out := make([]Card, len(in))
	copy(out, in)

	rng := rand.New(rand.NewSource(seed)) // #nosec G404 no cryptographic use, determinism is required
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// Truncate caps the deck at n cards. A non-positive n yields an empty deck,
// an n larger than the deck returns the deck unchanged.
func Truncate(in []Card, n int) []Card {
	if n <= 0 {
		return []Card{}
	}
	if n >= len(in) {
		return in
	}

	return in[:n]
}
