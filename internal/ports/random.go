package ports

import "math/rand/v2"

// Random draws uniform integers in [0, n).
type Random interface {
	IntN(n int) int
}

// SystemRandom uses the top-level math/rand/v2 source, which is safe for
// concurrent use.
type SystemRandom struct{}

func (SystemRandom) IntN(n int) int {
	return rand.IntN(n)
}
