package chaos

import "math/rand/v2"

// Source draws vertex indices. IntN must return a value in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(n int) int

// IntN calls f(n).
func (f SourceFunc) IntN(n int) int { return f(n) }

// Default returns the process-wide generator from math/rand/v2. It is seeded
// from the operating system at startup, so two runs never produce the same
// point cloud.
func Default() Source {
	return SourceFunc(rand.IntN)
}

// Seeded returns a reproducible PCG source. Runs only use it when a seed is
// requested explicitly.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence replays indices in order and then repeats from the start.
// It is meant for tests that need an exact draw sequence.
func Sequence(indices ...int) Source {
	return &sequence{indices: indices}
}

type sequence struct {
	indices []int
	next    int
}

func (s *sequence) IntN(n int) int {
	if len(s.indices) == 0 {
		return 0
	}
	i := s.indices[s.next%len(s.indices)]
	s.next++
	return i
}
