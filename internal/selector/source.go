package selector

import (
	"math/rand/v2"
	"sync"
)

// Source is the randomness the selector draws from. *rand.Rand satisfies it,
// but is not safe for concurrent use; wrap shared generators with NewLockedSource.
type Source interface {
	IntN(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

// globalSource uses the math/rand/v2 top-level generator, which is
// randomly seeded and safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int                     { return rand.IntN(n) }
func (globalSource) Perm(n int) []int                   { return rand.Perm(n) }
func (globalSource) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedSource guards r with a mutex so one generator can serve concurrent callers
func NewLockedSource(r *rand.Rand) Source {
	return &lockedSource{r: r}
}

// NewSeededSource returns a deterministic, concurrency-safe PCG source
func NewSeededSource(seed uint64) Source {
	return NewLockedSource(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *lockedSource) Perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Perm(n)
}

func (s *lockedSource) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}
