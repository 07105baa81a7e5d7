// Package selector draws category-balanced quizzes from the question pool.
package selector

import (
	"hmate/internal/model"
	"hmate/internal/pool"
)

// DefaultCount is the quiz size used when a caller does not ask for one
const DefaultCount = 30

// Selector builds randomized quizzes from an immutable pool. It holds no
// per-call state and is safe for concurrent use as long as its Source is.
type Selector struct {
	pool      *pool.Pool
	src       Source
	maxCopies int
}

// Option configures a Selector
type Option func(*Selector)

// WithSource replaces the default randomness source
func WithSource(src Source) Option {
	return func(s *Selector) {
		if src != nil {
			s.src = src
		}
	}
}

// WithMaxCopies caps how many times a single template may appear in its
// category's share of one quiz. n <= 0 removes the cap, in which case an
// understocked category repeats templates until its quota is met.
func WithMaxCopies(n int) Option {
	return func(s *Selector) {
		s.maxCopies = n
	}
}

// New creates a selector over p
func New(p *pool.Pool, opts ...Option) *Selector {
	s := &Selector{
		pool: p,
		src:  globalSource{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quota returns how many questions category c targets in a quiz of count
// questions: count*percent/100 rounded up. Quotas of all categories may
// sum to more than count; Select trims the excess after shuffling.
func Quota(c model.Category, count int) int {
	if count <= 0 {
		return 0
	}
	return (count*c.Percent() + 99) / 100
}

// Select returns at most count questions for tier, shuffled and numbered
// 1..N. Categories without templates contribute nothing; a tier without
// any content yields an empty quiz.
func (s *Selector) Select(tier model.AudienceTier, count int) []model.SelectedQuestion {
	if count <= 0 {
		return []model.SelectedQuestion{}
	}

	selected := s.draw(tier, count)
	s.src.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	if len(selected) > count {
		selected = selected[:count]
	}
	for i := range selected {
		selected[i].ID = i + 1
	}
	return selected
}

// draw fills every category's quota in declaration order, before the
// global shuffle and truncation.
func (s *Selector) draw(tier model.AudienceTier, count int) []model.SelectedQuestion {
	selected := []model.SelectedQuestion{}
	for _, cat := range model.Categories {
		templates := s.pool.TemplatesFor(tier, cat)
		selected = append(selected, s.fill(templates, cat, Quota(cat, count))...)
	}
	return selected
}

func (s *Selector) fill(templates []model.QuestionTemplate, cat model.Category, quota int) []model.SelectedQuestion {
	n := len(templates)
	if n == 0 || quota <= 0 {
		return nil
	}

	picked := make([]model.SelectedQuestion, 0, quota)
	copies := make([]int, n)

	perm := s.src.Perm(n)
	for _, idx := range perm[:min(quota, n)] {
		picked = append(picked, model.NewSelectedQuestion(templates[idx], cat))
		copies[idx]++
	}

	for len(picked) < quota {
		idx, ok := s.repeatIndex(copies)
		if !ok {
			break
		}
		picked = append(picked, model.NewSelectedQuestion(templates[idx], cat))
		copies[idx]++
	}
	return picked
}

// repeatIndex picks a template to repeat, honouring the copy cap
func (s *Selector) repeatIndex(copies []int) (int, bool) {
	if s.maxCopies <= 0 {
		return s.src.IntN(len(copies)), true
	}
	eligible := make([]int, 0, len(copies))
	for idx, c := range copies {
		if c < s.maxCopies {
			eligible = append(eligible, idx)
		}
	}
	if len(eligible) == 0 {
		return 0, false
	}
	return eligible[s.src.IntN(len(eligible))], true
}
