package pool

import (
	"fmt"

	"hmate/internal/model"
)

// Catalogue is the raw tier -> category -> templates mapping a Pool is built from
type Catalogue map[model.AudienceTier]map[model.Category][]model.QuestionTemplate

// Pool is the immutable question catalogue. It is populated once and only
// read afterwards, so concurrent readers need no locking.
type Pool struct {
	templates Catalogue
}

// New validates the catalogue and takes a deep copy of it
func New(c Catalogue) (*Pool, error) {
	templates := make(Catalogue, len(c))
	for tier, cats := range c {
		byCat := make(map[model.Category][]model.QuestionTemplate, len(cats))
		for cat, list := range cats {
			if !cat.IsValid() {
				return nil, fmt.Errorf("tier %s: unknown category %q", tier, cat)
			}
			copied := make([]model.QuestionTemplate, 0, len(list))
			for i, t := range list {
				if err := t.Validate(); err != nil {
					return nil, fmt.Errorf("tier %s, category %s, template %d: %w", tier, cat, i, err)
				}
				copied = append(copied, t.Clone())
			}
			byCat[cat] = copied
		}
		templates[tier] = byCat
	}
	return &Pool{templates: templates}, nil
}

// MustNew is New for static data; it panics on an invalid catalogue
func MustNew(c Catalogue) *Pool {
	p, err := New(c)
	if err != nil {
		panic(err)
	}
	return p
}

// TemplatesFor returns the templates authored for a tier and category.
// Unknown combinations yield an empty slice. The result is a copy.
func (p *Pool) TemplatesFor(tier model.AudienceTier, category model.Category) []model.QuestionTemplate {
	list := p.templates[tier][category]
	out := make([]model.QuestionTemplate, len(list))
	for i, t := range list {
		out[i] = t.Clone()
	}
	return out
}

// Count returns how many templates exist for a tier and category
func (p *Pool) Count(tier model.AudienceTier, category model.Category) int {
	return len(p.templates[tier][category])
}

// Tiers returns the tiers that have any authored content, in model.Tiers order
func (p *Pool) Tiers() []model.AudienceTier {
	var out []model.AudienceTier
	for _, tier := range model.Tiers {
		for _, list := range p.templates[tier] {
			if len(list) > 0 {
				out = append(out, tier)
				break
			}
		}
	}
	return out
}

// TierStats summarizes one tier's catalogue
type TierStats struct {
	Tier       model.AudienceTier     `json:"tier"`
	Total      int                    `json:"total"`
	Categories map[model.Category]int `json:"categories"`
}

// Stats reports template counts for every known tier
func (p *Pool) Stats() []TierStats {
	stats := make([]TierStats, 0, len(model.Tiers))
	for _, tier := range model.Tiers {
		ts := TierStats{Tier: tier, Categories: make(map[model.Category]int, len(model.Categories))}
		for _, cat := range model.Categories {
			n := p.Count(tier, cat)
			ts.Categories[cat] = n
			ts.Total += n
		}
		stats = append(stats, ts)
	}
	return stats
}

// Catalogue returns a deep copy of the pool's contents
func (p *Pool) Catalogue() Catalogue {
	out := make(Catalogue, len(p.templates))
	for tier, cats := range p.templates {
		byCat := make(map[model.Category][]model.QuestionTemplate, len(cats))
		for cat := range cats {
			byCat[cat] = p.TemplatesFor(tier, cat)
		}
		out[tier] = byCat
	}
	return out
}
