package service

import (
	"strings"

	"go.uber.org/zap"

	"hmate/internal/model"
)

// ValidateQuestions drops generated questions that are unusable (no text,
// not exactly four options, or an option without value or text) and
// renumbers the survivors 1..N.
func ValidateQuestions(questions []model.SelectedQuestion, log *zap.Logger) []model.SelectedQuestion {
	valid := make([]model.SelectedQuestion, 0, len(questions))
	for i, q := range questions {
		if reason := invalidReason(q); reason != "" {
			log.Warn("dropping generated question", zap.Int("index", i+1), zap.String("reason", reason))
			continue
		}
		valid = append(valid, q)
	}
	for i := range valid {
		valid[i].ID = i + 1
	}
	log.Info("validated questions", zap.Int("valid", len(valid)), zap.Int("total", len(questions)))
	return valid
}

func invalidReason(q model.SelectedQuestion) string {
	if strings.TrimSpace(q.Question) == "" {
		return "invalid question"
	}
	if len(q.Options) != model.OptionsPerQuestion {
		return "invalid options count"
	}
	for _, o := range q.Options {
		if strings.TrimSpace(o.Text) == "" {
			return "empty option text"
		}
		if strings.TrimSpace(o.Value) == "" {
			return "invalid option value"
		}
	}
	return ""
}

// Sector keywords, checked in order against a lower-cased career title
var sectorKeywords = []struct {
	sector   string
	keywords []string
}{
	{"tech", []string{"engineer", "developer", "data", "cyber", "software"}},
	{"creative", []string{"designer", "creative", "artist"}},
	{"medical", []string{"dokter", "nurse", "psikolog"}},
	{"business", []string{"business", "manager", "entrepreneur"}},
	{"education", []string{"guru", "teacher", "dosen"}},
	{"law", []string{"polisi", "tentara", "pengacara"}},
}

// SectorOf classifies a career title into a broad sector, "other" when unknown
func SectorOf(title string) string {
	t := strings.ToLower(title)
	for _, s := range sectorKeywords {
		for _, kw := range s.keywords {
			if strings.Contains(t, kw) {
				return s.sector
			}
		}
	}
	return "other"
}

// distinctSectors returns the sectors of the careers in first-seen order
func distinctSectors(careers []model.CareerRecommendation) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range careers {
		s := SectorOf(c.Title)
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
