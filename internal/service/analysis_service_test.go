package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"hmate/internal/model"
)

const fullAnalysis = `{
  "personality_type": "Analytical Thinker",
  "description": "Suka memecahkan masalah secara sistematis",
  "recommended_careers": [
    {"title": "Data Scientist", "match_percentage": 92, "reason": "Suka angka", "skills_needed": ["Python", "Statistik"]},
    {"title": "Dokter Umum", "match_percentage": 80, "reason": "Suka membantu", "skills_needed": ["Biologi"]},
    {"title": "Guru Matematika", "match_percentage": 78, "reason": "Sabar", "skills_needed": ["Komunikasi"]},
    {"title": "Pengacara", "match_percentage": 72, "reason": "Logis", "skills_needed": ["Argumentasi"]},
    {"title": "Product Manager", "match_percentage": 70, "reason": "Terstruktur", "skills_needed": ["Prioritas"]}
  ],
  "strengths": ["Analitis"],
  "development_areas": ["Public speaking"],
  "next_steps": ["Ikut kursus data"]
}`

var sampleAnswers = []model.QuizAnswer{
	{Question: "Kalau weekend, kamu lebih suka ngapain?", SelectedOption: model.Option{Value: "C", Text: "Belajar hal baru"}},
	{Question: "Kalau ada masalah?", SelectedOption: model.Option{Value: "A", Text: "Analisis dulu", Category: "technical"}},
}

func TestAnalyzeResults(t *testing.T) {
	ai := &fakeGenerator{replies: []string{fullAnalysis}}
	results := newMemResultRepo()
	trends := &memTrends{}
	svc := NewAnalysisService(ai, testModels, results, trends, zap.NewNop())

	analysis, err := svc.AnalyzeResults(context.Background(), sampleAnswers)
	if err != nil {
		t.Fatalf("AnalyzeResults: %v", err)
	}
	if analysis.ID == "" || analysis.AnswerCount != 2 || analysis.CreatedAt.IsZero() {
		t.Errorf("analysis not stamped: %+v", analysis)
	}
	if want := []string{"tech", "medical", "education", "law", "business"}; strings.Join(analysis.Sectors, ",") != strings.Join(want, ",") {
		t.Errorf("sectors = %v, want %v", analysis.Sectors, want)
	}
	if trends.counts["Dokter Umum"] != 1 {
		t.Errorf("trends not recorded: %v", trends.counts)
	}

	req := ai.lastRequest()
	if req.Model != "a-model" || !strings.Contains(req.Prompt, "Q1: Kalau weekend") || !strings.Contains(req.Prompt, "A: Belajar hal baru") {
		t.Errorf("unexpected request %+v", req)
	}

	stored, err := svc.GetResult(context.Background(), analysis.ID)
	if err != nil || stored.PersonalityType != "Analytical Thinker" {
		t.Errorf("GetResult = %+v, %v", stored, err)
	}
}

func TestAnalyzeResultsErrors(t *testing.T) {
	tests := []struct {
		name    string
		ai      *fakeGenerator
		answers []model.QuizAnswer
		want    error
	}{
		{"no answers", &fakeGenerator{}, nil, ErrNoAnswers},
		{"ai disabled", &fakeGenerator{disabled: true}, sampleAnswers, ErrAIDisabled},
		{"unparseable", &fakeGenerator{replies: []string{"tidak bisa"}}, sampleAnswers, ErrInvalidResponse},
		{"too few careers", &fakeGenerator{replies: []string{`{"personality_type":"Hands-on Doer","recommended_careers":[{"title":"Chef"}]}`}}, sampleAnswers, ErrIncompleteAnalysis},
		{"no personality", &fakeGenerator{replies: []string{strings.Replace(fullAnalysis, "Analytical Thinker", "", 1)}}, sampleAnswers, ErrIncompleteAnalysis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAnalysisService(tt.ai, testModels, nil, nil, zap.NewNop())
			if _, err := svc.AnalyzeResults(context.Background(), tt.answers); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGetResultWithoutRepo(t *testing.T) {
	svc := NewAnalysisService(&fakeGenerator{}, testModels, nil, nil, zap.NewNop())
	if _, err := svc.GetResult(context.Background(), "abc"); !errors.Is(err, ErrResultNotFound) {
		t.Errorf("expected ErrResultNotFound, got %v", err)
	}
	top, err := svc.TopCareers(context.Background(), 5)
	if err != nil || len(top) != 0 {
		t.Errorf("TopCareers = %v, %v", top, err)
	}
}

func TestRecentResults(t *testing.T) {
	ctx := context.Background()
	empty, err := NewAnalysisService(&fakeGenerator{}, testModels, nil, nil, zap.NewNop()).RecentResults(ctx, 5)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("without repo: got %v, %v", empty, err)
	}

	results := newMemResultRepo()
	svc := NewAnalysisService(&fakeGenerator{replies: []string{fullAnalysis}}, testModels, results, nil, zap.NewNop())
	for i := 0; i < 3; i++ {
		if _, err := svc.AnalyzeResults(ctx, sampleAnswers); err != nil {
			t.Fatalf("AnalyzeResults: %v", err)
		}
	}

	recent, err := svc.RecentResults(ctx, 2)
	if err != nil {
		t.Fatalf("RecentResults: %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("got %d results, want 2", len(recent))
	}
}

func TestAnalyzeMiniTest(t *testing.T) {
	ai := &fakeGenerator{replies: []string{`{"recommendedJobs":[{"title":"Apoteker","match_score":88,"reason":"Suka sains","type":"health"}],"summary":"Teliti","strengths":["Detail"]}`}}
	svc := NewAnalysisService(ai, testModels, nil, nil, zap.NewNop())

	result, err := svc.AnalyzeMiniTest(context.Background(), sampleAnswers)
	if err != nil {
		t.Fatalf("AnalyzeMiniTest: %v", err)
	}
	if len(result.RecommendedJobs) != 1 || result.RecommendedJobs[0].Type != "health" {
		t.Errorf("unexpected result %+v", result)
	}
	prompt := ai.lastRequest().Prompt
	if !strings.Contains(prompt, "(category: unknown)") || !strings.Contains(prompt, "(category: technical)") {
		t.Errorf("categories missing from prompt: %s", prompt)
	}

	missing := NewAnalysisService(&fakeGenerator{replies: []string{`{"summary":"x"}`}}, testModels, nil, nil, zap.NewNop())
	if _, err := missing.AnalyzeMiniTest(context.Background(), sampleAnswers); !errors.Is(err, ErrIncompleteAnalysis) {
		t.Errorf("expected ErrIncompleteAnalysis, got %v", err)
	}
}

func TestCareerRank(t *testing.T) {
	ctx := context.Background()
	trends := &memTrends{}
	svc := NewAnalysisService(&fakeGenerator{replies: []string{fullAnalysis}}, testModels, nil, trends, zap.NewNop())
	if _, err := svc.AnalyzeResults(ctx, sampleAnswers); err != nil {
		t.Fatalf("AnalyzeResults: %v", err)
	}
	trends.Record(ctx, "Data Scientist")

	if rank, err := svc.CareerRank(ctx, "Data Scientist"); err != nil || rank != 1 {
		t.Errorf("CareerRank(Data Scientist) = %d, %v; want 1", rank, err)
	}
	if rank, err := svc.CareerRank(ctx, "Astronot"); err != nil || rank != 0 {
		t.Errorf("CareerRank(Astronot) = %d, %v; want 0", rank, err)
	}

	noTrends := NewAnalysisService(&fakeGenerator{}, testModels, nil, nil, zap.NewNop())
	if rank, err := noTrends.CareerRank(ctx, "Data Scientist"); err != nil || rank != 0 {
		t.Errorf("without trends: rank = %d, %v", rank, err)
	}
}
