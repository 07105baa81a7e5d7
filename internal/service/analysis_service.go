package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hmate/internal/cache"
	"hmate/internal/config"
	"hmate/internal/model"
	"hmate/internal/repository"
)

// MinRecommendedCareers is how many careers a complete analysis must carry
const MinRecommendedCareers = 5

// Below this many distinct sectors an analysis is logged as low-diversity
const minSectors = 3

var (
	ErrNoAnswers          = errors.New("invalid answers data")
	ErrIncompleteAnalysis = errors.New("incomplete analysis response")
	ErrResultNotFound     = errors.New("result not found")
)

// AnalysisService turns quiz answers into career recommendations
type AnalysisService struct {
	ai      Generator
	models  config.GeminiModels
	results repository.ResultRepo
	trends  cache.CareerTrends
	log     *zap.Logger
}

// NewAnalysisService creates a new analysis service. results and trends may be nil.
func NewAnalysisService(ai Generator, models config.GeminiModels, results repository.ResultRepo, trends cache.CareerTrends, log *zap.Logger) *AnalysisService {
	return &AnalysisService{
		ai:      ai,
		models:  models,
		results: results,
		trends:  trends,
		log:     log.Named("analysis"),
	}
}

// AnalyzeResults asks the model for a personality reading and five career
// recommendations. The analysis is stored when a result repository is set.
func (s *AnalysisService) AnalyzeResults(ctx context.Context, answers []model.QuizAnswer) (*model.CareerAnalysis, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	s.log.Info("analyzing test results", zap.Int("answers", len(answers)))
	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Analysis,
		SystemInstruction: analysisSystem,
		Prompt:            analysisPrompt(answers),
		JSON:              true,
	})
	if err != nil {
		return nil, err
	}

	var analysis model.CareerAnalysis
	if err := ParseJSON(text, &analysis); err != nil {
		return nil, err
	}
	if strings.TrimSpace(analysis.PersonalityType) == "" || len(analysis.RecommendedCareers) < MinRecommendedCareers {
		return nil, ErrIncompleteAnalysis
	}

	analysis.Sectors = distinctSectors(analysis.RecommendedCareers)
	if len(analysis.Sectors) < minSectors {
		s.log.Warn("low career diversity", zap.Int("sectors", len(analysis.Sectors)), zap.Strings("sectorList", analysis.Sectors))
	}
	analysis.ID = uuid.NewString()
	analysis.AnswerCount = len(answers)
	analysis.CreatedAt = time.Now().UTC()

	if s.results != nil {
		if err := s.results.Save(ctx, &analysis); err != nil {
			s.log.Error("failed to save analysis", zap.String("resultId", analysis.ID), zap.Error(err))
		}
	}
	if s.trends != nil {
		titles := make([]string, len(analysis.RecommendedCareers))
		for i, c := range analysis.RecommendedCareers {
			titles[i] = c.Title
		}
		if err := s.trends.Record(ctx, titles...); err != nil {
			s.log.Warn("failed to record career trends", zap.Error(err))
		}
	}

	s.log.Info("analysis complete",
		zap.String("resultId", analysis.ID),
		zap.String("personalityType", analysis.PersonalityType),
		zap.Int("careers", len(analysis.RecommendedCareers)),
		zap.Strings("sectors", analysis.Sectors),
	)
	return &analysis, nil
}

// GetResult returns a stored analysis
func (s *AnalysisService) GetResult(ctx context.Context, id string) (*model.CareerAnalysis, error) {
	if s.results == nil {
		return nil, ErrResultNotFound
	}
	analysis, err := s.results.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", id, err)
	}
	if analysis == nil {
		return nil, ErrResultNotFound
	}
	return analysis, nil
}

// AnalyzeMiniTest recommends jobs from a sector-tagged mini test
func (s *AnalysisService) AnalyzeMiniTest(ctx context.Context, answers []model.QuizAnswer) (*model.MiniTestAnalysis, error) {
	if len(answers) == 0 {
		return nil, ErrNoAnswers
	}
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	s.log.Info("analyzing mini test", zap.Int("answers", len(answers)))
	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Analysis,
		SystemInstruction: miniTestAnalysisSystem,
		Prompt:            miniTestAnalysisPrompt(answers),
		JSON:              true,
	})
	if err != nil {
		return nil, err
	}

	var result model.MiniTestAnalysis
	if err := ParseJSON(text, &result); err != nil {
		return nil, err
	}
	if result.RecommendedJobs == nil {
		return nil, ErrIncompleteAnalysis
	}

	titles := make([]string, len(result.RecommendedJobs))
	for i, j := range result.RecommendedJobs {
		titles[i] = j.Title
	}
	s.log.Info("mini test analyzed", zap.Strings("recommended", titles))
	return &result, nil
}

// RecentResults lists the newest stored analyses, newest first
func (s *AnalysisService) RecentResults(ctx context.Context, limit int) ([]*model.CareerAnalysis, error) {
	if s.results == nil {
		return []*model.CareerAnalysis{}, nil
	}
	results, err := s.results.ListRecent(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("list recent results: %w", err)
	}
	if results == nil {
		results = []*model.CareerAnalysis{}
	}
	return results, nil
}

// CareerRank returns the 1-based popularity rank of a career title, 0 when
// it was never recommended or trends are not recorded
func (s *AnalysisService) CareerRank(ctx context.Context, title string) (int, error) {
	if s.trends == nil {
		return 0, nil
	}
	return s.trends.Rank(ctx, title)
}

// TopCareers returns the most often recommended career titles
func (s *AnalysisService) TopCareers(ctx context.Context, limit int) ([]cache.CareerCount, error) {
	if s.trends == nil {
		return []cache.CareerCount{}, nil
	}
	return s.trends.Top(ctx, limit)
}
