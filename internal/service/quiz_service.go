package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hmate/internal/cache"
	"hmate/internal/config"
	"hmate/internal/model"
	"hmate/internal/selector"
)

// Default question counts per quiz kind
const (
	DefaultGenerateCount = 25
	DefaultMiniTestCount = 15
	MaxQuestionCount     = 100
)

var (
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrNoValidQuestions  = errors.New("no valid questions generated")
	ErrMissingQuestions  = errors.New("response structure invalid - missing questions array")
	ErrQuestionCountHigh = fmt.Errorf("questionCount must not exceed %d", MaxQuestionCount)
)

type questionsResponse struct {
	Questions []model.SelectedQuestion `json:"questions"`
}

// QuizService assembles quizzes from the static pool or the AI model
type QuizService struct {
	selector *selector.Selector
	ai       Generator
	models   config.GeminiModels
	quizzes  cache.QuizCache
	log      *zap.Logger
}

// NewQuizService creates a new quiz service. quizzes may be nil.
func NewQuizService(sel *selector.Selector, ai Generator, models config.GeminiModels, quizzes cache.QuizCache, log *zap.Logger) *QuizService {
	return &QuizService{
		selector: sel,
		ai:       ai,
		models:   models,
		quizzes:  quizzes,
		log:      log.Named("quiz"),
	}
}

// SmartQuestions draws a category-balanced quiz from the static pool
func (s *QuizService) SmartQuestions(tier model.AudienceTier, count int) []model.SelectedQuestion {
	if count <= 0 {
		count = selector.DefaultCount
	}
	questions := s.selector.Select(tier, count)
	s.log.Debug("smart questions", zap.String("tier", string(tier)), zap.Int("requested", count), zap.Int("selected", len(questions)))
	return questions
}

// GenerateQuestions asks the model for a fresh quiz for the given age.
// The static pool is used instead when AI is unavailable or its answer
// contains no usable question.
func (s *QuizService) GenerateQuestions(ctx context.Context, count, age int) (*model.Quiz, error) {
	if count <= 0 {
		count = DefaultGenerateCount
	}
	if count > MaxQuestionCount {
		return nil, ErrQuestionCountHigh
	}

	tier := model.TierForAge(age)
	now := time.Now()
	seed := rand.IntN(1000000)
	uniqueID := fmt.Sprintf("%d-%d-%s", seed, now.UnixMilli(), uuid.NewString()[:8])

	log := s.log.With(zap.String("uniqueId", uniqueID), zap.String("tier", string(tier)), zap.Int("requested", count))
	log.Info("generating questions")

	source := model.SourceAI
	questions, err := s.generate(ctx, count, tier, uniqueID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("AI generation unavailable, using question pool", zap.Error(err))
		source = model.SourcePool
		questions = s.selector.Select(tier, count)
	}
	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	if len(questions) < count {
		log.Warn("generated fewer questions than requested", zap.Int("generated", len(questions)))
	}

	quiz := &model.Quiz{
		ID:        uuid.NewString(),
		Questions: questions,
		Metadata: &model.QuizMetadata{
			Seed:      seed,
			UniqueID:  uniqueID,
			AgeGroup:  tier,
			Timestamp: now.UnixMilli(),
			Generated: len(questions),
			Requested: count,
			Source:    source,
		},
	}

	if s.quizzes != nil {
		if err := s.quizzes.SetQuiz(ctx, quiz); err != nil {
			log.Warn("failed to cache quiz", zap.String("quizId", quiz.ID), zap.Error(err))
		}
	}

	log.Info("questions ready", zap.String("quizId", quiz.ID), zap.String("source", source), zap.Int("generated", len(questions)))
	return quiz, nil
}

func (s *QuizService) generate(ctx context.Context, count int, tier model.AudienceTier, uniqueID string) ([]model.SelectedQuestion, error) {
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Questions,
		SystemInstruction: questionsSystemInstruction(count, tier, uniqueID),
		Prompt:            questionsPrompt(count, tier, uniqueID),
		JSON:              true,
	})
	if err != nil {
		return nil, err
	}

	var resp questionsResponse
	if err := ParseJSON(text, &resp); err != nil {
		return nil, err
	}
	if resp.Questions == nil {
		return nil, ErrMissingQuestions
	}

	valid := ValidateQuestions(resp.Questions, s.log)
	if len(valid) == 0 {
		return nil, ErrNoValidQuestions
	}
	return valid, nil
}

// GetQuiz returns a previously generated quiz
func (s *QuizService) GetQuiz(ctx context.Context, id string) (*model.Quiz, error) {
	if s.quizzes == nil {
		return nil, ErrQuizNotFound
	}
	quiz, err := s.quizzes.GetQuiz(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get quiz %s: %w", id, err)
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

// MiniTest generates a short quiz whose options carry sector tags
func (s *QuizService) MiniTest(ctx context.Context, count int) (*model.Quiz, error) {
	if count <= 0 {
		count = DefaultMiniTestCount
	}
	if count > MaxQuestionCount {
		return nil, ErrQuestionCountHigh
	}
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	s.log.Info("generating mini test", zap.Int("requested", count))
	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Questions,
		SystemInstruction: miniTestSystemInstruction(count),
		Prompt:            miniTestPrompt(count),
		JSON:              true,
	})
	if err != nil {
		return nil, err
	}

	var resp questionsResponse
	if err := ParseJSON(text, &resp); err != nil {
		return nil, err
	}
	if resp.Questions == nil {
		return nil, ErrMissingQuestions
	}
	valid := ValidateQuestions(resp.Questions, s.log)
	if len(valid) == 0 {
		return nil, ErrNoValidQuestions
	}

	s.log.Info("mini test ready", zap.Int("generated", len(valid)))
	return &model.Quiz{Questions: valid}, nil
}
