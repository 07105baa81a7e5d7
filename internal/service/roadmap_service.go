package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hmate/internal/cache"
	"hmate/internal/config"
	"hmate/internal/model"
)

var (
	ErrRoadmapRequest    = errors.New("targetRole dan currentStatus wajib diisi")
	ErrInvalidRoadmap    = errors.New("data roadmap tidak valid")
	ErrIncompleteRoadmap = errors.New("roadmap response has no phases")
	ErrRoadmapNotFound   = errors.New("roadmap not found")
)

// RoadmapService builds and follows up on phased career roadmaps
type RoadmapService struct {
	ai       Generator
	models   config.GeminiModels
	roadmaps cache.RoadmapCache
	log      *zap.Logger
}

// NewRoadmapService creates a new roadmap service. roadmaps may be nil.
func NewRoadmapService(ai Generator, models config.GeminiModels, roadmaps cache.RoadmapCache, log *zap.Logger) *RoadmapService {
	return &RoadmapService{
		ai:       ai,
		models:   models,
		roadmaps: roadmaps,
		log:      log.Named("roadmap"),
	}
}

// Generate creates a roadmap towards req.TargetRole
func (s *RoadmapService) Generate(ctx context.Context, req model.RoadmapRequest) (*model.Roadmap, error) {
	req.TargetRole = strings.TrimSpace(req.TargetRole)
	req.CurrentStatus = strings.TrimSpace(req.CurrentStatus)
	if req.TargetRole == "" || req.CurrentStatus == "" {
		return nil, ErrRoadmapRequest
	}
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	s.log.Info("generating roadmap", zap.String("targetRole", req.TargetRole), zap.String("currentStatus", req.CurrentStatus))
	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Roadmap,
		SystemInstruction: roadmapSystemInstruction(req),
		Prompt:            roadmapPrompt(req),
		JSON:              true,
	})
	if err != nil {
		return nil, err
	}

	var roadmap model.Roadmap
	if err := ParseJSON(text, &roadmap); err != nil {
		return nil, err
	}
	if roadmap.Phases == nil {
		return nil, ErrIncompleteRoadmap
	}
	roadmap.ID = uuid.NewString()
	roadmap.CreatedAt = time.Now().UTC()

	if s.roadmaps != nil {
		if err := s.roadmaps.Set(ctx, &roadmap); err != nil {
			s.log.Warn("failed to cache roadmap", zap.String("roadmapId", roadmap.ID), zap.Error(err))
		}
	}

	s.log.Info("roadmap generated", zap.String("roadmapId", roadmap.ID), zap.Int("phases", len(roadmap.Phases)))
	return &roadmap, nil
}

// Get returns a cached roadmap
func (s *RoadmapService) Get(ctx context.Context, id string) (*model.Roadmap, error) {
	if s.roadmaps == nil {
		return nil, ErrRoadmapNotFound
	}
	roadmap, err := s.roadmaps.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get roadmap %s: %w", id, err)
	}
	if roadmap == nil {
		return nil, ErrRoadmapNotFound
	}
	return roadmap, nil
}

// NextSteps advises on what to do next given the completed phases. The
// roadmap is taken from the request or, failing that, from the cache.
func (s *RoadmapService) NextSteps(ctx context.Context, req model.NextStepsRequest) (*model.NextSteps, error) {
	roadmap := req.Roadmap
	if (roadmap == nil || roadmap.Phases == nil) && req.RoadmapID != "" {
		cached, err := s.Get(ctx, req.RoadmapID)
		if err != nil {
			return nil, err
		}
		roadmap = cached
	}
	if roadmap == nil || roadmap.Phases == nil {
		return nil, ErrInvalidRoadmap
	}
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	prompt, err := nextStepsPrompt(roadmap, req.CompletedPhases, req.CurrentSkills)
	if err != nil {
		return nil, err
	}

	s.log.Info("getting next steps", zap.String("title", roadmap.Title), zap.Int("completedPhases", len(req.CompletedPhases)))
	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Roadmap,
		SystemInstruction: nextStepsSystem,
		Prompt:            prompt,
		JSON:              true,
	})
	if err != nil {
		return nil, err
	}

	var steps model.NextSteps
	if err := ParseJSON(text, &steps); err != nil {
		return nil, err
	}
	return &steps, nil
}

// Consult answers a free-text question about the user's roadmap.
// roadmapContext is passed to the model verbatim when present.
func (s *RoadmapService) Consult(ctx context.Context, message string, roadmapContext json.RawMessage) (*model.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	s.log.Info("roadmap consultation", zap.String("message", truncate(message, 50)))
	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Chat,
		SystemInstruction: roadmapConsultationSystem(roadmapContext),
		Prompt:            message,
	})
	if err != nil {
		return nil, err
	}
	return &model.ChatReply{Response: text, Timestamp: time.Now().UTC()}, nil
}
