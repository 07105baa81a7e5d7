package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"hmate/internal/config"
	"hmate/internal/model"
	"hmate/internal/repository"
)

var (
	ErrEmptyMessage       = errors.New("pesan harus berupa string dan tidak boleh kosong")
	ErrTranscriptNotFound = errors.New("transcript not found")
)

// ChatService answers career consultation messages
type ChatService struct {
	ai          Generator
	models      config.GeminiModels
	transcripts repository.ChatRepo
	log         *zap.Logger
}

// NewChatService creates a new chat service. transcripts may be nil.
func NewChatService(ai Generator, models config.GeminiModels, transcripts repository.ChatRepo, log *zap.Logger) *ChatService {
	return &ChatService{
		ai:          ai,
		models:      models,
		transcripts: transcripts,
		log:         log.Named("chat"),
	}
}

// Consult replies to message, with history as the earlier conversation
func (s *ChatService) Consult(ctx context.Context, message string, history []model.ChatMessage) (*model.ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}
	if !s.ai.Enabled() {
		return nil, ErrAIDisabled
	}

	s.log.Debug("consultation", zap.Int("historyTurns", len(history)), zap.String("message", truncate(message, 50)))
	text, err := s.ai.Generate(ctx, GenerateRequest{
		Model:             s.models.Chat,
		SystemInstruction: consultationSystem,
		Prompt:            conversationPrompt(message, history),
	})
	if err != nil {
		return nil, err
	}
	return &model.ChatReply{Response: text, Timestamp: time.Now().UTC()}, nil
}

// Transcript returns the stored messages of a websocket session
func (s *ChatService) Transcript(ctx context.Context, sessionID string) (*model.ChatTranscript, error) {
	if s.transcripts == nil {
		return nil, ErrTranscriptNotFound
	}
	t, err := s.transcripts.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get transcript %s: %w", sessionID, err)
	}
	if t == nil {
		return nil, ErrTranscriptNotFound
	}
	return t, nil
}
