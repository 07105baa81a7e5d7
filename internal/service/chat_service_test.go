package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"hmate/internal/model"
)

func TestChatConsultRendersHistory(t *testing.T) {
	ai := &fakeGenerator{replies: []string{"Coba eksplorasi dunia kesehatan!"}}
	svc := NewChatService(ai, testModels, nil, zap.NewNop())

	history := []model.ChatMessage{
		{Role: model.RoleUser, Content: "Aku suka biologi"},
		{Role: model.RoleAssistant, Content: "Keren! Suka bagian apa?"},
	}
	reply, err := svc.Consult(context.Background(), "Tubuh manusia", history)
	if err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if reply.Response != "Coba eksplorasi dunia kesehatan!" {
		t.Errorf("response = %q", reply.Response)
	}

	want := "User: Aku suka biologi\nAssistant: Keren! Suka bagian apa?\nUser: Tubuh manusia"
	req := ai.lastRequest()
	if req.Prompt != want {
		t.Errorf("prompt = %q, want %q", req.Prompt, want)
	}
	if req.Model != "c-model" || req.JSON {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestChatConsultWithoutHistory(t *testing.T) {
	ai := &fakeGenerator{replies: []string{"Halo!"}}
	svc := NewChatService(ai, testModels, nil, zap.NewNop())
	if _, err := svc.Consult(context.Background(), "Halo", nil); err != nil {
		t.Fatalf("Consult: %v", err)
	}
	if ai.lastRequest().Prompt != "Halo" {
		t.Errorf("prompt = %q", ai.lastRequest().Prompt)
	}
}

func TestChatConsultErrors(t *testing.T) {
	if _, err := NewChatService(&fakeGenerator{}, testModels, nil, zap.NewNop()).Consult(context.Background(), "", nil); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := NewChatService(&fakeGenerator{disabled: true}, testModels, nil, zap.NewNop()).Consult(context.Background(), "hai", nil); !errors.Is(err, ErrAIDisabled) {
		t.Errorf("expected ErrAIDisabled, got %v", err)
	}
	boom := errors.New("upstream down")
	if _, err := NewChatService(&fakeGenerator{err: boom}, testModels, nil, zap.NewNop()).Consult(context.Background(), "hai", nil); !errors.Is(err, boom) {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestTranscript(t *testing.T) {
	ctx := context.Background()
	if _, err := NewChatService(&fakeGenerator{}, testModels, nil, zap.NewNop()).Transcript(ctx, "s1"); !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("without repo: expected ErrTranscriptNotFound, got %v", err)
	}

	repo := &memChatRepo{}
	repo.Append(ctx, "s1",
		model.ChatMessage{Role: model.RoleUser, Content: "halo"},
		model.ChatMessage{Role: model.RoleAssistant, Content: "hai juga"},
	)
	svc := NewChatService(&fakeGenerator{}, testModels, repo, zap.NewNop())

	got, err := svc.Transcript(ctx, "s1")
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(got.Messages) != 2 || got.Messages[1].Content != "hai juga" {
		t.Errorf("unexpected transcript %+v", got)
	}
	if _, err := svc.Transcript(ctx, "missing"); !errors.Is(err, ErrTranscriptNotFound) {
		t.Errorf("expected ErrTranscriptNotFound, got %v", err)
	}
}
