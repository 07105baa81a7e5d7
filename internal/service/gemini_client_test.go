package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"hmate/internal/config"
)

func testAIConfig(url string) *config.AIConfig {
	return &config.AIConfig{
		APIKey:          "test-key",
		BaseURL:         url,
		Temperature:     0.7,
		MaxOutputTokens: 8192,
		Timeout:         5 * time.Second,
		MaxAttempts:     3,
		RetryBackoff:    time.Millisecond,
	}
}

func geminiReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGeminiClientGenerate(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/m1:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key")
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		w.Write([]byte(geminiReply(`{"ok":true}`)))
	}))
	defer srv.Close()

	c := NewGeminiClient(testAIConfig(srv.URL), zap.NewNop())
	text, err := c.Generate(context.Background(), GenerateRequest{
		Model:             "m1",
		SystemInstruction: "be brief",
		Prompt:            "hello",
		JSON:              true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != `{"ok":true}` {
		t.Errorf("text = %q", text)
	}
	if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "be brief" {
		t.Errorf("system instruction not sent: %+v", got.SystemInstruction)
	}
	if got.Contents[0].Parts[0].Text != "hello" {
		t.Errorf("prompt not sent: %+v", got.Contents)
	}
	if got.GenerationConfig.ResponseMimeType != "application/json" || got.GenerationConfig.MaxOutputTokens != 8192 {
		t.Errorf("generation config = %+v", got.GenerationConfig)
	}
}

func TestGeminiClientRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch calls.Add(1) {
		case 1:
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.Write([]byte(geminiReply("   ")))
		default:
			w.Write([]byte(geminiReply("third time lucky")))
		}
	}))
	defer srv.Close()

	c := NewGeminiClient(testAIConfig(srv.URL), zap.NewNop())
	text, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text != "third time lucky" || calls.Load() != 3 {
		t.Errorf("text = %q after %d calls", text, calls.Load())
	}
}

func TestGeminiClientGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewGeminiClient(testAIConfig(srv.URL), zap.NewNop())
	_, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "p"})
	if err == nil || !strings.Contains(err.Error(), "after 3 attempts") {
		t.Fatalf("expected exhaustion error, got %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestGeminiClientDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":{"code":400,"message":"bad"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewGeminiClient(testAIConfig(srv.URL), zap.NewNop())
	if _, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "p"}); err == nil {
		t.Fatal("expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestGeminiClientDisabled(t *testing.T) {
	cfg := testAIConfig("http://unused")
	cfg.APIKey = ""
	c := NewGeminiClient(cfg, zap.NewNop())
	if c.Enabled() {
		t.Fatal("client enabled without key")
	}
	if _, err := c.Generate(context.Background(), GenerateRequest{Model: "m"}); !errors.Is(err, ErrAIDisabled) {
		t.Errorf("expected ErrAIDisabled, got %v", err)
	}
}

func TestGeminiClientHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testAIConfig(srv.URL)
	cfg.RetryBackoff = time.Hour
	c := NewGeminiClient(cfg, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := c.Generate(ctx, GenerateRequest{Model: "m"}); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
