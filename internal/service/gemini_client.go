package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"hmate/internal/config"
)

var (
	ErrAIDisabled    = errors.New("AI is not configured")
	ErrEmptyResponse = errors.New("empty response from Gemini")
)

// GenerateRequest is a single prompt for the model
type GenerateRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
	JSON              bool // Ask for an application/json response
}

// Generator produces model text for a prompt
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Enabled() bool
}

// GeminiClient calls the Gemini generateContent REST API
type GeminiClient struct {
	config *config.AIConfig
	client *http.Client
	log    *zap.Logger
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(cfg *config.AIConfig, log *zap.Logger) *GeminiClient {
	return &GeminiClient{
		config: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		log: log.Named("gemini"),
	}
}

// Enabled reports whether an API key is configured
func (c *GeminiClient) Enabled() bool {
	return c.config.IsEnabled()
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent        `json:"systemInstruction,omitempty"`
	Contents          []geminiContent       `json:"contents"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// retryableError marks failures worth another attempt
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// Generate sends the prompt, retrying transport failures, rate limiting,
// server errors and empty answers with a linear backoff.
func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if !c.Enabled() {
		return "", ErrAIDisabled
	}

	body, err := c.buildBody(req)
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 1; attempt <= c.config.MaxAttempts; attempt++ {
		c.log.Debug("generate", zap.String("model", req.Model), zap.Int("attempt", attempt), zap.Int("maxAttempts", c.config.MaxAttempts))

		text, err := c.call(ctx, req.Model, body)
		if err == nil {
			c.log.Info("got AI response", zap.String("model", req.Model), zap.Int("chars", len(text)), zap.Int("attempt", attempt))
			return text, nil
		}
		lastErr = err

		var retryable *retryableError
		if !errors.As(err, &retryable) {
			c.log.Error("AI request failed", zap.String("model", req.Model), zap.Error(err))
			return "", err
		}
		c.log.Warn("AI attempt failed", zap.String("model", req.Model), zap.Int("attempt", attempt), zap.Error(err))

		if attempt == c.config.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.config.RetryBackoff * time.Duration(attempt)):
		}
	}

	return "", fmt.Errorf("failed to get valid AI response after %d attempts: %w", c.config.MaxAttempts, lastErr)
}

func (c *GeminiClient) buildBody(req GenerateRequest) ([]byte, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     c.config.Temperature,
			MaxOutputTokens: c.config.MaxOutputTokens,
		},
	}
	if req.SystemInstruction != "" {
		payload.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.SystemInstruction}}}
	}
	if req.JSON {
		payload.GenerationConfig.ResponseMimeType = "application/json"
	}
	return json.Marshal(payload)
}

func (c *GeminiClient) call(ctx context.Context, model string, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.ModelEndpoint(model), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &retryableError{err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &retryableError{err: err}
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &retryableError{err: fmt.Errorf("gemini api error %d: %s", resp.StatusCode, truncate(string(respBody), 200))}
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("gemini api error %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("gemini api error %d: %s", gr.Error.Code, gr.Error.Message)
	}

	var sb strings.Builder
	if len(gr.Candidates) > 0 {
		for _, p := range gr.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", &retryableError{err: ErrEmptyResponse}
	}
	return text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
