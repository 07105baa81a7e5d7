package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// GeminiModels defines which Gemini models to use for different tasks
type GeminiModels struct {
	// Questions generates quiz and mini-test questions (JSON, long output)
	Questions string `envconfig:"GEMINI_MODEL_QUESTIONS" default:"gemini-2.5-flash" json:"questions"`

	// Analysis turns quiz answers into career recommendations
	Analysis string `envconfig:"GEMINI_MODEL_ANALYSIS" default:"gemini-2.5-flash" json:"analysis"`

	// Chat answers free-text consultation messages
	Chat string `envconfig:"GEMINI_MODEL_CHAT" default:"gemini-2.5-flash" json:"chat"`

	// Roadmap builds career roadmaps and next-step guidance
	Roadmap string `envconfig:"GEMINI_MODEL_ROADMAP" default:"gemini-2.5-flash" json:"roadmap"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey          string        `envconfig:"GEMINI_API_KEY" json:"-"` // Never serialize
	BaseURL         string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta/models" json:"baseUrl"`
	Models          GeminiModels  `json:"models"`
	Temperature     float64       `envconfig:"GEMINI_TEMPERATURE" default:"0.7" json:"temperature"`
	MaxOutputTokens int           `envconfig:"GEMINI_MAX_OUTPUT_TOKENS" default:"8192" json:"maxOutputTokens"`
	Timeout         time.Duration `envconfig:"GEMINI_TIMEOUT" default:"60s" json:"timeout"`
	MaxAttempts     int           `envconfig:"GEMINI_MAX_ATTEMPTS" default:"3" json:"maxAttempts"`
	RetryBackoff    time.Duration `envconfig:"GEMINI_RETRY_BACKOFF" default:"1s" json:"retryBackoff"`
}

// LoadAIConfig reads the AI configuration from the environment
func LoadAIConfig() (*AIConfig, error) {
	var cfg AIConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process AI config: %w", err)
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("GEMINI_MAX_ATTEMPTS must be at least 1")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("GEMINI_TIMEOUT must be positive")
	}
	return &cfg, nil
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}
