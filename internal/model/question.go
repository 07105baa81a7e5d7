package model

import (
	"errors"
	"fmt"
	"strings"
)

// OptionsPerQuestion is the number of answer options every question carries
const OptionsPerQuestion = 4

var (
	ErrEmptyQuestion    = errors.New("question text is empty")
	ErrOptionCount      = errors.New("question must have exactly 4 options")
	ErrInvalidOption    = errors.New("option value and text must be non-empty")
	ErrDuplicateOptions = errors.New("option values must be distinct")
)

// Option is one selectable answer to a question
type Option struct {
	Value    string `json:"value" bson:"value"`                           // "A".."D"
	Text     string `json:"text" bson:"text"`
	Category string `json:"category,omitempty" bson:"category,omitempty"` // Trait tag for analysis prompts
}

// QuestionTemplate is an authored question in the static pool
type QuestionTemplate struct {
	Question string   `json:"question" bson:"question"`
	Options  []Option `json:"options" bson:"options"`
}

// Validate checks the template has exactly four well-formed options with distinct values
func (q QuestionTemplate) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return ErrEmptyQuestion
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("%w (got %d)", ErrOptionCount, len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	for _, o := range q.Options {
		if strings.TrimSpace(o.Value) == "" || strings.TrimSpace(o.Text) == "" {
			return ErrInvalidOption
		}
		if seen[o.Value] {
			return fmt.Errorf("%w: %q", ErrDuplicateOptions, o.Value)
		}
		seen[o.Value] = true
	}
	return nil
}

// Clone returns a copy that shares no memory with q
func (q QuestionTemplate) Clone() QuestionTemplate {
	opts := make([]Option, len(q.Options))
	copy(opts, q.Options)
	return QuestionTemplate{Question: q.Question, Options: opts}
}

// SelectedQuestion is a quiz question as handed to a client
type SelectedQuestion struct {
	ID       int      `json:"id" bson:"id"`
	Question string   `json:"question" bson:"question"`
	Options  []Option `json:"options" bson:"options"`
	Category Category `json:"category,omitempty" bson:"category,omitempty"`
}

// NewSelectedQuestion copies a template into a quiz question tagged with its source category
func NewSelectedQuestion(t QuestionTemplate, c Category) SelectedQuestion {
	clone := t.Clone()
	return SelectedQuestion{
		Question: clone.Question,
		Options:  clone.Options,
		Category: c,
	}
}
