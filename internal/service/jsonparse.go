package service

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidResponse means the model's answer could not be read as JSON
var ErrInvalidResponse = errors.New("invalid AI response format - cannot parse JSON")

var (
	fenceOpenRe    = regexp.MustCompile("(?i)```json\\s*")
	fenceRe        = regexp.MustCompile("```\\s*")
	objectRe       = regexp.MustCompile(`(?s)\{.*\}`)
	questionsArrRe = regexp.MustCompile(`(?s)"questions"\s*:\s*\[.*\]`)
)

// ParseJSON decodes a model answer into v. It strips markdown fences
// first, then falls back to the outermost {...} block, then to a bare
// "questions": [...] member wrapped into an object.
func ParseJSON(text string, v any) error {
	cleaned := fenceOpenRe.ReplaceAllString(text, "")
	cleaned = strings.TrimSpace(fenceRe.ReplaceAllString(cleaned, ""))
	if err := json.Unmarshal([]byte(cleaned), v); err == nil {
		return nil
	}

	if m := objectRe.FindString(text); m != "" {
		if err := json.Unmarshal([]byte(m), v); err == nil {
			return nil
		}
	}

	if m := questionsArrRe.FindString(text); m != "" {
		if err := json.Unmarshal([]byte("{"+m+"}"), v); err == nil {
			return nil
		}
	}

	return ErrInvalidResponse
}
