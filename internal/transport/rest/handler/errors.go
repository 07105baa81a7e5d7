package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"hmate/internal/service"
	"hmate/internal/transport/rest/response"
)

const maxBodyBytes = 1 << 20

// Errors whose text is safe to show to API clients
var (
	badRequestErrors = []error{
		service.ErrNoAnswers,
		service.ErrEmptyMessage,
		service.ErrRoadmapRequest,
		service.ErrInvalidRoadmap,
		service.ErrQuestionCountHigh,
	}
	notFoundErrors = []error{
		service.ErrQuizNotFound,
		service.ErrResultNotFound,
		service.ErrRoadmapNotFound,
		service.ErrTranscriptNotFound,
	}
	aiFormatErrors = []error{
		service.ErrInvalidResponse,
		service.ErrIncompleteAnalysis,
		service.ErrIncompleteRoadmap,
		service.ErrMissingQuestions,
		service.ErrNoValidQuestions,
		service.ErrEmptyResponse,
	}
)

func matches(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// writeServiceError maps a service failure to a status code and envelope.
// Unknown errors are logged and answered with fallback.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, fallback string) {
	switch {
	case matches(err, badRequestErrors):
		response.BadRequest(w, err.Error())
	case matches(err, notFoundErrors):
		response.NotFound(w, err.Error())
	case errors.Is(err, service.ErrAIDisabled):
		response.ServiceUnavailable(w, "Layanan AI sedang tidak tersedia")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("request timed out", zap.Error(err))
		response.Error(w, http.StatusGatewayTimeout, "AI terlalu lama merespons, coba lagi")
	case matches(err, aiFormatErrors):
		log.Warn("unusable AI response", zap.Error(err))
		response.InternalError(w, err.Error())
	default:
		log.Error("request failed", zap.Error(err))
		response.InternalError(w, fallback)
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
