package handler

import (
	"net/http"
	"time"

	"hmate/internal/transport/rest/response"
)

type healthStatus struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	AI        bool      `json:"ai"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /health
func Health(aiEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, healthStatus{
			Status:    "OK",
			Message:   "H-Mate API is running",
			AI:        aiEnabled,
			Timestamp: time.Now().UTC(),
		})
	}
}
