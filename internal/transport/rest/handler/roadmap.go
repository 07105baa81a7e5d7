package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hmate/internal/model"
	"hmate/internal/service"
	"hmate/internal/transport/rest/response"
)

// RoadmapHandler serves career roadmaps and roadmap consultations
type RoadmapHandler struct {
	roadmapSvc *service.RoadmapService
	log        *zap.Logger
}

// NewRoadmapHandler creates a new roadmap handler
func NewRoadmapHandler(roadmapSvc *service.RoadmapService, log *zap.Logger) *RoadmapHandler {
	return &RoadmapHandler{roadmapSvc: roadmapSvc, log: log}
}

// Generate handles POST /api/roadmap/generate
func (h *RoadmapHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.RoadmapRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	roadmap, err := h.roadmapSvc.Generate(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal generate roadmap")
		return
	}
	response.OK(w, "Roadmap berhasil digenerate", roadmap)
}

// Get handles GET /api/roadmap/{id}
func (h *RoadmapHandler) Get(w http.ResponseWriter, r *http.Request) {
	roadmap, err := h.roadmapSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal memuat roadmap")
		return
	}
	response.OK(w, "Roadmap ditemukan", roadmap)
}

// NextSteps handles POST /api/roadmap/next-steps
func (h *RoadmapHandler) NextSteps(w http.ResponseWriter, r *http.Request) {
	var req model.NextStepsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Data roadmap tidak valid")
		return
	}

	steps, err := h.roadmapSvc.NextSteps(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal generate next steps")
		return
	}
	response.OK(w, "Next steps berhasil digenerate", steps)
}

type consultationRequest struct {
	Message string          `json:"message"`
	Context json.RawMessage `json:"context"`
}

// Consultation handles POST /api/roadmap/consultation
func (h *RoadmapHandler) Consultation(w http.ResponseWriter, r *http.Request) {
	var req consultationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "Pesan tidak valid")
		return
	}

	reply, err := h.roadmapSvc.Consult(r.Context(), req.Message, req.Context)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal konsultasi")
		return
	}
	response.OK(w, "Konsultasi berhasil", reply)
}
