package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hmate/internal/model"
	"hmate/internal/service"
	"hmate/internal/transport/rest/response"
)

// AnalysisHandler turns submitted answers into career recommendations
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
	log         *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisSvc *service.AnalysisService, log *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc, log: log}
}

type answersRequest struct {
	Answers []model.QuizAnswer `json:"answers"`
}

// AnalyzeResults handles POST /api/analyze-results
func (h *AnalysisHandler) AnalyzeResults(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := decodeJSON(w, r, &req); err != nil || len(req.Answers) == 0 {
		response.BadRequest(w, "Invalid answers data")
		return
	}

	analysis, err := h.analysisSvc.AnalyzeResults(r.Context(), req.Answers)
	if err != nil {
		writeServiceError(w, h.log, err, "Analysis failed")
		return
	}
	response.OK(w, "Analysis successful", analysis)
}

// GetResult handles GET /api/results/{id}
func (h *AnalysisHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.analysisSvc.GetResult(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal memuat hasil")
		return
	}
	response.OK(w, "Hasil ditemukan", analysis)
}

// AnalyzeMiniTest handles POST /api/roadmap/analyze-mini-test
func (h *AnalysisHandler) AnalyzeMiniTest(w http.ResponseWriter, r *http.Request) {
	var req answersRequest
	if err := decodeJSON(w, r, &req); err != nil || len(req.Answers) == 0 {
		response.BadRequest(w, "Data jawaban tidak valid")
		return
	}

	result, err := h.analysisSvc.AnalyzeMiniTest(r.Context(), req.Answers)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal menganalisis mini test")
		return
	}
	response.OK(w, "Analisis mini test berhasil", result)
}
