package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hmate/internal/model"
	"hmate/internal/pool"
	"hmate/internal/service"
	"hmate/internal/transport/rest/middleware"
	"hmate/internal/transport/rest/response"
)

// AdminHandler handles admin login and catalogue inspection
type AdminHandler struct {
	authSvc     *service.AuthService
	analysisSvc *service.AnalysisService
	chatSvc     *service.ChatService
	pool        *pool.Pool
	poolSource  string
	log         *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(authSvc *service.AuthService, analysisSvc *service.AnalysisService, chatSvc *service.ChatService, p *pool.Pool, poolSource string, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		authSvc:     authSvc,
		analysisSvc: analysisSvc,
		chatSvc:     chatSvc,
		pool:        p,
		poolSource:  poolSource,
		log:         log,
	}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	resp, err := h.authSvc.Login(req.Username, req.Password)
	if errors.Is(err, service.ErrAdminDisabled) {
		response.ServiceUnavailable(w, err.Error())
		return
	}
	if err != nil {
		h.log.Warn("admin login failed", zap.String("username", req.Username))
		response.Unauthorized(w, err.Error())
		return
	}

	response.OK(w, "Login berhasil", resp)
}

type poolStats struct {
	Source string           `json:"source"`
	Tiers  []pool.TierStats `json:"tiers"`
}

// PoolStats handles GET /api/admin/pool
func (h *AdminHandler) PoolStats(w http.ResponseWriter, r *http.Request) {
	response.OK(w, "Statistik bank soal", poolStats{
		Source: h.poolSource,
		Tiers:  h.pool.Stats(),
	})
}

// limitParam reads ?limit= in 1..100, def when absent
func limitParam(r *http.Request, def int) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 100 {
		return 0, false
	}
	return n, true
}

// TopCareers handles GET /api/admin/careers/top?limit=
func (h *AdminHandler) TopCareers(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(r, 10)
	if !ok {
		response.BadRequest(w, "limit harus antara 1 dan 100")
		return
	}

	top, err := h.analysisSvc.TopCareers(r.Context(), limit)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal memuat statistik karier")
		return
	}
	response.OK(w, "Karier paling sering direkomendasikan", top)
}

type careerRank struct {
	Title string `json:"title"`
	Rank  int    `json:"rank"`
}

// CareerRank handles GET /api/admin/careers/rank?title=
func (h *AdminHandler) CareerRank(w http.ResponseWriter, r *http.Request) {
	title := strings.TrimSpace(r.URL.Query().Get("title"))
	if title == "" {
		response.BadRequest(w, "title wajib diisi")
		return
	}

	rank, err := h.analysisSvc.CareerRank(r.Context(), title)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal memuat peringkat karier")
		return
	}
	response.OK(w, "Peringkat karier", careerRank{Title: title, Rank: rank})
}

// RecentResults handles GET /api/admin/results?limit=
func (h *AdminHandler) RecentResults(w http.ResponseWriter, r *http.Request) {
	limit, ok := limitParam(r, 20)
	if !ok {
		response.BadRequest(w, "limit harus antara 1 dan 100")
		return
	}

	results, err := h.analysisSvc.RecentResults(r.Context(), limit)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal memuat hasil analisis")
		return
	}
	response.OK(w, "Hasil analisis terbaru", results)
}

// Transcript handles GET /api/admin/chats/{id}
func (h *AdminHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	h.log.Info("transcript requested", zap.String("adminId", middleware.GetAdminID(r.Context())), zap.String("sessionId", sessionID))

	transcript, err := h.chatSvc.Transcript(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal memuat riwayat konsultasi")
		return
	}
	response.OK(w, "Riwayat konsultasi", transcript)
}
