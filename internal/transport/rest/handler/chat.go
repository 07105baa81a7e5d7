package handler

import (
	"net/http"

	"go.uber.org/zap"

	"hmate/internal/model"
	"hmate/internal/service"
	"hmate/internal/transport/rest/response"
)

// ChatHandler serves stateless career consultations
type ChatHandler struct {
	chatSvc *service.ChatService
	log     *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc, log: log}
}

type konsultasiRequest struct {
	Message string              `json:"message"`
	History []model.ChatMessage `json:"history"`
}

// Konsultasi handles POST /api/konsultasi
func (h *ChatHandler) Konsultasi(w http.ResponseWriter, r *http.Request) {
	var req konsultasiRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, service.ErrEmptyMessage.Error())
		return
	}

	reply, err := h.chatSvc.Consult(r.Context(), req.Message, req.History)
	if err != nil {
		writeServiceError(w, h.log, err, "Terjadi kesalahan pada server")
		return
	}
	response.OK(w, "Berhasil mendapat respons", reply)
}
