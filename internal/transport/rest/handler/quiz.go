package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hmate/internal/model"
	"hmate/internal/service"
	"hmate/internal/transport/rest/response"
)

// QuizHandler serves pool-drawn and AI-generated quizzes
type QuizHandler struct {
	quizSvc *service.QuizService
	log     *zap.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quizSvc *service.QuizService, log *zap.Logger) *QuizHandler {
	return &QuizHandler{quizSvc: quizSvc, log: log}
}

type questionsRequest struct {
	QuestionCount int    `json:"questionCount"`
	UserAge       int    `json:"userAge"`
	Tier          string `json:"tier"`
}

type questionsData struct {
	Questions []model.SelectedQuestion `json:"questions"`
	Tier      model.AudienceTier       `json:"tier"`
	Count     int                      `json:"count"`
}

// resolveTier prefers an explicit tier name over the age rule
func resolveTier(name string, age int) (model.AudienceTier, error) {
	if name == "" {
		return model.TierForAge(age), nil
	}
	tier, ok := model.ParseTier(name)
	if !ok {
		return "", fmt.Errorf("tier tidak valid: %s (SMP, SMA, atau MAHASISWA)", name)
	}
	return tier, nil
}

func validCount(n int) bool {
	return n >= 0 && n <= service.MaxQuestionCount
}

func (h *QuizHandler) writeSmart(w http.ResponseWriter, tier model.AudienceTier, count int) {
	questions := h.quizSvc.SmartQuestions(tier, count)
	response.OK(w, "Questions selected successfully", questionsData{
		Questions: questions,
		Tier:      tier,
		Count:     len(questions),
	})
}

// GetQuestions handles GET /api/questions?count=&age=&tier=
func (h *QuizHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	count, age := 0, 0
	var err error
	if v := q.Get("count"); v != "" {
		if count, err = strconv.Atoi(v); err != nil || !validCount(count) {
			response.BadRequest(w, fmt.Sprintf("count harus antara 0 dan %d", service.MaxQuestionCount))
			return
		}
	}
	if v := q.Get("age"); v != "" {
		if age, err = strconv.Atoi(v); err != nil {
			response.BadRequest(w, "age harus berupa angka")
			return
		}
	}

	tier, err := resolveTier(q.Get("tier"), age)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	h.writeSmart(w, tier, count)
}

// SmartQuestions handles POST /api/smart-questions
func (h *QuizHandler) SmartQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if !validCount(req.QuestionCount) {
		response.BadRequest(w, fmt.Sprintf("questionCount harus antara 0 dan %d", service.MaxQuestionCount))
		return
	}

	tier, err := resolveTier(req.Tier, req.UserAge)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	h.writeSmart(w, tier, req.QuestionCount)
}

// GenerateQuestions handles POST /api/generate-questions
func (h *QuizHandler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req questionsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.QuestionCount < 0 {
		response.BadRequest(w, "questionCount tidak boleh negatif")
		return
	}

	quiz, err := h.quizSvc.GenerateQuestions(r.Context(), req.QuestionCount, req.UserAge)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to generate questions")
		return
	}
	response.OK(w, "Questions generated successfully", quiz)
}

// GetQuiz handles GET /api/quizzes/{id}
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quiz, err := h.quizSvc.GetQuiz(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal memuat kuis")
		return
	}
	response.OK(w, "Kuis ditemukan", quiz)
}

type miniTestRequest struct {
	QuestionCount int `json:"questionCount"`
}

// MiniTest handles POST /api/roadmap/mini-test
func (h *QuizHandler) MiniTest(w http.ResponseWriter, r *http.Request) {
	var req miniTestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if req.QuestionCount < 0 {
		response.BadRequest(w, "questionCount tidak boleh negatif")
		return
	}

	quiz, err := h.quizSvc.MiniTest(r.Context(), req.QuestionCount)
	if err != nil {
		writeServiceError(w, h.log, err, "Gagal membuat mini test")
		return
	}
	response.OK(w, "Berhasil generate mini test", quiz)
}
