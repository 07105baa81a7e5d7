package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"hmate/internal/cache"
	"hmate/internal/pool"
	"hmate/internal/service"
	"hmate/internal/transport/rest/handler"
	"hmate/internal/transport/rest/middleware"
	"hmate/internal/transport/rest/response"
	"hmate/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	QuizService     *service.QuizService
	AnalysisService *service.AnalysisService
	RoadmapService  *service.RoadmapService
	ChatService     *service.ChatService
	AuthService     *service.AuthService
	Pool            *pool.Pool
	PoolSource      string
	AIEnabled       bool
	RateLimiter     cache.RateLimiter // nil disables rate limiting
	TrustProxy      bool
	WSHandler       *ws.Handler
	FrontendURL     string
	Logger          *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()
	log := c.Logger

	quizHandler := handler.NewQuizHandler(c.QuizService, log)
	analysisHandler := handler.NewAnalysisHandler(c.AnalysisService, log)
	roadmapHandler := handler.NewRoadmapHandler(c.RoadmapService, log)
	chatHandler := handler.NewChatHandler(c.ChatService, log)
	adminHandler := handler.NewAdminHandler(c.AuthService, c.AnalysisService, c.ChatService, c.Pool, c.PoolSource, log)

	authMW := middleware.NewAuthMiddleware(c.AuthService)

	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(corsMiddleware(c.FrontendURL))

	r.NotFoundHandler = corsMiddleware(c.FrontendURL)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "")
	}))
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method tidak diizinkan")
	})

	r.HandleFunc("/health", handler.Health(c.AIEnabled)).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Static pool, no AI involved
	api.HandleFunc("/questions", quizHandler.GetQuestions).Methods("GET", "OPTIONS")
	api.HandleFunc("/smart-questions", quizHandler.SmartQuestions).Methods("POST", "OPTIONS")
	api.HandleFunc("/quizzes/{id}", quizHandler.GetQuiz).Methods("GET", "OPTIONS")
	api.HandleFunc("/results/{id}", analysisHandler.GetResult).Methods("GET", "OPTIONS")

	// AI-backed routes are rate limited when a limiter is configured
	limited := func(h http.HandlerFunc) http.Handler {
		if c.RateLimiter == nil {
			return h
		}
		return middleware.RateLimit(c.RateLimiter, c.TrustProxy, log)(h)
	}
	api.Handle("/generate-questions", limited(quizHandler.GenerateQuestions)).Methods("POST", "OPTIONS")
	api.Handle("/analyze-results", limited(analysisHandler.AnalyzeResults)).Methods("POST", "OPTIONS")
	api.Handle("/konsultasi", limited(chatHandler.Konsultasi)).Methods("POST", "OPTIONS")
	api.Handle("/roadmap/mini-test", limited(quizHandler.MiniTest)).Methods("POST", "OPTIONS")
	api.Handle("/roadmap/analyze-mini-test", limited(analysisHandler.AnalyzeMiniTest)).Methods("POST", "OPTIONS")
	api.Handle("/roadmap/generate", limited(roadmapHandler.Generate)).Methods("POST", "OPTIONS")
	api.Handle("/roadmap/next-steps", limited(roadmapHandler.NextSteps)).Methods("POST", "OPTIONS")
	api.Handle("/roadmap/consultation", limited(roadmapHandler.Consultation)).Methods("POST", "OPTIONS")

	api.HandleFunc("/roadmap/{id}", roadmapHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket consultation
	if c.WSHandler != nil {
		api.HandleFunc("/ws/konsultasi", c.WSHandler.ChatWS).Methods("GET")
	}

	// Admin
	api.HandleFunc("/admin/login", adminHandler.Login).Methods("POST", "OPTIONS")
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMW.RequireAdmin)
	admin.HandleFunc("/pool", adminHandler.PoolStats).Methods("GET", "OPTIONS")
	admin.HandleFunc("/careers/top", adminHandler.TopCareers).Methods("GET", "OPTIONS")
	admin.HandleFunc("/careers/rank", adminHandler.CareerRank).Methods("GET", "OPTIONS")
	admin.HandleFunc("/results", adminHandler.RecentResults).Methods("GET", "OPTIONS")
	admin.HandleFunc("/chats/{id}", adminHandler.Transcript).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(frontendURL string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", frontendURL)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Add("Vary", "Origin")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
