package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"hmate/config"
	"hmate/internal/cache"
	aiconfig "hmate/internal/config"
	"hmate/internal/logger"
	"hmate/internal/pool"
	"hmate/internal/repository"
	"hmate/internal/selector"
	"hmate/internal/service"
	"hmate/internal/transport/rest"
	"hmate/internal/transport/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	aiCfg, err := aiconfig.LoadAIConfig()
	if err != nil {
		log.Fatal("failed to load AI config", zap.Error(err))
	}

	log.Info("starting H-Mate API", zap.Stringer("config", cfg))
	log.Info("AI config",
		zap.String("questions", aiCfg.Models.Questions),
		zap.String("analysis", aiCfg.Models.Analysis),
		zap.String("chat", aiCfg.Models.Chat),
		zap.String("roadmap", aiCfg.Models.Roadmap),
		zap.Bool("apiKeyConfigured", aiCfg.IsEnabled()),
	)
	if !cfg.AdminEnabled() {
		log.Warn("ADMIN_PASSWORD not set, admin login is disabled")
	}
	if !aiCfg.IsEnabled() {
		log.Warn("GEMINI_API_KEY not set, AI endpoints will answer 503 and quizzes come from the pool")
	}

	ctx := context.Background()

	// MongoDB (optional)
	var db *mongo.Database
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("failed to connect to MongoDB", zap.Error(err))
		}
		defer mongoClient.Disconnect(context.Background())

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = mongoClient.Ping(pingCtx, nil)
		cancel()
		if err != nil {
			log.Fatal("failed to ping MongoDB", zap.Error(err))
		}
		db = mongoClient.Database(cfg.MongoDB)
		log.Info("connected to MongoDB", zap.String("database", cfg.MongoDB))
	} else {
		log.Warn("MONGO_URI not set, results and transcripts will not be stored")
	}

	// Redis (optional)
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("failed to ping Redis", zap.Error(err))
		}
		log.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))
	} else {
		log.Warn("REDIS_ADDR not set, quiz/roadmap lookup and rate limiting are disabled")
	}

	// Question pool
	questionPool := pool.Default()
	if cfg.PoolSource == config.PoolSourceMongo {
		loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		questionPool, err = repository.NewQuestionRepo(db, log).LoadCatalogue(loadCtx)
		cancel()
		if err != nil {
			log.Fatal("failed to load question catalogue", zap.Error(err))
		}
	}
	if len(questionPool.Tiers()) == 0 {
		log.Fatal("question pool has no templates", zap.String("source", cfg.PoolSource))
	}
	for _, s := range questionPool.Stats() {
		log.Info("question pool", zap.String("tier", string(s.Tier)), zap.Int("templates", s.Total))
	}

	// Repositories and caches; interfaces stay nil when their store is absent
	var (
		results     repository.ResultRepo
		transcripts repository.ChatRepo
		quizzes     cache.QuizCache
		roadmaps    cache.RoadmapCache
		trends      cache.CareerTrends
		limiter     cache.RateLimiter
	)
	if db != nil {
		results = repository.NewResultRepo(db)
		transcripts = repository.NewChatRepo(db)
	}
	if rdb != nil {
		quizzes = cache.NewQuizCache(rdb)
		roadmaps = cache.NewRoadmapCache(rdb)
		trends = cache.NewCareerTrends(rdb)
		if cfg.RateLimitPerMinute > 0 {
			limiter = cache.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
		}
	}

	// Services
	gemini := service.NewGeminiClient(aiCfg, log)
	sel := selector.New(questionPool)

	quizSvc := service.NewQuizService(sel, gemini, aiCfg.Models, quizzes, log)
	analysisSvc := service.NewAnalysisService(gemini, aiCfg.Models, results, trends, log)
	roadmapSvc := service.NewRoadmapService(gemini, aiCfg.Models, roadmaps, log)
	chatSvc := service.NewChatService(gemini, aiCfg.Models, transcripts, log)
	authSvc := service.NewAuthService(cfg.AdminUsername, cfg.AdminPassword, cfg.JWTSecret)

	wsHub := ws.NewHub(log)
	wsHandler := ws.NewHandler(wsHub, chatSvc, transcripts, cfg.FrontendURL, log)

	router := rest.NewRouter(&rest.Container{
		QuizService:     quizSvc,
		AnalysisService: analysisSvc,
		RoadmapService:  roadmapSvc,
		ChatService:     chatSvc,
		AuthService:     authSvc,
		Pool:            questionPool,
		PoolSource:      cfg.PoolSource,
		AIEnabled:       aiCfg.IsEnabled(),
		RateLimiter:     limiter,
		TrustProxy:      cfg.TrustProxy,
		WSHandler:       wsHandler,
		FrontendURL:     cfg.FrontendURL,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("frontend", cfg.FrontendURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	wsHub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
