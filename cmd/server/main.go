package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qiyada/config"
	"qiyada/internal/cache"
	"qiyada/internal/repository"
	"qiyada/internal/rubric"
	"qiyada/internal/service"
	"qiyada/internal/transport/rest"
	"qiyada/internal/transport/ws"
)

// @title Qiyada Leadership Assessment API
// @version 1.0
// @description Bilingual (en/ar) leadership assessment and score reporting
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Rubric catalog is static; fail fast on an incomplete definition
	catalog := rubric.Default()
	if err := catalog.Validate(); err != nil {
		log.Fatal("Rubric validation failed:", err)
	}
	log.Printf("Rubric loaded: %d competencies", len(rubric.AllCompetencies()))

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	assessmentRepo := repository.NewAssessmentRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Initialize caches
	reportCache := cache.NewReportCache(rdb)
	scoreboard := cache.NewScoreboardCache(rdb)
	stats := cache.NewStatsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo)
	userSvc := service.NewUserService(userRepo)
	tokenSvc := service.NewTokenService(tokenRepo, userRepo, assessmentRepo, authSvc)
	assessmentSvc := service.NewAssessmentService(assessmentRepo, catalog)
	submissionSvc := service.NewSubmissionService(submissionRepo, reportRepo, assessmentRepo, tokenSvc, reportCache, scoreboard, stats, catalog)
	reportSvc := service.NewReportService(reportRepo, userRepo, reportCache, scoreboard, stats)
	webhookSvc := service.NewWebhookService()

	// Inject broadcaster (wsHub implements service.Broadcaster)
	submissionSvc.SetBroadcaster(wsHub)
	if webhookSvc.IsEnabled() {
		submissionSvc.SetWebhook(webhookSvc)
	}

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		UserService:       userSvc,
		TokenService:      tokenSvc,
		AssessmentService: assessmentSvc,
		SubmissionService: submissionSvc,
		ReportService:     reportSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/tokens/redeem")
		log.Println("  POST/GET /v1/assessments")
		log.Println("  GET  /v1/my/assessment")
		log.Println("  POST /v1/submissions")
		log.Println("  GET  /v1/my/report")
		log.Println("  GET  /v1/assessments/{id}/scoreboard")
		log.Println("  WS   /v1/ws/assessments/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
