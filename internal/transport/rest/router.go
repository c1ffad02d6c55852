package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"qiyada/internal/service"
	"qiyada/internal/transport/rest/handler"
	"qiyada/internal/transport/rest/middleware"
	"qiyada/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	UserService       *service.UserService
	TokenService      *service.TokenService
	AssessmentService *service.AssessmentService
	SubmissionService *service.SubmissionService
	ReportService     *service.ReportService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.UserService)
	tokenHandler := handler.NewTokenHandler(c.TokenService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/tokens/redeem", tokenHandler.Redeem).Methods("POST", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/assessments/{assessmentId}", wsHandler.AdminWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}", assessmentHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}/tokens", tokenHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}/scoreboard", reportHandler.Scoreboard).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}/stats", reportHandler.QuestionStats).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/tokens", tokenHandler.Mint).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/tokens/{tokenId}/revoke", tokenHandler.Revoke).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/users/admins", userHandler.CreateAdmin).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/users/{userId}", userHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/users/{userId}", userHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/users/{userId}/reports", reportHandler.ListByUser).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/reports/{reportId}", reportHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/submissions/{submissionId}/report", reportHandler.GetBySubmission).Methods("GET", "OPTIONS")

	// Candidate routes (require candidate auth)
	candidateRoutes := v1.NewRoute().Subrouter()
	candidateRoutes.Use(authMW.RequireCandidate)

	candidateRoutes.HandleFunc("/my/assessment", assessmentHandler.GetForCandidate).Methods("GET", "OPTIONS")
	candidateRoutes.HandleFunc("/my/report", reportHandler.GetMine).Methods("GET", "OPTIONS")
	candidateRoutes.HandleFunc("/submissions", submissionHandler.Submit).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
