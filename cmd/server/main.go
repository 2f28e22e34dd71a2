package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/fitsight/fitsight-backend/internal/analysis"
	"github.com/fitsight/fitsight-backend/internal/auth"
	"github.com/fitsight/fitsight-backend/internal/config"
	"github.com/fitsight/fitsight-backend/internal/db"
	"github.com/fitsight/fitsight-backend/internal/handler"
	"github.com/fitsight/fitsight-backend/internal/middleware"
	"github.com/fitsight/fitsight-backend/internal/repository"
)

func main() {
	seedUser := flag.Int64("seed", 0, "seed 40 days of demo data for the given user id and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	database, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	if *seedUser > 0 {
		if err := db.Seed(database, *seedUser); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
		return
	}

	userRepo := repository.NewUserRepository(database)
	workoutRepo := repository.NewWorkoutRepository(database)
	healthRepo := repository.NewHealthRepository(database)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	analyzer := analysis.NewClient(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout)

	authHandler := handler.NewAuthHandler(userRepo, tokens)
	userHandler := handler.NewUserHandler(userRepo)
	workoutHandler := handler.NewWorkoutHandler(workoutRepo)
	healthHandler := handler.NewHealthHandler(healthRepo)
	analysisHandler := handler.NewAnalysisHandler(workoutRepo, healthRepo, analyzer)

	loginRL := middleware.NewRateLimiter(5, 15*time.Minute)
	analyzeRL := middleware.NewRateLimiter(10, time.Minute)

	r := mux.NewRouter()

	// Global middleware: CORS → Security Headers → RequestID → MaxBytesReader
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			next.ServeHTTP(w, r)
		})
	})

	r.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet, http.MethodOptions)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.APIKey(cfg.APIKey))

	api.Handle("/auth/login", loginRL.Middleware(http.HandlerFunc(authHandler.Login))).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/refresh", http.HandlerFunc(authHandler.Refresh)).Methods(http.MethodPost, http.MethodOptions)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Auth(tokens))

	protected.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/users", userHandler.GetAll).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/{id}", userHandler.GetByID).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/users/{id}/workouts", workoutHandler.Create).Methods(http.MethodPost, http.MethodOptions)
	protected.HandleFunc("/users/{id}/health-data", healthHandler.Create).Methods(http.MethodPost, http.MethodOptions)

	protected.HandleFunc("/me/workouts", workoutHandler.ListMine).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/me/workouts/recent", workoutHandler.Recent).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/me/workouts/last-intensity", workoutHandler.LastIntensity).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/me/workouts/recovery-gap", workoutHandler.RecoveryGap).Methods(http.MethodGet, http.MethodOptions)

	protected.HandleFunc("/me/health-data", healthHandler.ListMine).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/me/health-data/recent", healthHandler.Recent).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/me/health-data/sleep-quality", healthHandler.SleepQuality).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/me/health-data/resting-hr-hrv-trends", healthHandler.RestingTrend).Methods(http.MethodGet, http.MethodOptions)
	protected.HandleFunc("/me/health-data/steps-activity-trends", healthHandler.ActivitySteps).Methods(http.MethodGet, http.MethodOptions)

	protected.Handle("/analyze/workouts", analyzeRL.Middleware(http.HandlerFunc(analysisHandler.AnalyzeWorkouts))).Methods(http.MethodPost, http.MethodOptions)
	protected.Handle("/analyze/health", analyzeRL.Middleware(http.HandlerFunc(analysisHandler.AnalyzeHealth))).Methods(http.MethodPost, http.MethodOptions)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}
