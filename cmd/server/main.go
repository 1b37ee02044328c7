package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/PawleN-D/africompliance-api/internal/config"
	"github.com/PawleN-D/africompliance-api/internal/documents"
	documentsrouter "github.com/PawleN-D/africompliance-api/internal/documents/router"
	"github.com/PawleN-D/africompliance-api/internal/hscode"
	"github.com/PawleN-D/africompliance-api/internal/hscode/dataset"
	hscoderouter "github.com/PawleN-D/africompliance-api/internal/hscode/router"
	"github.com/PawleN-D/africompliance-api/internal/middleware"
	"github.com/PawleN-D/africompliance-api/internal/trade"
	traderouter "github.com/PawleN-D/africompliance-api/internal/trade/router"
	"github.com/PawleN-D/africompliance-api/internal/verification"
	verificationrouter "github.com/PawleN-D/africompliance-api/internal/verification/router"
)

const (
	appName    = "AfriCompliance API"
	appVersion = "1.0.0"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.Info("configuration loaded successfully",
		"hs_data_source", cfg.HSData.Type,
		"rate_limit_enabled", cfg.RateLimit.Enabled,
		"rate_limit_per_hour", cfg.RateLimit.RequestsPerHour,
	)

	slog.Info("CORS configuration",
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"allowed_methods", cfg.CORS.AllowedMethods,
		"allowed_headers", cfg.CORS.AllowedHeaders,
		"allow_credentials", cfg.CORS.AllowCredentials,
		"max_age", cfg.CORS.MaxAge,
	)

	slog.Info("server configuration",
		"port", cfg.Server.Port,
	)

	// Load the HS code reference table
	ctx := context.Background()
	driver, err := dataset.NewDriverFromConfig(ctx, cfg.HSData)
	if err != nil {
		log.Fatalf("failed to initialize HS dataset driver: %v", err)
	}
	hsService, err := hscode.NewService(ctx, driver)
	if err != nil {
		log.Fatalf("failed to load HS code table: %v", err)
	}

	// Initialize services
	verificationService := verification.NewService(time.Duration(cfg.Cache.VerificationTTLDays) * 24 * time.Hour)
	calculator := trade.NewCalculator()
	documentService := documents.NewService()

	// Initialize routers
	vr := verificationrouter.NewVerificationRouter(verificationService)
	tr := traderouter.NewTradeRouter(calculator, verificationService)
	dr := documentsrouter.NewDocumentsRouter(documentService)
	hr := hscoderouter.NewHSCodeRouter(hsService)

	// Set up HTTP routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handleRoot)
	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("POST /v1/verify/business/za", vr.HandleVerifyBusiness)
	mux.HandleFunc("POST /v1/calculate/trade", tr.HandleCalculateTrade)
	mux.HandleFunc("POST /v1/documents/checklist", dr.HandleGenerateChecklist)
	mux.HandleFunc("GET /v1/documents/info/{documentName}", dr.HandleGetDocumentInfo)
	mux.HandleFunc("POST /v1/hs-codes/search", hr.HandleSearch)
	mux.HandleFunc("POST /v1/hs-codes/lookup", hr.HandleLookup)
	mux.HandleFunc("GET /v1/hs-codes/categories", hr.HandleGetCategories)
	mux.HandleFunc("GET /v1/hs-codes/chapter/{chapter}", hr.HandleGetChapter)
	mux.HandleFunc("GET /v1/hs-codes/popular", hr.HandleGetPopular)

	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)

	// Wrap handler with rate limiting and CORS middleware
	handler := middleware.RateLimit(&cfg.RateLimit)(mux)
	handler = middleware.CORS(&cfg.CORS)(handler)

	server := &http.Server{
		Addr:    serverAddr,
		Handler: handler,
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	// Wait for interrupt signal
	<-quit
	slog.Info("shutting down server...")

	// Create a context with timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown of HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	} else {
		slog.Info("server gracefully stopped")
	}

	slog.Info("server stopped")
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"service":   appName,
		"version":   appVersion,
		"status":    "operational",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status": "healthy",
		"services": map[string]string{
			"cipc":     "operational",
			"hs_codes": "operational",
			"cache":    "operational",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
