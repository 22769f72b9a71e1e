package main

import (
	"encoding/json"
	stdlog "log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/username/tillboard/backend/src/config"
	"github.com/username/tillboard/backend/src/handlers"
	"github.com/username/tillboard/backend/src/logger"
	"github.com/username/tillboard/backend/src/normalize"
	"github.com/username/tillboard/backend/src/processors"
	"github.com/username/tillboard/backend/src/providers"
	"github.com/username/tillboard/backend/src/security"
	"github.com/username/tillboard/backend/src/services"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		reqLogger := logger.L.With("requestID", requestID)
		reqLogger.Debug("Request received", "method", r.Method, "path", r.URL.Path)
		ctx := logger.WithContext(r.Context(), reqLogger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == config.Cfg.AllowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Requested-With")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			logger.L.Debug("Handling OPTIONS preflight request", "path", r.URL.Path, "origin", origin)
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Tillboard backend server starting...", "provider", config.Cfg.Provider)

	if config.Cfg.JWTSecret == "" || len(config.Cfg.JWTSecret) < 32 {
		logger.L.Error("JWT_SECRET configuration invalid. Must be at least 32 bytes.")
		os.Exit(1)
	}

	logger.L.Info("Initializing upstream provider client...")
	client, err := providers.ForProvider(config.Cfg.Provider, providers.Options{
		SumUpBaseURL:      config.Cfg.SumUpBaseURL,
		SumUpAPIKey:       config.Cfg.SumUpAPIKey,
		GoodTillBaseURL:   config.Cfg.GoodTillBaseURL,
		GoodTillSubdomain: config.Cfg.GoodTillSubdomain,
		Timeout:           config.Cfg.UpstreamTimeout,
	})
	if err != nil {
		logger.L.Error("Failed to initialize provider client", "error", err)
		os.Exit(1)
	}

	normalizer, err := normalize.ForProvider(config.Cfg.Provider)
	if err != nil {
		logger.L.Error("Failed to initialize record normalizer", "error", err)
		os.Exit(1)
	}

	logger.L.Info("Initializing services and handlers...")
	authService := security.NewAuthService(config.Cfg.JWTSecret)
	merchantService := services.NewMerchantService(config.Cfg.MerchantCacheTTL)

	policy := processors.ParsePolicy(config.Cfg.UnknownStatusPolicy)
	analyticsService := services.NewAnalyticsService(
		client, normalizer, merchantService,
		processors.NewSummaryProcessor(policy),
		processors.NewDailyProcessor(),
		processors.NewHourlyProcessor(),
		processors.NewBreakdownProcessor(),
		processors.NewOutletProcessor(),
		config.Cfg.FetchLimit,
	)

	authHandler := handlers.NewAuthHandler(authService, client, config.Cfg.SessionTokenExpiry)
	merchantHandler := handlers.NewMerchantHandler(analyticsService)
	txHandler := handlers.NewTransactionHandler(analyticsService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// GoodTill requests carry a per-session upstream credential; SumUp
	// uses the static API key from config.
	withSession := func(handler http.HandlerFunc) http.HandlerFunc {
		if config.Cfg.Provider == "goodtill" {
			return authHandler.SessionMiddleware(handler)
		}
		return handler
	}

	logger.L.Info("Configuring routes...")
	rootMux := http.NewServeMux()
	apiRouter := http.NewServeMux()

	apiRouter.HandleFunc("POST /api/login", authHandler.HandleLogin)
	apiRouter.HandleFunc("GET /api/debug", handlers.HandleDebug)

	apiRouter.HandleFunc("GET /api/merchant", withSession(merchantHandler.HandleGetMerchant))
	apiRouter.HandleFunc("GET /api/transactions", withSession(txHandler.HandleGetTransactions))
	apiRouter.HandleFunc("GET /api/analytics/summary", withSession(analyticsHandler.HandleGetSummary))
	apiRouter.HandleFunc("GET /api/analytics/daily", withSession(analyticsHandler.HandleGetDaily))
	apiRouter.HandleFunc("GET /api/analytics/hourly", withSession(analyticsHandler.HandleGetHourly))
	apiRouter.HandleFunc("GET /api/analytics/card-types", withSession(analyticsHandler.HandleGetCardTypes))
	apiRouter.HandleFunc("GET /api/analytics/payment-types", withSession(analyticsHandler.HandleGetPaymentTypes))
	apiRouter.HandleFunc("GET /api/analytics/outlets", withSession(analyticsHandler.HandleGetOutlets))

	rootMux.Handle("/api/", apiRouter)

	rootMux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"message": "Tillboard backend is running"})
		} else {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				logger.L.Warn("Root level path not found", "method", r.Method, "path", r.URL.Path)
				http.NotFound(w, r)
			}
		}
	})

	logger.L.Info("Applying global middleware...")
	finalHandler := enableCORS(rateLimitMiddleware(requestIDMiddleware(rootMux)))

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      finalHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
