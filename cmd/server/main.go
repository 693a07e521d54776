package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forgo/relay/api/internal/config"
	"github.com/forgo/relay/api/internal/database"
	"github.com/forgo/relay/api/internal/handler"
	"github.com/forgo/relay/api/internal/middleware"
	"github.com/forgo/relay/api/internal/repository"
	"github.com/forgo/relay/api/internal/service"
	"github.com/forgo/relay/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		Secret:     []byte(cfg.Auth.TokenSecret),
		Issuer:     cfg.Auth.Issuer,
		Expiration: cfg.Auth.TokenTTL,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	memberRepo := repository.NewMemberRepository(db)

	// Initialize services
	clients := make([]service.Client, 0, len(cfg.Auth.Clients))
	for _, c := range cfg.Auth.Clients {
		clients = append(clients, service.Client{ID: c.ID, SecretHash: c.SecretHash})
	}
	tokenService := service.NewTokenService(service.TokenServiceConfig{
		JWTService: jwtService,
		Clients:    clients,
	})

	memberService := service.NewMemberService(service.MemberServiceConfig{
		Repo: memberRepo,
	})

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		PerMinute: cfg.RateLimit.PerMinute,
		Burst:     cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	memberHandler := handler.NewMemberHandler(handler.MemberHandlerConfig{Service: memberService})
	tokenHandler := handler.NewTokenHandler(handler.TokenHandlerConfig{Service: tokenService})
	healthHandler := handler.NewHealthHandler(db)

	// Create router and register routes
	mux := http.NewServeMux()

	// Operational endpoints (public)
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth endpoints (public)
	mux.Handle("POST /v1/auth/token", tokenHandler.Issue())

	// Member endpoints (guarded)
	guard := middleware.Guard(tokenService, middleware.GuardConfig{
		Verify:      cfg.Auth.VerifyTokens,
		RedirectURL: cfg.Auth.RedirectURL,
	})
	mux.Handle("POST /v1/members", guard(memberHandler.Register()))
	mux.Handle("GET /v1/members", guard(http.HandlerFunc(memberHandler.List)))
	mux.Handle("GET /v1/members/{memberId}", guard(http.HandlerFunc(memberHandler.Get)))
	mux.Handle("DELETE /v1/members/{memberId}", guard(http.HandlerFunc(memberHandler.Remove)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Metrics,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
