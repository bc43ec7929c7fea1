package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"medication-reminder/config"
	_ "medication-reminder/docs" // Swagger docs
	"medication-reminder/internal/httpserver"
	"medication-reminder/pkg/gcalendar"
	"medication-reminder/pkg/log"
	"medication-reminder/pkg/scope"
)

// @title       Medication Reminder API
// @description Voice-assisted medication tracking with reminders, appointments, and doctor messaging.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Medication Reminder...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping postgres: %v", err)
	}
	logger.Infof(ctx, "Connected to postgres at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)

	// 4. Auth tokens
	if cfg.Auth.JWTSecret == "" {
		logger.Fatal(ctx, "auth.jwt_secret is required")
	}
	scopeManager := scope.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:               logger,
		Port:                 cfg.HTTPServer.Port,
		Mode:                 cfg.HTTPServer.Mode,
		Environment:          cfg.Environment.Name,
		PostgresDB:           db,
		ScopeManager:         scopeManager,
		VoiceRateLimitPerMin: cfg.Voice.RateLimitPerMin,
		Calendar:             calendarClient,
		Timezone:             cfg.GoogleCalendar.Timezone,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
