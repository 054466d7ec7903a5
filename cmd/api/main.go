package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/internal/intent"
	"calendar-assistant/pkg/encrypter"
	"calendar-assistant/pkg/groq"
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/scope"
)

// @title       JustScheduleIt API
// @description Conversational Google Calendar assistant: natural-language commands in, calendar changes out.
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

	logger.Info(ctx, "Starting JustScheduleIt backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to create postgres pool: ", err)
		return
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Error(ctx, "Failed to reach postgres: ", err)
		return
	}

	// 4. Shared infrastructure
	jwtManager := scope.NewManager(cfg.Session.JWTSecret, cfg.Session.Expiry)

	enc, err := encrypter.New(cfg.Encryption.Key)
	if err != nil {
		logger.Error(ctx, "Failed to initialize encrypter: ", err)
		return
	}

	groqClient, err := groq.New(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		Model:   cfg.Groq.Model,
		BaseURL: cfg.Groq.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Groq client: ", err)
		return
	}
	parser := intent.New(groqClient, logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  pool,
		JWTManager:  jwtManager,
		Encrypter:   enc,
		Parser:      parser,
		Google:      cfg.Google,
		Session:     cfg.Session,
		Assistant:   cfg.Assistant,
		CORS:        cfg.CORS,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
