package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"buzzline/internal/adapter/backend"
	"buzzline/internal/adapter/email"
	httpadapter "buzzline/internal/adapter/http"
	"buzzline/internal/adapter/postgres"
	stripeadapter "buzzline/internal/adapter/stripe"
	"buzzline/internal/adapter/usecase"
	"buzzline/internal/config"
	"buzzline/internal/db"
)

// main is the entry point of the buzzline service. It loads
// configuration, optionally runs database migrations, initializes the
// database pool, adapters and usecases, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	backendClient := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)

	var sender email.Sender
	if cfg.SMTP.Enabled() {
		sender = email.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From)
	} else {
		sender = email.NewLogSender(logger)
	}
	mailQueue := email.NewQueue(sender, postgres.NewEmailLogStore(pool), logger)
	mailQueue.Start(ctx)

	campaigns := usecase.NewCampaignUseCase(
		backendClient,
		postgres.NewSubmissionRepository(pool),
		logger,
	)
	payments := usecase.NewPaymentUseCase(
		stripeadapter.NewVerifier(cfg.Stripe.WebhookSecret),
		backendClient,
		postgres.NewIdempotencyStore(pool),
		mailQueue,
		logger,
	)

	limiter := rate.NewLimiter(rate.Limit(cfg.HTTP.SubmitRate), cfg.HTTP.SubmitBurst)
	handler := httpadapter.NewHandler(campaigns, payments, logger, limiter)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
