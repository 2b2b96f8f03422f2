package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayowande/custpay/internal/application"
	"github.com/ayowande/custpay/internal/application/services"
	"github.com/ayowande/custpay/internal/config"
	"github.com/ayowande/custpay/internal/infrastructure/persistence/postgres"
	"github.com/ayowande/custpay/internal/infrastructure/phone"
	"github.com/ayowande/custpay/internal/infrastructure/stripe"
	"github.com/ayowande/custpay/internal/interfaces/rest/handlers"
	"github.com/ayowande/custpay/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting customer payment service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"stripe_mocked", cfg.Stripe.Mocked,
	)

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	customerRepo := postgres.NewCustomerRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)

	phoneValidator := phone.NewValidator(cfg.Phone.DefaultRegion)

	// Exactly one charger is active per deployment, chosen here and never
	// switched at runtime.
	var cardCharger application.CardCharger
	if cfg.Stripe.Mocked {
		cardCharger = stripe.NewNoopCharger()
	} else {
		cardCharger = stripe.NewCharger(cfg.Stripe.APIKey)
	}

	registrationService := services.NewRegistrationService(customerRepo, phoneValidator)
	paymentService := services.NewPaymentService(customerRepo, paymentRepo, cardCharger)

	h := handlers.NewHandlers(registrationService, paymentService, logger)

	handler := http.Handler(h.Router())
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
