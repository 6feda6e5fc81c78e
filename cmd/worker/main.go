package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tripbook/internal/auth"
	"tripbook/internal/bookings"
	"tripbook/internal/notifications"
	"tripbook/internal/payments"
	"tripbook/internal/pricing"
	"tripbook/internal/shared/config"
	"tripbook/internal/shared/database"
	"tripbook/pkg/logger"

	"github.com/joho/godotenv"
)

// The worker owns the booking lifecycle enforcement no request handler
// triggers: it cancels pending bookings whose hold expired and
// completes confirmed bookings whose travel date passed. It also runs
// the notification consumer that turns queued events into emails.
func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		appLogger.Info("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect:", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The sweeps only touch the repository; the gateway and user
	// directory are never called from this process.
	bookingRepo := bookings.NewRepository(db.GetPostgreSQL())
	userDirectory := auth.NewUserDirectoryAdapter(auth.NewRepository(db.GetPostgreSQL()))
	bookingService := bookings.NewService(
		bookingRepo,
		pricing.NewCalculator(),
		payments.NewMockGateway(nil),
		userDirectory,
		bookings.Config{
			HoldWindow:      cfg.Booking.HoldWindow,
			DefaultCurrency: cfg.Booking.DefaultCurrency,
		},
	)

	jobs := bookings.NewJobProcessor(bookingService, &bookings.JobConfig{
		SweepInterval: cfg.Booking.SweepInterval,
	})
	jobs.Start(ctx)
	defer jobs.Stop()

	consumer := startNotificationConsumer(ctx, cfg, appLogger)
	if consumer != nil {
		defer consumer.Stop()
	}

	appLogger.Info("worker running",
		slog.Duration("sweep_interval", cfg.Booking.SweepInterval),
		slog.Bool("notification_consumer", consumer != nil),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("worker shutting down")
}

// startNotificationConsumer wires the email pipeline. SMTP settings are
// optional; without them emails are logged instead of delivered.
func startNotificationConsumer(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) notifications.NotificationConsumer {
	var emailService notifications.EmailService
	if cfg.Email.SMTPHost != "" {
		smtpService, err := notifications.NewSMTPEmailService(notifications.NewSMTPConfig(cfg.Email))
		if err != nil {
			appLogger.Error("invalid SMTP configuration, using mock email service", slog.Any("error", err))
			emailService = notifications.NewMockEmailService()
		} else {
			emailService = smtpService
		}
	} else {
		emailService = notifications.NewMockEmailService()
	}

	consumerConfig := notifications.DefaultConsumerConfig()
	consumerConfig.Brokers = cfg.Kafka.Brokers
	consumerConfig.GroupID = cfg.Kafka.ConsumerGroup
	consumerConfig.Topics = []string{cfg.Kafka.NotificationsTopic}

	consumer, err := notifications.NewKafkaNotificationConsumer(consumerConfig, emailService)
	if err != nil {
		appLogger.Error("Kafka unavailable, notification consumer disabled", slog.Any("error", err))
		return nil
	}

	if err := consumer.StartConsumers(ctx, 2); err != nil {
		appLogger.Error("failed to start notification consumers", slog.Any("error", err))
		return nil
	}

	return consumer
}
