package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catering/cmd"
	httpadapter "catering/internal/adapters/in/http"
	"catering/internal/adapters/out/postgres"
	"catering/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("failed to close messaging", "error", closeErr)
		}
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:                envOr("HTTP_PORT", "8080"),
		DBHost:                  os.Getenv("DB_HOST"),
		DBPort:                  envOr("DB_PORT", "5432"),
		DBUser:                  os.Getenv("DB_USER"),
		DBPassword:              os.Getenv("DB_PASSWORD"),
		DBName:                  os.Getenv("DB_NAME"),
		DBSslMode:               envOr("DB_SSLMODE", "disable"),
		KafkaBrokers:            os.Getenv("KAFKA_BROKERS"),
		KafkaOrderEventsTopic:   envOr("KAFKA_ORDER_EVENTS_TOPIC", "catering.order-events"),
		KafkaNotificationsTopic: envOr("KAFKA_NOTIFICATIONS_TOPIC", "catering.notifications"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		ReminderCron:            envOr("REMINDER_CRON", jobs.DefaultReminderSchedule),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, logger *slog.Logger) {
	auth, err := httpadapter.NewAuthenticator(configs.JWTSecret)
	if err != nil {
		log.Fatalf("failed to configure authentication: %v", err)
	}
	e := httpadapter.NewRouter(app.CreateHTTPServer(), auth, app.Metrics())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.Info("http server listening", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
