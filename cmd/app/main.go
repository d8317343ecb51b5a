package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/rabbitmq"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := telemetry.NewLogger(os.Stdout, telemetry.ParseLevel(config.LogLevel))
	slog.SetDefault(logger)

	db, err := gorm.Open(postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	if err := cmd.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient redis.UniversalClient
	if config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.RedisAddr,
			Password: config.RedisPassword,
			DB:       config.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("connect to redis: %v", err)
		}
		defer client.Close()
		redisClient = client
	}

	var publisher ports.EventPublisher
	if config.RabbitMQURL != "" {
		p, err := rabbitmq.Dial(config.RabbitMQURL, config.RabbitMQExchange, logger)
		if err != nil {
			log.Fatalf("connect to rabbitmq: %v", err)
		}
		defer p.Close()
		publisher = p
	}

	app, err := cmd.NewCompositionRoot(config, db, redisClient, publisher, logger)
	if err != nil {
		log.Fatalf("compose application: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("create jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("start jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
