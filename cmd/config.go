package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StockCacheTTL time.Duration

	RabbitMQURL      string
	RabbitMQExchange string

	ShippingTariffKind string
	ShippingTariffRate decimal.Decimal

	PaymentWindow   time.Duration
	ExpirySchedule  string
	ExpiryBatchSize int
}

// DSN returns the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads .env from path when it exists, then the environment.
// Every malformed value is reported, not only the first.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}

	var p parser
	config := Config{
		HTTPPort: env("HTTP_PORT", "8080"),
		LogLevel: env("LOG_LEVEL", "info"),

		DBHost:     env("DB_HOST", "localhost"),
		DBPort:     env("DB_PORT", "5432"),
		DBUser:     env("DB_USER", "postgres"),
		DBPassword: env("DB_PASSWORD", ""),
		DBName:     env("DB_NAME", "marketplace"),
		DBSslMode:  env("DB_SSLMODE", "disable"),

		RedisAddr:     env("REDIS_ADDR", ""),
		RedisPassword: env("REDIS_PASSWORD", ""),
		RedisDB:       p.intVar("REDIS_DB", 0),
		StockCacheTTL: p.durationVar("STOCK_CACHE_TTL", 30*time.Second),

		RabbitMQURL:      env("RABBITMQ_URL", ""),
		RabbitMQExchange: env("RABBITMQ_EXCHANGE", "marketplace.orders"),

		ShippingTariffKind: env("SHIPPING_TARIFF_KIND", "DistanceBand"),
		ShippingTariffRate: p.decimalVar("SHIPPING_TARIFF_RATE", decimal.RequireFromString("8.00")),

		PaymentWindow:   p.durationVar("UNPAID_ORDER_WINDOW", 72*time.Hour),
		ExpirySchedule:  env("UNPAID_ORDER_EXPIRY_SCHEDULE", "0 * * * * *"),
		ExpiryBatchSize: p.intVar("UNPAID_ORDER_EXPIRY_BATCH_SIZE", 100),
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return config, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

type parser struct {
	errs []error
}

func (p *parser) intVar(key string, fallback int) int {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return n
}

func (p *parser) durationVar(key string, fallback time.Duration) time.Duration {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return d
}

func (p *parser) decimalVar(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return fallback
	}
	return d
}
