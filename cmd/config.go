package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"tracking/internal/adapters/out/remote"
	"tracking/internal/core/domain/services"
	"tracking/internal/jobs"
)

// DefaultDeliveryZone is the radius given to vendors created without an explicit zone.
const DefaultDeliveryZone = 10.0

// Config holds the settings read from the environment by LoadConfig.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	UsersServiceURL  string
	OrdersServiceURL string
	RemoteTimeout    time.Duration

	DefaultDeliveryZone float64
	TransitDuration     time.Duration
	TrackingJobSchedule string
}

// LoadConfig reads the configuration through getenv. Empty keys take their default and values
// that do not parse fall back to the default with a warning.
func LoadConfig(getenv func(string) string, logger *slog.Logger) Config {
	if logger == nil {
		logger = slog.Default()
	}
	r := envReader{getenv: getenv, logger: logger}

	return Config{
		HTTPPort:   r.str("HTTP_PORT", "8080"),
		DBHost:     r.str("DB_HOST", "localhost"),
		DBPort:     r.str("DB_PORT", "5432"),
		DBUser:     r.str("DB_USER", "postgres"),
		DBPassword: r.str("DB_PASSWORD", ""),
		DBName:     r.str("DB_NAME", "tracking"),
		DBSslMode:  r.str("DB_SSLMODE", "disable"),

		UsersServiceURL:  r.str("USERS_SERVICE_URL", "http://localhost:8081"),
		OrdersServiceURL: r.str("ORDERS_SERVICE_URL", "http://localhost:8082"),
		RemoteTimeout:    r.duration("REMOTE_TIMEOUT", remote.DefaultTimeout),

		DefaultDeliveryZone: r.nonNegative("DEFAULT_DELIVERY_ZONE", DefaultDeliveryZone),
		TransitDuration:     r.duration("TRANSIT_DURATION", services.DefaultTransitDuration),
		TrackingJobSchedule: r.str("TRACKING_JOB_SCHEDULE", jobs.DefaultLiveTrackingSchedule),
	}
}

// DSN is the gorm/pgx connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

type envReader struct {
	getenv func(string) string
	logger *slog.Logger
}

func (r envReader) str(key string, def string) string {
	if v := r.getenv(key); v != "" {
		return v
	}
	return def
}

func (r envReader) duration(key string, def time.Duration) time.Duration {
	raw := r.getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		r.logger.Warn("invalid duration, using default", "key", key, "value", raw, "default", def.String())
		return def
	}
	return d
}

func (r envReader) nonNegative(key string, def float64) float64 {
	raw := r.getenv(key)
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		r.logger.Warn("invalid number, using default", "key", key, "value", raw, "default", def)
		return def
	}
	return f
}
