package cmd

import (
	"log/slog"
	"testing"
	"time"

	"tracking/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

var discard = slog.New(slog.DiscardHandler)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig(envOf(nil), discard)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, 5*time.Second, cfg.RemoteTimeout)
	assert.InDelta(t, DefaultDeliveryZone, cfg.DefaultDeliveryZone, 1e-9)
	assert.Equal(t, time.Hour, cfg.TransitDuration)
	assert.Equal(t, jobs.DefaultLiveTrackingSchedule, cfg.TrackingJobSchedule)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg := LoadConfig(envOf(map[string]string{
		"HTTP_PORT":             "9090",
		"DB_HOST":               "db",
		"DB_NAME":               "deliveries",
		"USERS_SERVICE_URL":     "http://users:8080",
		"ORDERS_SERVICE_URL":    "http://orders:8080",
		"REMOTE_TIMEOUT":        "750ms",
		"DEFAULT_DELIVERY_ZONE": "2500",
		"TRANSIT_DURATION":      "45m",
		"TRACKING_JOB_SCHEDULE": "*/30 * * * * *",
	}), discard)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "deliveries", cfg.DBName)
	assert.Equal(t, "http://users:8080", cfg.UsersServiceURL)
	assert.Equal(t, "http://orders:8080", cfg.OrdersServiceURL)
	assert.Equal(t, 750*time.Millisecond, cfg.RemoteTimeout)
	assert.InDelta(t, 2500.0, cfg.DefaultDeliveryZone, 1e-9)
	assert.Equal(t, 45*time.Minute, cfg.TransitDuration)
	assert.Equal(t, "*/30 * * * * *", cfg.TrackingJobSchedule)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(t *testing.T, cfg Config)
	}{
		{
			name: "unparsable timeout", key: "REMOTE_TIMEOUT", value: "soon",
			check: func(t *testing.T, cfg Config) { assert.Equal(t, 5*time.Second, cfg.RemoteTimeout) },
		},
		{
			name: "negative transit", key: "TRANSIT_DURATION", value: "-5m",
			check: func(t *testing.T, cfg Config) { assert.Equal(t, time.Hour, cfg.TransitDuration) },
		},
		{
			name: "negative zone", key: "DEFAULT_DELIVERY_ZONE", value: "-1",
			check: func(t *testing.T, cfg Config) { assert.InDelta(t, DefaultDeliveryZone, cfg.DefaultDeliveryZone, 1e-9) },
		},
		{
			name: "NaN zone", key: "DEFAULT_DELIVERY_ZONE", value: "NaN",
			check: func(t *testing.T, cfg Config) { assert.InDelta(t, DefaultDeliveryZone, cfg.DefaultDeliveryZone, 1e-9) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, LoadConfig(envOf(map[string]string{tt.key: tt.value}), discard))
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "tracking", DBSslMode: "disable",
	}

	require.Equal(t, "host=db port=5432 user=u password=p dbname=tracking sslmode=disable", cfg.DSN())
}
