package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "localhost", cfg.DBConfig.Host)
	assert.Equal(t, "cleansync_booking", cfg.DBConfig.DBName)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaConfig.Brokers)
	assert.Equal(t, "cleansync.", cfg.KafkaConfig.GroupPrefix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BOOKING_SERVICE_PORT", "9090")
	t.Setenv("BOOKING_APP_ENV", "production")
	t.Setenv("BOOKING_KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Port)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaConfig.Brokers)
}

func TestLoad_PortWithColonKeptAsIs(t *testing.T) {
	t.Setenv("BOOKING_SERVICE_PORT", ":7070")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Port)
}
