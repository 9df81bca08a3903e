package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndGet(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "redis", cfg.Realtime.Driver)
	assert.Equal(t, "owner-events", cfg.Realtime.Topic)
	assert.Equal(t, ".owner-dashboard", cfg.Storage.Dir)
	assert.Equal(t, "http://localhost:3000", cfg.Site.PublicURL)

	// Get hands back the same loaded configuration.
	assert.Same(t, cfg, Get())

	// Load is once-per-process: a second call returns the same instance.
	again, err := Load("")
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}

func TestNewKafkaReader(t *testing.T) {
	t.Setenv("KAFKA_BROKER", "localhost:9092")

	reader := NewKafkaReader("owner-events", "owner-dashboard-u1")
	require.NotNil(t, reader)
	defer reader.Close()

	assert.Equal(t, "owner-events", reader.Config().Topic)
	assert.Equal(t, "owner-dashboard-u1", reader.Config().GroupID)
	assert.Equal(t, []string{"localhost:9092"}, reader.Config().Brokers)
}
