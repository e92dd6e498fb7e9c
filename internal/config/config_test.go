package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/auction-order-service/internal/config"
	"github.com/stretchr/testify/assert"
)

func validConfig() config.Config {
	cfg := config.New()
	cfg.Postgres.User = "postgres"
	cfg.Postgres.Password = "postgres"
	return cfg
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, config.StoragePostgres, cfg.Storage)
	assert.Equal(t, "X-User-ID", cfg.Auth.ActorHeader)
	assert.Equal(t, "auction.won", cfg.Kafka.AuctionWonTopic)
	assert.Equal(t, "order.events", cfg.Kafka.OrderEventsTopic)
	assert.Equal(t, config.PaymentStub, cfg.Payment.URL)
	assert.False(t, cfg.Tracing.Enabled)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("STORAGE", "memory")
	t.Setenv("KAFKA_ENABLED", "false")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	cfg := config.New()

	assert.Equal(t, config.StorageMemory, cfg.Storage)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.Capacity, "invalid value falls back to default")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.Config) {}},
		{
			name:    "postgres credentials missing",
			mutate:  func(c *config.Config) { c.Postgres.User = "" },
			wantErr: true,
		},
		{
			name: "memory storage ignores postgres",
			mutate: func(c *config.Config) {
				c.Storage = config.StorageMemory
				c.Postgres = config.Postgres{}
			},
		},
		{
			name:    "unknown storage",
			mutate:  func(c *config.Config) { c.Storage = "redis" },
			wantErr: true,
		},
		{
			name:    "unknown env",
			mutate:  func(c *config.Config) { c.Env = "dev" },
			wantErr: true,
		},
		{
			name:    "payment url",
			mutate:  func(c *config.Config) { c.Payment.URL = "https://pay.example.com" },
			wantErr: false,
		},
		{
			name:    "payment url garbage",
			mutate:  func(c *config.Config) { c.Payment.URL = "pay me" },
			wantErr: true,
		},
		{
			name:    "kafka enabled without topic",
			mutate:  func(c *config.Config) { c.Kafka.AuctionWonTopic = "" },
			wantErr: true,
		},
		{
			name: "kafka disabled without topic",
			mutate: func(c *config.Config) {
				c.Kafka.Enabled = false
				c.Kafka.AuctionWonTopic = ""
			},
		},
		{
			name:    "empty actor header",
			mutate:  func(c *config.Config) { c.Auth.ActorHeader = "" },
			wantErr: true,
		},
		{
			name:    "zero cache capacity",
			mutate:  func(c *config.Config) { c.Cache.Capacity = 0 },
			wantErr: true,
		},
		{
			name: "tracing enabled without endpoint",
			mutate: func(c *config.Config) {
				c.Tracing.Enabled = true
				c.Tracing.Endpoint = ""
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
