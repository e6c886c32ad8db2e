package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midhunrajcharles/SyndicateIQ/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GRPC_PORT", "HTTP_PORT", "DATA_SOURCE", "KAFKA_BROKERS", "GRPC_REFLECTION", "DB_MAX_CONNS"} {
		t.Setenv(k, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8090", cfg.GRPCAddress())
	assert.Equal(t, ":9090", cfg.HTTPAddress())
	assert.Equal(t, config.SourceFixtures, cfg.DataSource)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.False(t, cfg.GRPCReflection)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.False(t, cfg.TLS.Enabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GRPC_PORT", "7000")
	t.Setenv("HTTP_PORT", "7001")
	t.Setenv("DATA_SOURCE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/siq")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("GRPC_REFLECTION", "true")
	t.Setenv("DB_MAX_CONNS", "25")

	cfg := config.Load()

	assert.Equal(t, ":7000", cfg.GRPCAddress())
	assert.Equal(t, ":7001", cfg.HTTPAddress())
	assert.Equal(t, config.SourcePostgres, cfg.DataSource)
	assert.Equal(t, "postgres://u:p@db:5432/siq", cfg.Database.URL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.GRPCReflection)
	assert.Equal(t, int32(25), cfg.Database.MaxConns)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{"fixtures are valid", func(c *config.Config) {}, ""},
		{"unknown source", func(c *config.Config) { c.DataSource = "mysql" }, "unknown DATA_SOURCE"},
		{"postgres without url", func(c *config.Config) {
			c.DataSource = config.SourcePostgres
			c.Database.URL = ""
		}, "DATABASE_URL is required"},
		{"half configured tls", func(c *config.Config) { c.TLS.CertFile = "server.crt" }, "must be set together"},
		{"brokers without topic", func(c *config.Config) {
			c.Kafka.Brokers = []string{"k1:9092"}
			c.Kafka.Topic = ""
		}, "KAFKA_TOPIC is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				DataSource: config.SourceFixtures,
				Database:   config.DatabaseConfig{URL: "postgres://localhost/siq"},
				Kafka:      config.KafkaConfig{Topic: "events"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
