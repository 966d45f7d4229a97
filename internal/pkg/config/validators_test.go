package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akozlova/marketplace-be/internal/pkg/config"
)

func validConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Environment: "development",
		},
		Database: config.DatabaseConfig{
			Host:           "localhost",
			Name:           "marketplace_backoffice",
			Password:       "secret",
			SSLMode:        "disable",
			MaxConnections: 25,
			MinConnections: 5,
		},
		Redis: config.RedisConfig{
			PoolSize: 10,
		},
		Security: config.SecurityConfig{
			JWTSecret:         "a-reasonably-long-development-secret-value",
			RateLimitRequests: 100,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
		},
		Server: config.ServerConfig{
			Port: "8080",
		},
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts_valid_development_config", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "missing_database_host",
			mutate:  func(c *config.Config) { c.Database.Host = "" },
			wantErr: "database host",
		},
		{
			name:    "missing_server_port",
			mutate:  func(c *config.Config) { c.Server.Port = "" },
			wantErr: "server port",
		},
		{
			name:    "max_connections_below_min",
			mutate:  func(c *config.Config) { c.Database.MaxConnections = 2 },
			wantErr: "max_connections",
		},
		{
			name:    "zero_redis_pool",
			mutate:  func(c *config.Config) { c.Redis.PoolSize = 0 },
			wantErr: "pool_size",
		},
		{
			name:    "zero_rate_limit",
			mutate:  func(c *config.Config) { c.Security.RateLimitRequests = 0 },
			wantErr: "rate_limit_requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigValidate_Production(t *testing.T) {
	productionConfig := func() *config.Config {
		cfg := validConfig()
		cfg.App.Environment = "production"
		cfg.Database.SSLMode = "require"
		cfg.Security.SecureHeaders = true
		cfg.Security.AllowedOrigins = []string{"https://backoffice.example.com"}
		return cfg
	}

	t.Run("accepts_hardened_production_config", func(t *testing.T) {
		require.NoError(t, productionConfig().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:    "default_jwt_secret_rejected",
			mutate:  func(c *config.Config) { c.Security.JWTSecret = "development-secret-change-in-production" },
			wantErr: "JWT secret",
		},
		{
			name:    "placeholder_database_password_rejected",
			mutate:  func(c *config.Config) { c.Database.Password = "MISSING_DB_PASSWORD" },
			wantErr: "database password",
		},
		{
			name:    "disabled_ssl_rejected",
			mutate:  func(c *config.Config) { c.Database.SSLMode = "disable" },
			wantErr: "SSL",
		},
		{
			name:    "wildcard_origin_rejected",
			mutate:  func(c *config.Config) { c.Security.AllowedOrigins = []string{"*"} },
			wantErr: "wildcard origin",
		},
		{
			name: "tls_without_cert_files_rejected",
			mutate: func(c *config.Config) {
				c.Server.TLSEnabled = true
				c.Server.TLSCertFile = ""
			},
			wantErr: "TLS cert",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := productionConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
