// Package config handles configuration for the report server,
// including defaults, JSON overlay, environment and command-line flags.
package config

import "time"

// Config holds runtime settings for the Memento report server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: SQLite path or PostgreSQL URL of the journal store.
//   - SecretKey: HMAC secret for signing access tokens (HS256).
//   - TokenValidityDuration: lifetime of tokens printed by -issue-token.
//   - IssueToken: print a token and exit instead of serving.
type Config struct {
	EndpointAddrGRPC      string        `envconfig:"GRPC_ADDR"`
	DatabaseDSN           string        `envconfig:"DATABASE_DSN"`
	SecretKey             string        `envconfig:"SECRET_KEY"`
	TokenValidityDuration time.Duration `envconfig:"TOKEN_VALIDITY"`
	LogLevel              string        `envconfig:"LOG_LEVEL"`
	IssueToken            bool          `ignored:"true"`
}

// DefaultSecretKey is the development signing secret.
const DefaultSecretKey = "secretKey"

// UsesDefaultSecret reports whether tokens are signed with the publicly
// known development secret.
func (c *Config) UsesDefaultSecret() bool {
	return c.SecretKey == DefaultSecretKey
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret must be overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50061"
	c.DatabaseDSN = "memento.db"
	c.SecretKey = DefaultSecretKey
	c.TokenValidityDuration = 24 * time.Hour
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, an optional JSON file, the
// environment and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
