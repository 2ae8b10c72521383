package config

import "time"

// Config holds runtime settings for the Memento CLI.
type Config struct {
	DatabaseDSN string `envconfig:"DATABASE_DSN"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	S3Bucket       string `envconfig:"S3_BUCKET"`
	S3Region       string `envconfig:"S3_REGION"`
	S3BaseEndpoint string `envconfig:"S3_BASE_ENDPOINT"`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey    string `envconfig:"S3_SECRET_KEY"`

	BackupRetryTimeout time.Duration `envconfig:"BACKUP_RETRY_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "memento.db"
	c.LogLevel = "warn"
	c.S3Region = "us-east-1"
	c.BackupRetryTimeout = 30 * time.Second
}

// LoadConfig applies defaults, JSON, environment and flags in that order.
// Malformed input panics; main is expected to let it crash.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
