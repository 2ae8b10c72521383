package config

import (
	"encoding/json"
	"os"

	"github.com/itnewcomer/Memento/internal/flagx"
	"github.com/itnewcomer/Memento/internal/timex"
)

// JsonConfig is the on-disk form of Config. Zero values leave the
// current setting alone.
type JsonConfig struct {
	DatabaseDSN        string         `json:"database_dsn"`
	LogLevel           string         `json:"log_level"`
	S3Bucket           string         `json:"s3_bucket"`
	S3Region           string         `json:"s3_region"`
	S3BaseEndpoint     string         `json:"s3_base_endpoint"`
	S3AccessKey        string         `json:"s3_access_key"`
	S3SecretKey        string         `json:"s3_secret_key"`
	BackupRetryTimeout timex.Duration `json:"backup_retry_timeout"`
}

func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.S3Bucket, jc.S3Bucket)
	overlay(&cfg.S3Region, jc.S3Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	overlay(&cfg.S3AccessKey, jc.S3AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3SecretKey)
	if jc.BackupRetryTimeout.Duration > 0 {
		cfg.BackupRetryTimeout = jc.BackupRetryTimeout.Duration
	}
}
