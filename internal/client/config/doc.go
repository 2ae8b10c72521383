// Package config loads runtime configuration for the Memento CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables prefixed with MEMENTO_ (see envconfig tags).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   database DSN: a SQLite path or a postgres:// URL
//	-l string   log level (debug, info, warn, error)
//	-b string   S3 bucket for backups; empty disables upload
//	-g string   S3 region
//	-e string   S3 base endpoint, for MinIO and other compatible stores
//	-u string   S3 access key
//	-p string   S3 secret key
//	-r int      backup retry timeout (seconds)
//
// # JSON schema
//
//	{
//	  "database_dsn": "memento.db",
//	  "log_level": "info",
//	  "s3_bucket": "my-backups",
//	  "s3_region": "eu-central-1",
//	  "backup_retry_timeout": "30s"
//	}
package config
