package config

import "github.com/kelseyhightower/envconfig"

// parseEnv reads MEMENTO_SERVER_* variables, for example
// MEMENTO_SERVER_SECRET_KEY.
func parseEnv(cfg *Config) {
	if err := envconfig.Process("MEMENTO_SERVER", cfg); err != nil {
		panic(err)
	}
}
