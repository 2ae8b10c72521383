package config

import "github.com/kelseyhightower/envconfig"

// EnvPrefix namespaces the environment variables read by parseEnv.
const EnvPrefix = "MEMENTO"

// parseEnv overlays variables such as MEMENTO_DATABASE_DSN. Unset
// variables keep the current value.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		panic(err)
	}
}
