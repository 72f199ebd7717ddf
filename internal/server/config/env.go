package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays values from environment variables onto cfg. Variables
// that are unset leave the existing values untouched, so defaults and JSON
// overlays survive. Malformed values (e.g. a bad duration) are a startup
// error and panic, matching the JSON/flag layers.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Sprintf("env config: %v", err))
	}
}
