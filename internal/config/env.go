package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with environment tags. Durations accept any form
// understood by time.ParseDuration (e.g. "1h", "168h").
type envConfig struct {
	SecretKey                    string        `env:"RECIPEVAULT_SECRET_KEY"`
	AccessTokenValidityDuration  time.Duration `env:"RECIPEVAULT_ACCESS_TTL"`
	RefreshTokenValidityDuration time.Duration `env:"RECIPEVAULT_REFRESH_TTL"`
}

// parseEnv overlays values from the environment onto config. Unset variables
// leave the corresponding fields untouched.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.AccessTokenValidityDuration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration
	}
	if c.RefreshTokenValidityDuration != 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration
	}
}
