// Package config handles configuration for RecipeVault, including defaults,
// JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - SecretKey: HMAC secret for signing tokens. Must be supplied from the
//     environment or a config file; the built-in default exists only for
//     local development.
//   - AccessTokenValidityDuration: lifetime of issued access tokens.
//   - RefreshTokenValidityDuration: lifetime of issued refresh tokens.
type Config struct {
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: The secret key default is insecure and must be overridden.
func (c *Config) LoadDefaults() {
	c.SecretKey = "dev-secret-key"
	c.AccessTokenValidityDuration = 1 * time.Hour
	c.RefreshTokenValidityDuration = 7 * 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
