package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rvault/recipevault/internal/flagx"
	"github.com/rvault/recipevault/internal/timex"
)

// JsonConfig is the intermediate shape for JSON configuration files. It uses
// timex.Duration for interval fields, which allows parsing both string values
// such as "1h" and integer nanoseconds. After unmarshalling, its fields are
// copied into the runtime Config.
type JsonConfig struct {
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named, the
// Config is left untouched. A file that cannot be read or parsed panics:
// a half-applied configuration is worse than a failed start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if d := time.Duration(c.AccessTokenValidityDuration); d != 0 {
		config.AccessTokenValidityDuration = d
	}
	if d := time.Duration(c.RefreshTokenValidityDuration); d != 0 {
		config.RefreshTokenValidityDuration = d
	}
}
